package loadtest

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Report struct {
	Env         string
	Success     int64
	ClientError int64
	ServerError int64
}

func (r Report) Total() int64 {
	return r.Success + r.ClientError + r.ServerError
}

// SuccessRate 无请求时为0
func (r Report) SuccessRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Success) / float64(r.Total()) * 100
}

// Fprint 输出彩色汇总
func (r Report) Fprint(w io.Writer) {
	fmt.Fprintf(w, "环境: %s  总请求: %d\n", r.Env, r.Total())
	color.New(color.FgGreen).Fprintf(w, "  success      %d\n", r.Success)
	color.New(color.FgYellow).Fprintf(w, "  client_error %d\n", r.ClientError)
	color.New(color.FgRed).Fprintf(w, "  server_error %d\n", r.ServerError)

	rate := color.New(color.FgGreen)
	if r.ServerError > 0 {
		rate = color.New(color.FgRed, color.Bold)
	}
	rate.Fprintf(w, "  成功率 %.2f%%\n", r.SuccessRate())
}
