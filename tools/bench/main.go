package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"social-im/config"
	"social-im/pkg/loadtest"

	"github.com/fatih/color"
)

// latencyStats 只统计拿到响应的请求
type latencyStats struct {
	mu       sync.Mutex
	count    int
	failures int
	total    time.Duration
	max      time.Duration
	min      time.Duration
}

func (s *latencyStats) add(latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	s.total += latency
	if latency > s.max {
		s.max = latency
	}
	if s.min == 0 || latency < s.min {
		s.min = latency
	}
}

func (s *latencyStats) fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures++
}

func (s *latencyStats) avg() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

type endpoint struct {
	method string
	path   string
	body   string
}

// 覆盖成功、校验失败与鉴权失败三类响应
var endpoints = []endpoint{
	{http.MethodGet, "/health", ""},
	{http.MethodGet, "/api/v1/contracts", ""},
	{http.MethodPost, "/api/v1/users/login", `{"account":""}`},
	{http.MethodGet, "/api/v1/conversations", ""},
}

func hit(client *http.Client, base string, ep endpoint, vu *loadtest.VirtualUser, hooks *loadtest.Hooks, stats *latencyStats) {
	req, err := http.NewRequest(ep.method, base+ep.path, strings.NewReader(ep.body))
	if err != nil {
		stats.fail()
		return
	}
	req.Header.Set("Content-Type", "application/json")
	_ = hooks.BeforeRequest(vu, req)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		stats.fail()
		return
	}
	resp.Body.Close()
	stats.add(time.Since(start))
	_ = hooks.AfterResponse(vu, resp.StatusCode)
}

func run(cfg config.LoadTestConfig, hooks *loadtest.Hooks) *latencyStats {
	client := &http.Client{Timeout: cfg.Timeout}
	stats := &latencyStats{}

	var wg sync.WaitGroup
	for i := 0; i < cfg.VirtualUsers; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			vu := loadtest.NewVirtualUser()
			for j := 0; j < cfg.RequestsPerUser; j++ {
				hit(client, cfg.BaseURL, endpoints[(offset+j)%len(endpoints)], vu, hooks, stats)
				time.Sleep(5 * time.Millisecond)
			}
		}(i)
	}
	wg.Wait()
	return stats
}

// 用法: bench [虚拟用户数] [每用户请求数]
func main() {
	cfg := config.LoadConfig().LoadTest
	if len(os.Args) > 1 {
		if v, err := strconv.Atoi(os.Args[1]); err == nil && v > 0 {
			cfg.VirtualUsers = v
		}
	}
	if len(os.Args) > 2 {
		if v, err := strconv.Atoi(os.Args[2]); err == nil && v > 0 {
			cfg.RequestsPerUser = v
		}
	}

	hooks := loadtest.NewHooks("")
	color.New(color.Bold).Println("=== social-im 压测 ===")
	fmt.Printf("目标: %s 虚拟用户: %d 每用户请求: %d 环境: %s\n",
		cfg.BaseURL, cfg.VirtualUsers, cfg.RequestsPerUser, hooks.Env())

	start := time.Now()
	stats := run(cfg, hooks)
	took := time.Since(start)

	fmt.Println()
	hooks.Report().Fprint(os.Stdout)
	fmt.Printf("耗时: %v\n", took)
	fmt.Printf("延迟 平均: %v 最大: %v 最小: %v\n", stats.avg(), stats.max, stats.min)
	if stats.failures > 0 {
		color.Red("连接失败: %d", stats.failures)
	}
	if took > 0 {
		fmt.Printf("QPS: %.2f\n", float64(stats.count)/took.Seconds())
	}
}
