package loadtest

import (
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// EnvVar 虚拟用户上下文中记录运行环境的变量名
const EnvVar = "environment"

// DefaultEnv APP_ENV 与 NODE_ENV 都未设置时使用
const DefaultEnv = "test"

// ActiveEnv 当前进程的运行环境
func ActiveEnv() string {
	for _, key := range []string{"APP_ENV", "NODE_ENV"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return DefaultEnv
}

// VirtualUser 一个虚拟用户及其变量，可被多个goroutine同时访问
type VirtualUser struct {
	ID string

	mu   sync.Mutex
	vars map[string]string
}

func NewVirtualUser() *VirtualUser {
	return &VirtualUser{ID: uuid.NewString(), vars: make(map[string]string)}
}

func (vu *VirtualUser) Get(key string) (string, bool) {
	vu.mu.Lock()
	defer vu.mu.Unlock()
	v, ok := vu.vars[key]
	return v, ok
}

func (vu *VirtualUser) Set(key, value string) {
	vu.mu.Lock()
	defer vu.mu.Unlock()
	vu.vars[key] = value
}

// SetIfAbsent 已存在时不覆盖，返回是否写入
func (vu *VirtualUser) SetIfAbsent(key, value string) bool {
	vu.mu.Lock()
	defer vu.mu.Unlock()
	if _, ok := vu.vars[key]; ok {
		return false
	}
	vu.vars[key] = value
	return true
}

// Bucket 响应分类
type Bucket int

const (
	BucketSuccess Bucket = iota
	BucketClientError
	BucketServerError
)

func (b Bucket) String() string {
	switch b {
	case BucketSuccess:
		return "success"
	case BucketClientError:
		return "client_error"
	default:
		return "server_error"
	}
}

// Classify <400 成功，4xx 客户端错误，其余为服务端错误
func Classify(status int) Bucket {
	switch {
	case status < http.StatusBadRequest:
		return BucketSuccess
	case status < http.StatusInternalServerError:
		return BucketClientError
	default:
		return BucketServerError
	}
}

// Hooks 请求前后的钩子，计数器可并发更新
type Hooks struct {
	env     string
	buckets [3]atomic.Int64
}

// NewHooks env 为空时取 ActiveEnv()
func NewHooks(env string) *Hooks {
	if env == "" {
		env = ActiveEnv()
	}
	return &Hooks{env: env}
}

func (h *Hooks) Env() string { return h.env }

// BeforeRequest 为虚拟用户标记运行环境（先写入者为准），并带上请求头
func (h *Hooks) BeforeRequest(vu *VirtualUser, req *http.Request) error {
	vu.SetIfAbsent(EnvVar, h.env)
	if req != nil {
		env, _ := vu.Get(EnvVar)
		req.Header.Set("X-Load-Env", env)
		req.Header.Set("X-Virtual-User", vu.ID)
	}
	return nil
}

// AfterResponse 只做统计，不做断言或重试
func (h *Hooks) AfterResponse(_ *VirtualUser, status int) error {
	h.buckets[Classify(status)].Add(1)
	return nil
}

// Report 当前计数快照
func (h *Hooks) Report() Report {
	return Report{
		Env:         h.env,
		Success:     h.buckets[BucketSuccess].Load(),
		ClientError: h.buckets[BucketClientError].Load(),
		ServerError: h.buckets[BucketServerError].Load(),
	}
}
