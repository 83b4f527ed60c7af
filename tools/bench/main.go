package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// 运行顺序：注册 alice/bob/charlie -> 登录 -> alice 向 bob 发请求 -> bob 接受
// -> alice 发帖 -> 校验 bob 可见、charlie 不可见 -> 并发压测帖子列表接口

var client = &http.Client{Timeout: 8 * time.Second}

type account struct {
	username string
	id       uint
	token    string
}

// -------------------- HTTP 辅助 --------------------

func call(base, method, path, token string, body interface{}, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, base+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func must(step string, code int, err error) {
	if err != nil || code != http.StatusOK {
		fmt.Printf("[FAIL] %s: status=%d err=%v\n", step, code, err)
		os.Exit(1)
	}
	fmt.Printf("[ OK ] %s\n", step)
}

// -------------------- 场景 --------------------

func signUp(base, username, suffix string) *account {
	name := username + suffix
	pw := "pw-" + name
	code, err := call(base, http.MethodPost, "/register", "", map[string]string{"username": name, "name": username, "password": pw}, nil)
	must("register "+name, code, err)

	var resp struct {
		ID    uint   `json:"id"`
		Token string `json:"token"`
	}
	code, err = call(base, http.MethodPost, "/login", "", map[string]string{"username": name, "password": pw}, &resp)
	must("login "+name, code, err)
	return &account{username: name, id: resp.ID, token: resp.Token}
}

type postsResp struct {
	Posts []struct {
		Content string `json:"content"`
	} `json:"posts"`
}

func runScenario(base string) (*account, *account) {
	suffix := fmt.Sprintf("_%d", time.Now().UnixNano()%1_000_000)
	alice := signUp(base, "alice", suffix)
	bob := signUp(base, "bob", suffix)
	charlie := signUp(base, "charlie", suffix)

	code, err := call(base, http.MethodPost, "/friend-request", alice.token, map[string]uint{"friendId": bob.id}, nil)
	must("alice -> bob friend request", code, err)

	code, err = call(base, http.MethodPost, "/accept-friend-request", bob.token, map[string]uint{"friendId": alice.id}, nil)
	must("bob accepts alice", code, err)

	code, err = call(base, http.MethodPost, "/posts", alice.token, map[string]string{"content": "hi"}, nil)
	must("alice posts", code, err)

	path := fmt.Sprintf("/posts/user/%d", alice.id)

	var asBob postsResp
	code, err = call(base, http.MethodGet, path, bob.token, nil, &asBob)
	must("bob lists alice's posts", code, err)
	if len(asBob.Posts) != 1 || asBob.Posts[0].Content != "hi" {
		fmt.Printf("[FAIL] bob expected [hi], got %+v\n", asBob.Posts)
		os.Exit(1)
	}

	var asCharlie postsResp
	code, err = call(base, http.MethodGet, path, charlie.token, nil, &asCharlie)
	must("charlie lists alice's posts", code, err)
	if len(asCharlie.Posts) != 0 {
		fmt.Printf("[FAIL] charlie expected [], got %+v\n", asCharlie.Posts)
		os.Exit(1)
	}

	code, err = call(base, http.MethodGet, path, "", nil, nil)
	if err != nil || code != http.StatusUnauthorized {
		fmt.Printf("[FAIL] anonymous request expected 401, got %d (%v)\n", code, err)
		os.Exit(1)
	}
	fmt.Println("[ OK ] anonymous request rejected")

	return alice, bob
}

// -------------------- 压测 --------------------

type APITestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalLatency       time.Duration
	MaxLatency         time.Duration
	MinLatency         time.Duration
	mu                 sync.Mutex
}

func (s *APITestStats) Add(success bool, latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TotalRequests++
	if !success {
		s.FailedRequests++
		return
	}
	s.SuccessfulRequests++
	s.TotalLatency += latency
	if latency > s.MaxLatency {
		s.MaxLatency = latency
	}
	if s.MinLatency == 0 || latency < s.MinLatency {
		s.MinLatency = latency
	}
}

func runHTTPBench(base string, viewer *account, subjectID uint, concurrency, perGoroutine int) {
	fmt.Println("\n=== 帖子列表并发测试开始 ===")
	fmt.Printf("目标: %s 并发: %d 每协程请求: %d\n", base, concurrency, perGoroutine)

	stats := &APITestStats{}
	path := fmt.Sprintf("/posts/user/%d", subjectID)

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				t0 := time.Now()
				code, err := call(base, http.MethodGet, path, viewer.token, nil, nil)
				stats.Add(err == nil && code == http.StatusOK, time.Since(t0))
			}
		}()
	}
	wg.Wait()

	took := time.Since(start)
	fmt.Println("\n=== 测试结果 ===")
	fmt.Printf("耗时: %v\n", took)
	fmt.Printf("总请求: %d 成功: %d 失败: %d\n", stats.TotalRequests, stats.SuccessfulRequests, stats.FailedRequests)
	if stats.SuccessfulRequests > 0 {
		avg := stats.TotalLatency / time.Duration(stats.SuccessfulRequests)
		fmt.Printf("延迟 平均: %v 最大: %v 最小: %v\n", avg, stats.MaxLatency, stats.MinLatency)
	}
	if took > 0 {
		fmt.Printf("QPS: %.2f\n", float64(stats.SuccessfulRequests)/took.Seconds())
	}
}

// -------------------- 入口 --------------------

func main() {
	base := flag.String("base", "http://localhost:3000", "server base URL")
	concurrency := flag.Int("c", 5, "concurrent workers for the read bench (0 to skip)")
	perGoroutine := flag.Int("n", 20, "requests per worker")
	flag.Parse()

	fmt.Printf("=== 社交服务冒烟测试 %s ===\n", time.Now().Format("2006-01-02 15:04:05"))
	alice, bob := runScenario(*base)

	if *concurrency > 0 {
		runHTTPBench(*base, bob, alice.id, *concurrency, *perGoroutine)
	}

	fmt.Println("\n=== 测试完成 ===")
}
