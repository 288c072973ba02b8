// Package api 后端 REST 接口客户端。
//
// 每次调用只发一次请求，不重试。ctx 被取消时请求立即中止，
// 返回的错误同时满足 apperr.ErrNetwork 和 context.Canceled。
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Tripnote/config"
	"Tripnote/pkg/apperr"
	"Tripnote/pkg/log"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-Id"
	maxBodyBytes    = 10 * 1024 * 1024
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(conf *config.Api) *Client {
	return NewWithHTTPClient(conf.BaseURL, &http.Client{Timeout: conf.Timeout()})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do 发请求并返回解析后的 JSON，空响应体返回不存在的 Result
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (gjson.Result, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.L.Warn("api request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return gjson.Result{}, apperr.Network(0, "网络请求失败", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, apperr.Network(resp.StatusCode, "读取响应失败", err)
	}
	log.L.Debug("api request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !gjson.ValidBytes(trimmed) {
		if resp.StatusCode >= http.StatusBadRequest {
			return gjson.Result{}, statusError(resp.StatusCode, gjson.Result{})
		}
		return gjson.Result{}, apperr.Network(resp.StatusCode, "响应解析失败", fmt.Errorf("invalid json: %s", truncate(string(trimmed), 200)))
	}
	result := gjson.ParseBytes(trimmed)
	if resp.StatusCode >= http.StatusBadRequest {
		return gjson.Result{}, statusError(resp.StatusCode, result)
	}
	return result, nil
}

func statusError(status int, body gjson.Result) error {
	msg := body.Get("msg").String()
	if msg == "" {
		msg = body.Get("message").String()
	}
	if msg == "" {
		msg = body.Get("error").String()
	}
	if status == http.StatusNotFound {
		if msg == "" {
			msg = "资源不存在"
		}
		return apperr.NotFound(msg)
	}
	if status == http.StatusConflict {
		if msg == "" {
			msg = "账号已存在"
		}
		return &apperr.Error{Kind: apperr.ErrAccountExists, Code: status, Msg: msg}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return apperr.Network(status, msg, nil)
}

// decode 把 gjson 结果解到结构体
func decode[T any](r gjson.Result, dst *T) error {
	if err := json.Unmarshal([]byte(r.Raw), dst); err != nil {
		return apperr.Network(0, "响应解析失败", err)
	}
	return nil
}

// single json-server 按条件查询时返回数组，这里统一取第一条
func single(r gjson.Result) (gjson.Result, bool) {
	if r.IsArray() {
		arr := r.Array()
		if len(arr) == 0 {
			return gjson.Result{}, false
		}
		r = arr[0]
	}
	if !r.IsObject() || r.Get("id").String() == "" {
		return gjson.Result{}, false
	}
	return r, true
}

// list 兼容裸数组和 {data: [...]}
func list(r gjson.Result) []gjson.Result {
	if r.IsArray() {
		return r.Array()
	}
	return r.Get("data").Array()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
