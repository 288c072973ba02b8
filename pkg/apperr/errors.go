// Package apperr 定义客户端统一的错误分类。
//
// 调用方通过 errors.Is 判断错误种类，例如 errors.Is(err, apperr.ErrNotFound)。
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account exists")
	ErrNetwork            = errors.New("network error")
	ErrValidation         = errors.New("validation error")
)

// Error 带种类的业务错误，Msg 面向用户展示
type Error struct {
	Kind  error
	Code  int
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func NotFound(msg string) *Error {
	return New(ErrNotFound, msg)
}

func InvalidCredentials(msg string) *Error {
	return New(ErrInvalidCredentials, msg)
}

func AccountExists(msg string) *Error {
	return New(ErrAccountExists, msg)
}

func Validation(msg string) *Error {
	return New(ErrValidation, msg)
}

// Network 传输层或服务端错误，code 为 HTTP 状态码（传输失败时为 0）
func Network(code int, msg string, cause error) *Error {
	return &Error{Kind: ErrNetwork, Code: code, Msg: msg, Cause: cause}
}

// Message 取出面向用户的提示文案
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
