package handler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"Tripnote/pkg/apperr"
)

// Console 命令行输出，对应移动端的页面和弹窗
type Console struct {
	Out io.Writer
}

func NewConsole() *Console {
	return &Console{Out: os.Stdout}
}

func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Out, format, args...)
}

func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c.Out, args...)
}

// Alert 打印提示后原样返回错误
func (c *Console) Alert(err error) error {
	c.Printf("[提示] %s\n", apperr.Message(err))
	return err
}

// ExitCode 校验错误返回 2，其他错误返回 1
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, apperr.ErrValidation):
		return 2
	default:
		return 1
	}
}
