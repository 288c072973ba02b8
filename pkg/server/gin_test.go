package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRun_StopsOnSignal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	serv := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	c := make(chan os.Signal, 1)
	eg, ctx := errgroup.WithContext(context.Background())

	done := make(chan error, 1)
	go func() { done <- run(c, eg, ctx, serv) }()

	c <- syscall.SIGTERM
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// 端口已被占用
	serv := &http.Server{Addr: ln.Addr().String(), Handler: http.NotFoundHandler()}
	c := make(chan os.Signal, 1)
	eg, ctx := errgroup.WithContext(context.Background())

	err = run(c, eg, ctx, serv)
	assert.Error(t, err)
}

func TestGetServerId(t *testing.T) {
	assert.NotEmpty(t, GetServerId())
}
