package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Tripnote/config"
	"Tripnote/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
}

var (
	once sync.Once
	// 服务唯一ID
	serverId string
)

func GetServerId() string {
	once.Do(func() {
		ip, err := getLocalIP()
		if err != nil {
			log.L.Warn("get local ip", zap.Error(err))
			ip = "127.0.0.1"
		}
		serverId = ip
	})
	return serverId
}

func getLocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		// 排除回环地址
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	return "", errors.New("no ip address found")
}

func Run(ctx *cli.Context, app *AppProvider) error {
	if !app.Config.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	defer signal.Stop(c)

	log.L.Info("mock server starting",
		zap.String("serverId", GetServerId()),
		zap.Int("port", app.Config.Mock.Http),
		zap.String("env", app.Config.App.Env),
	)

	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Mock.Http),
		Handler:           app.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return run(c, eg, groupCtx, serv)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, serv *http.Server) error {
	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("mock server stopping", zap.String("serverId", GetServerId()))

			// 等待中断信号以优雅地关闭服务器
			timeCtx, timeCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("mock server stopping", zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	err := eg.Wait()
	log.L.Info("mock server stopped", zap.String("serverId", GetServerId()))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
