package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/api/handler"
	"github.com/fahadturjmi/GPA-Calculator/internal/api/router"
	"github.com/fahadturjmi/GPA-Calculator/internal/repository"
	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	applogger "github.com/fahadturjmi/GPA-Calculator/pkg/logger"
	"github.com/fahadturjmi/GPA-Calculator/pkg/memstore"
	"github.com/fahadturjmi/GPA-Calculator/pkg/metrics"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("GPA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("default_scale", cfg.Session.DefaultScale),
	)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. 内存存储（工作区快照 + 限流计数）
	store := memstore.NewClient(&cfg.Session, logger)

	// 4. 指标
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(store)
	svc := service.NewService(cfg, repo, m, logger)
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	engine, err := router.Setup(router.Deps{
		Config:   cfg,
		Handler:  h,
		Service:  svc,
		Store:    store,
		Metrics:  m,
		Gatherer: reg,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("路由初始化失败", zap.Error(err))
	}

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭", zap.Int("store_items", store.Count()))
}
