package main

import (
	"context"
	"fmt"
	"net/http"
	"scribe/internal/api"
	"scribe/internal/config"
	"scribe/internal/llm"
	"scribe/internal/model"
	"scribe/internal/storage"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 初始化logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// 初始化配置
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}
	if repo == nil {
		logrus.Warn("DBType is empty, running without storage")
	}

	if repo != nil && cfg.SeedTemplates {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		created, err := model.SeedDefaultTemplates(ctx, repo)
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("failed to seed default templates")
		} else if created > 0 {
			logrus.WithField("created", created).Info("default templates seeded")
		}
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}
	if store == nil {
		logrus.Info("export storage disabled")
	}

	completer, err := llm.NewCompleter(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise completion driver")
		return
	}
	if completer == nil {
		logrus.Warn("LLM_API_KEY is empty, content generation will fail")
	} else {
		logrus.WithField("driver", completer.Name()).Info("completion driver ready")
	}

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store, completer)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// 添加中间件
	r.Use(api.RequestIDMiddleware())
	r.Use(api.LoggingMiddleware())
	r.Use(api.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	httpHandler.RegisterRoutes(r)

	// 本地存储时直接提供导出文件
	httpHandler.RegisterFileRoutes(r, store)

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logrus.WithField("host", serverHost).Info("服务器启动")
	// 创建HTTP服务器
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: cfg.LLMTimeout() + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Error("服务器启动失败")
	}
}
