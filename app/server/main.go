package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier-site-core/app/server/handlers"
	"atelier-site-core/app/server/inits"
	"atelier-site-core/app/server/jwt"
	"atelier-site-core/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化邮件发送
	m, err := inits.Mailer(cfg)
	if err != nil {
		l.Fatal("error initializing mailer", zap.Error(err))
	}

	// 准备 handler app
	a := handlers.NewApp(l, db, rdb, j, m, cfg)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 上传文件直接静态托管
	e.Static("/uploads", cfg.System.UploadsDir)

	e.GET("/healthz", a.HealthCheck)

	// 公开接口里会触发邮件发送的，单独限流
	mailLimit := middlewares.RateLimit(1, 3)

	api := e.Group("/api")

	// 订阅（公开）
	api.POST("/subscribers/subscribe", a.Subscribe, mailLimit)
	api.POST("/subscribers/unsubscribe", a.Unsubscribe)
	api.POST("/subscribers/download-book", a.BookDownload, mailLimit)

	// 博客：读公开，写后台（处理函数内部校验 JWT ）
	api.GET("/blog", a.PostListPublished)
	api.GET("/blog/:slug", a.PostGetBySlug)
	api.POST("/blog", a.PostCreate)
	api.PUT("/blog", a.PostUpdate)
	api.DELETE("/blog/:id", a.PostDelete)
	api.GET("/admin/blog", a.PostListAdmin)

	// 商店：读与下单公开，写后台
	api.GET("/shop/products", a.ProductList)
	api.GET("/shop/:id", a.ProductGet)
	api.POST("/shop/order", a.OrderSubmit, mailLimit)
	api.POST("/shop/products", a.ProductCreate)
	api.PUT("/shop/:id", a.ProductUpdate)
	api.DELETE("/shop/:id", a.ProductDelete)

	// 管理员初始化与登录
	api.POST("/admin/setup", a.AdminSetup)
	api.GET("/admin/setup", a.AdminSetupStatus)
	api.POST("/auth/login", a.AuthLogin, middlewares.RateLimit(1, 5))

	// 图库（后台）
	api.POST("/images/upload", a.ImageUpload)
	api.GET("/images", a.ImageList)
	api.DELETE("/images/:id", a.ImageDelete)

	// 订阅者管理（后台）
	api.GET("/subscribers", a.SubscriberList)
	api.DELETE("/subscribers/:id", a.SubscriberDelete)
	api.PATCH("/subscribers/:id", a.SubscriberActiveUpdate)

	// 群发（后台）
	api.POST("/newsletter/send", a.NewsletterSend)

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	// 等待退出信号，优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		l.Fatal("error shutting down the server", zap.Error(err))
	}
}
