package handlers

import (
	"atelier-site-core/app/server/config"
	"atelier-site-core/app/server/jwt"
	"atelier-site-core/app/server/mailer"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l    *zap.Logger    // 日志
	db   *gorm.DB       // 数据库
	rdb  *redis.Client  // Redis ，读穿缓存，出错时直接回源数据库
	jwt  *jwt.JWT       // JWT ，用于无状态验证
	mail mailer.Sender  // 邮件发送，测试时可以换成桩
	cfg  *config.Config // 配置
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, mail mailer.Sender, cfg *config.Config) *App {
	return &App{
		l:    l,
		db:   db,
		rdb:  rdb,
		jwt:  j,
		mail: mail,
		cfg:  cfg,
	}
}
