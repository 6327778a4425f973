package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Email   string `gorm:"column:email;uniqueIndex"` // 登录邮箱，全局唯一
	Name    string `gorm:"column:name"`              // 显示名称
	IsAdmin bool   `gorm:"column:is_admin;index"`    // 是否为管理员：只有管理员可以进入后台写入

	// 登录认证
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存
}
