package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"atelier-site-core/app/server/utils"
	"gorm.io/gorm"
)

// 邮箱格式校验，与前台订阅表单保持一致
var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

type Subscriber struct {
	gorm.Model

	Email            string    `gorm:"column:email;uniqueIndex"`             // 订阅者邮箱，全局唯一，入库前统一小写
	IsActive         bool      `gorm:"column:is_active;index"`               // 是否仍在接收邮件，退订后置为 false
	SubscribedAt     time.Time `gorm:"column:subscribed_at"`                 // 订阅时间
	UnsubscribeToken string    `gorm:"column:unsubscribe_token;uniqueIndex"` // 退订令牌，创建时生成一次，之后不再轮换
}

// NewSubscriber 构造一个新的订阅者：校验并规整邮箱，生成退订令牌。
// 令牌只在这里产生，后续任何更新都不会重新生成。
func NewSubscriber(email string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("invalid email address: %q", email)
	}

	token, err := utils.RandomHex(32)
	if err != nil {
		return nil, fmt.Errorf("generate unsubscribe token: %w", err)
	}

	return &Subscriber{
		Email:            email,
		IsActive:         true,
		SubscribedAt:     time.Now(),
		UnsubscribeToken: token,
	}, nil
}
