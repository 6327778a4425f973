package handlers

import (
	"errors"
	"net/http"
	"strings"

	"atelier-site-core/app/server/mailer"
	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func subscriberInfo(sub *models.Subscriber) types.SubscriberInfo {
	return types.SubscriberInfo{
		ID:           sub.ID,
		Email:        sub.Email,
		IsActive:     sub.IsActive,
		SubscribedAt: sub.SubscribedAt,
	}
}

// Subscribe 公开的订阅接口
func (a *App) Subscribe(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Email == nil || *req.Email == "" {
		return a.erMsg(c, http.StatusBadRequest, "email is required")
	}

	// 构造订阅者：邮箱校验、退订令牌都在这一步完成
	sub, err := models.NewSubscriber(*req.Email)
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "invalid email address")
	}

	if err := a.db.WithContext(rctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusConflict, "email already subscribed")
		}
		a.l.Error("failed to create subscriber", zap.String("email", sub.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 欢迎邮件尽力而为，失败不影响订阅本身
	welcome := mailer.WelcomeTemplate()
	if err := a.mail.Send(rctx, mailer.Message{
		To:      sub.Email,
		Subject: welcome.Subject,
		HTML:    welcome.HTML,
		Text:    welcome.Text,
	}); err != nil {
		a.l.Error("failed to send welcome email", zap.String("email", sub.Email), zap.Error(err))
	}

	return c.JSON(http.StatusCreated, &types.Message{Message: "thank you for subscribing"})
}

// Unsubscribe 凭退订令牌停止接收邮件。
// 对已经退订的令牌重复调用同样返回成功（幂等），
// 邮件客户端预抓取退订链接时不会产生误报。
func (a *App) Unsubscribe(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Token == nil || *req.Token == "" {
		return a.erMsg(c, http.StatusBadRequest, "token is required")
	}

	result := a.db.WithContext(rctx).
		Model(&models.Subscriber{}).
		Where("unsubscribe_token = ?", *req.Token).
		Update("is_active", false)
	if result.Error != nil {
		a.l.Error("failed to unsubscribe", zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.erMsg(c, http.StatusNotFound, "invalid unsubscribe token")
	}

	return c.JSON(http.StatusOK, &types.Message{Message: "unsubscribed successfully"})
}

// BookDownload 免费画册：顺手订阅（已订阅则保持原状），然后把下载链接发过去。
// 与下单确认不同，这封邮件就是功能本身，发送失败要算请求失败。
func (a *App) BookDownload(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.BookDownloadRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Email == nil || *req.Email == "" {
		return a.erMsg(c, http.StatusBadRequest, "email is required")
	}

	sub, err := models.NewSubscriber(*req.Email)
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "invalid email address")
	}

	if err := a.db.WithContext(rctx).Create(sub).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			a.l.Error("failed to create subscriber", zap.String("email", sub.Email), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		// 已订阅：保持现有记录不动
	}

	downloadLink := strings.TrimRight(a.cfg.System.PublicBaseURL, "/") + a.cfg.System.BookDownloadPath
	book := mailer.BookDownloadTemplate(downloadLink)
	if err := a.mail.Send(rctx, mailer.Message{
		To:      sub.Email,
		Subject: book.Subject,
		HTML:    book.HTML,
		Text:    book.Text,
	}); err != nil {
		a.l.Error("failed to send book download email", zap.String("email", sub.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &types.Message{Message: "download link sent, check your inbox"})
}

func (a *App) SubscriberList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var (
		subs      []models.Subscriber
		subsCount int64
	)

	showAll, page, limit := a.parsePagination(queryUint(c, "page"), queryUint(c, "limit"))
	queryBase := a.db.WithContext(rctx).Model(&models.Subscriber{}).Order("id ASC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&subs).Error; err != nil {
		a.l.Error("failed to get subscriber list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := a.db.WithContext(rctx).Model(&models.Subscriber{}).Count(&subsCount).Error; err != nil {
		a.l.Error("failed to count subscriber", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resSubs := []types.SubscriberInfo{}
	for i := range subs {
		resSubs = append(resSubs, subscriberInfo(&subs[i]))
	}

	return c.JSON(http.StatusOK, &types.SubscriberListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(subsCount, showAll, limit),
		List:    resSubs,
	})
}

func (a *App) SubscriberDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, ok := paramID(c)
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var sub models.Subscriber
	if err := a.db.WithContext(rctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get subscriber", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 删除订阅者
	if err := a.db.WithContext(rctx).Delete(&sub).Error; err != nil {
		a.l.Error("failed to delete subscriber", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &types.Message{Message: "subscriber deleted successfully"})
}

func (a *App) SubscriberActiveUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, ok := paramID(c)
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.SubscriberActiveUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.IsActive == nil {
		return a.er(c, http.StatusBadRequest)
	}

	var sub models.Subscriber
	if err := a.db.WithContext(rctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get subscriber", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 更新启用状态，令牌保持不变
	if err := a.db.WithContext(rctx).Model(&sub).Update("is_active", *req.IsActive).Error; err != nil {
		a.l.Error("failed to update subscriber", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, subscriberInfo(&sub))
}
