package handlers

import (
	"net/http"

	"atelier-site-core/app/server/mailer"
	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewsletterSend 给所有仍在订阅的读者群发一封邮件。
// 逐个发送，单个收件人失败不会中断批次，最终返回成功与失败的汇总。
func (a *App) NewsletterSend(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.NewsletterSendRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Subject == nil || req.Content == nil || *req.Subject == "" || *req.Content == "" {
		return a.erMsg(c, http.StatusBadRequest, "subject and content are required")
	}

	// 取出所有有效订阅者的邮箱
	var emails []string
	if err := a.db.WithContext(rctx).
		Model(&models.Subscriber{}).
		Where("is_active = ?", true).
		Order("id ASC").
		Pluck("email", &emails).Error; err != nil {
		a.l.Error("failed to get active subscribers", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 没有订阅者就不动邮件系统
	if len(emails) == 0 {
		return c.JSON(http.StatusOK, &types.NewsletterSendResult{
			Message: "no active subscribers",
			Errors:  []types.NewsletterSendError{},
		})
	}

	// 消费批次迭代器，聚合结果并记录进度。
	// 批次一旦开始就不会被请求取消打断。
	result := types.NewsletterSendResult{
		Errors: []types.NewsletterSendError{},
	}
	total := len(emails)
	for outcome := range mailer.NewsletterBatch(a.mail, emails, *req.Subject, *req.Content) {
		if outcome.Err != nil {
			result.Failed++
			result.Errors = append(result.Errors, types.NewsletterSendError{
				Email: outcome.Email,
				Error: outcome.Err.Error(),
			})
		} else {
			result.Sent++
		}

		a.l.Debug("newsletter progress",
			zap.Int("attempts", result.Sent+result.Failed),
			zap.Int("total", total),
		)
	}

	a.l.Info("newsletter batch finished",
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)

	result.Message = "newsletter send completed"
	return c.JSON(http.StatusOK, &result)
}
