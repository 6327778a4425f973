package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"atelier-site-core/app/server/mailer"
	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"atelier-site-core/app/server/utils"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderSubmit 接收购买意向。不接入在线支付：生成订单号，
// 给买家发确认邮件、给管理员发通知邮件，后续由人工跟进。
// 两封邮件都是尽力而为，发送失败只记日志，不影响下单本身。
func (a *App) OrderSubmit(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.OrderRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.ProductID == nil || req.Name == nil || req.Email == nil || req.Message == nil ||
		*req.Name == "" || *req.Email == "" || *req.Message == "" {
		return a.erMsg(c, http.StatusBadRequest, "missing required fields")
	}

	// 核对作品存在
	var product models.Product
	if err := a.db.WithContext(rctx).First(&product, "id = ?", *req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get product", zap.Uint("id", *req.ProductID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 生成订单号： ORD-<毫秒时间戳>-<8 位十六进制>
	suffix, err := utils.RandomHex(4)
	if err != nil {
		a.l.Error("failed to generate order id", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	orderID := fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(suffix))

	// 买家确认邮件
	confirmation := mailer.OrderConfirmationTemplate(orderID, product.Title, product.Price)
	if err := a.mail.Send(rctx, mailer.Message{
		To:      *req.Email,
		Subject: confirmation.Subject,
		HTML:    confirmation.HTML,
		Text:    confirmation.Text,
	}); err != nil {
		a.l.Error("failed to send order confirmation email",
			zap.String("orderID", orderID), zap.String("email", *req.Email), zap.Error(err))
	}

	// 管理员通知邮件
	if a.cfg.Mail.AdminEmail != "" {
		notification := mailer.OrderNotificationTemplate(orderID, *req.Name, *req.Email, product.Title, product.Price, *req.Message)
		if err := a.mail.Send(rctx, mailer.Message{
			To:      a.cfg.Mail.AdminEmail,
			Subject: notification.Subject,
			HTML:    notification.HTML,
			Text:    notification.Text,
		}); err != nil {
			a.l.Error("failed to send order notification email",
				zap.String("orderID", orderID), zap.Error(err))
		}
	}

	return c.JSON(http.StatusCreated, &types.OrderResult{
		Message: "order request received, you will be contacted soon",
		OrderID: orderID,
	})
}
