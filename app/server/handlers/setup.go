package handlers

import (
	"errors"
	"net/http"
	"strings"

	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"atelier-site-core/app/server/utils"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminSetup 创建唯一的管理员账号。
// 由共享密钥保护；一旦存在管理员，后续任何调用都会被拒绝。
func (a *App) AdminSetup(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.SetupRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 密钥必须先对上，避免探测出任何状态
	if req.SecretKey == nil || *req.SecretKey != a.cfg.Security.AdminSetupKey {
		return a.erMsg(c, http.StatusForbidden, "invalid setup key")
	}

	if req.Email == nil || req.Password == nil {
		return a.er(c, http.StatusBadRequest)
	}
	email := strings.ToLower(strings.TrimSpace(*req.Email))

	// 已有管理员则直接拒绝
	var adminCount int64
	if err := a.db.WithContext(rctx).Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
		a.l.Error("failed to count admin users", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if adminCount > 0 {
		return a.erMsg(c, http.StatusBadRequest, "admin user already exists")
	}

	// 邮箱不能与现有用户冲突
	var emailCount int64
	if err := a.db.WithContext(rctx).Model(&models.User{}).Where("email = ?", email).Count(&emailCount).Error; err != nil {
		a.l.Error("failed to count users by email", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if emailCount > 0 {
		return a.erMsg(c, http.StatusBadRequest, "user with this email already exists")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(*req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	name := "Admin"
	if req.Name != nil && *req.Name != "" {
		name = *req.Name
	}

	user := models.User{
		Email:    email,
		Name:     name,
		IsAdmin:  true,
		Password: passwordHash,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusBadRequest, "user with this email already exists")
		}
		a.l.Error("failed to create admin user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &types.SetupResult{
		Message: "admin user created successfully",
		Email:   user.Email,
		Name:    user.Name,
	})
}

// AdminSetupStatus 查询管理员是否已经初始化
func (a *App) AdminSetupStatus(c echo.Context) error {
	rctx := c.Request().Context()

	var admin models.User
	if err := a.db.WithContext(rctx).First(&admin, "is_admin = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, &types.SetupStatus{AdminExists: false})
		}
		a.l.Error("failed to check admin status", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &types.SetupStatus{
		AdminExists: true,
		Email:       utils.P(admin.Email),
	})
}
