package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"github.com/stretchr/testify/require"
)

func TestAdminSetupFlow(t *testing.T) {
	a, _ := newTestApp(t)

	// 初始状态：没有管理员
	rec := doJSON(t, a.AdminSetupStatus, http.MethodGet, "/api/admin/setup", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status types.SetupStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.False(t, status.AdminExists)

	// 密钥不对
	rec = doJSON(t, a.AdminSetup, http.MethodPost, "/api/admin/setup",
		`{"email":"Anna@Example.com","password":"s3cret","secretKey":"wrong"}`, "", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// 密钥正确：创建成功，邮箱小写
	rec = doJSON(t, a.AdminSetup, http.MethodPost, "/api/admin/setup",
		`{"email":"Anna@Example.com","password":"s3cret","name":"Anna","secretKey":"setup-secret"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var result types.SetupResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, "anna@example.com", result.Email)
	require.Equal(t, "Anna", result.Name)

	var admin models.User
	require.NoError(t, a.db.First(&admin, "email = ?", "anna@example.com").Error)
	require.True(t, admin.IsAdmin)
	// 密码只存 hash
	require.NotEqual(t, "s3cret", admin.Password)

	// 已有管理员：即使密钥正确也拒绝
	rec = doJSON(t, a.AdminSetup, http.MethodPost, "/api/admin/setup",
		`{"email":"second@example.com","password":"s3cret","secretKey":"setup-secret"}`, "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 状态更新为已初始化
	rec = doJSON(t, a.AdminSetupStatus, http.MethodGet, "/api/admin/setup", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.True(t, status.AdminExists)
	require.NotNil(t, status.Email)
	require.Equal(t, "anna@example.com", *status.Email)
}

func TestAuthLogin(t *testing.T) {
	a, _ := newTestApp(t)

	rec := doJSON(t, a.AdminSetup, http.MethodPost, "/api/admin/setup",
		`{"email":"anna@example.com","password":"s3cret","secretKey":"setup-secret"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// 正确的邮箱和密码：返回可解析的管理员 token
	rec = doJSON(t, a.AuthLogin, http.MethodPost, "/api/auth/login",
		`{"email":"ANNA@example.com","password":"s3cret"}`, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var loginToken types.LoginToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginToken))
	require.NotNil(t, loginToken.Token)

	jwtUser, err := a.jwt.ParseUser(*loginToken.Token)
	require.NoError(t, err)
	require.True(t, jwtUser.IsAdmin)

	// 密码错误
	rec = doJSON(t, a.AuthLogin, http.MethodPost, "/api/auth/login",
		`{"email":"anna@example.com","password":"wrong"}`, "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// 用户不存在
	rec = doJSON(t, a.AuthLogin, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"s3cret"}`, "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// 缺字段
	rec = doJSON(t, a.AuthLogin, http.MethodPost, "/api/auth/login",
		`{"email":"anna@example.com"}`, "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
