package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d+-[0-9A-F]{8}$`)

func createTestProduct(t *testing.T, a *App) *models.Product {
	t.Helper()

	product := models.Product{
		Title: "Blue Vase", Description: "Ceramic vase", Price: 120, Category: "craft",
		Images: []string{"/uploads/a.jpg"}, Status: models.ProductStatusAvailable,
	}
	require.NoError(t, a.db.Create(&product).Error)
	return &product
}

func TestOrderSubmit(t *testing.T) {
	a, mail := newTestApp(t)
	createTestProduct(t, a)

	rec := doJSON(t, a.OrderSubmit, http.MethodPost, "/api/shop/order",
		`{"productId":1,"name":"Buyer","email":"buyer@example.com","message":"I would like to buy this"}`,
		"", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result types.OrderResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Regexp(t, orderIDPattern, result.OrderID)

	// 买家确认邮件和管理员通知邮件各一封
	require.Len(t, mail.sent, 2)
	require.Equal(t, "buyer@example.com", mail.sent[0].To)
	require.Contains(t, mail.sent[0].HTML, result.OrderID)
	require.Equal(t, "owner@example.com", mail.sent[1].To)
	require.Contains(t, mail.sent[1].HTML, "Blue Vase")
}

func TestOrderSubmitMissingFields(t *testing.T) {
	a, _ := newTestApp(t)
	createTestProduct(t, a)

	for _, body := range []string{
		`{"name":"Buyer","email":"buyer@example.com","message":"hi"}`,
		`{"productId":1,"email":"buyer@example.com","message":"hi"}`,
		`{"productId":1,"name":"Buyer","message":"hi"}`,
		`{"productId":1,"name":"Buyer","email":"buyer@example.com"}`,
		`{"productId":1,"name":"","email":"buyer@example.com","message":"hi"}`,
	} {
		rec := doJSON(t, a.OrderSubmit, http.MethodPost, "/api/shop/order", body, "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestOrderSubmitUnknownProduct(t *testing.T) {
	a, _ := newTestApp(t)

	rec := doJSON(t, a.OrderSubmit, http.MethodPost, "/api/shop/order",
		`{"productId":99,"name":"Buyer","email":"buyer@example.com","message":"hi"}`, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderSubmitMailFailureStillSucceeds(t *testing.T) {
	a, mail := newTestApp(t)
	createTestProduct(t, a)
	mail.failFor["buyer@example.com"] = true
	mail.failFor["owner@example.com"] = true

	// 确认和通知都是尽力而为，寄不出去也不影响下单
	rec := doJSON(t, a.OrderSubmit, http.MethodPost, "/api/shop/order",
		`{"productId":1,"name":"Buyer","email":"buyer@example.com","message":"hi"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Empty(t, mail.sent)
}

func TestOrderSubmitNoAdminEmailConfigured(t *testing.T) {
	a, mail := newTestApp(t)
	createTestProduct(t, a)
	a.cfg.Mail.AdminEmail = ""

	rec := doJSON(t, a.OrderSubmit, http.MethodPost, "/api/shop/order",
		`{"productId":1,"name":"Buyer","email":"buyer@example.com","message":"hi"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	// 只有买家确认邮件
	require.Len(t, mail.sent, 1)
	require.Equal(t, "buyer@example.com", mail.sent[0].To)
}
