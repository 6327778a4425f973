package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	a, mail := newTestApp(t)

	rec := doJSON(t, a.Subscribe, http.MethodPost, "/api/subscribers/subscribe",
		`{"email":"  Reader@Example.COM "}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// 入库的邮箱统一小写，退订令牌长度为 64 个十六进制字符
	var sub models.Subscriber
	require.NoError(t, a.db.First(&sub, "email = ?", "reader@example.com").Error)
	require.True(t, sub.IsActive)
	require.Len(t, sub.UnsubscribeToken, 64)

	// 欢迎邮件发给了订阅者
	require.Len(t, mail.sent, 1)
	require.Equal(t, "reader@example.com", mail.sent[0].To)
}

func TestSubscribeDuplicate(t *testing.T) {
	a, _ := newTestApp(t)

	rec := doJSON(t, a.Subscribe, http.MethodPost, "/api/subscribers/subscribe",
		`{"email":"reader@example.com"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, a.Subscribe, http.MethodPost, "/api/subscribers/subscribe",
		`{"email":"READER@example.com"}`, "", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	a, _ := newTestApp(t)

	for _, email := range []string{"not-an-email", "a@b", "@example.com", ""} {
		rec := doJSON(t, a.Subscribe, http.MethodPost, "/api/subscribers/subscribe",
			fmt.Sprintf(`{"email":%q}`, email), "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, "email: %q", email)
	}
}

func TestSubscribeWelcomeMailFailureStillSubscribes(t *testing.T) {
	a, mail := newTestApp(t)
	mail.failFor["reader@example.com"] = true

	// 欢迎邮件失败不影响订阅结果
	rec := doJSON(t, a.Subscribe, http.MethodPost, "/api/subscribers/subscribe",
		`{"email":"reader@example.com"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	require.NoError(t, a.db.Model(&models.Subscriber{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUnsubscribe(t *testing.T) {
	a, _ := newTestApp(t)

	sub, err := models.NewSubscriber("reader@example.com")
	require.NoError(t, err)
	require.NoError(t, a.db.Create(sub).Error)

	body := fmt.Sprintf(`{"token":%q}`, sub.UnsubscribeToken)
	rec := doJSON(t, a.Unsubscribe, http.MethodPost, "/api/subscribers/unsubscribe", body, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var reloaded models.Subscriber
	require.NoError(t, a.db.First(&reloaded, "id = ?", sub.ID).Error)
	require.False(t, reloaded.IsActive)

	// 重复退订同样成功（幂等）
	rec = doJSON(t, a.Unsubscribe, http.MethodPost, "/api/subscribers/unsubscribe", body, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnsubscribeUnknownToken(t *testing.T) {
	a, _ := newTestApp(t)

	rec := doJSON(t, a.Unsubscribe, http.MethodPost, "/api/subscribers/unsubscribe",
		`{"token":"deadbeef"}`, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookDownload(t *testing.T) {
	a, mail := newTestApp(t)

	rec := doJSON(t, a.BookDownload, http.MethodPost, "/api/subscribers/download-book",
		`{"email":"reader@example.com"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// 顺手订阅
	var sub models.Subscriber
	require.NoError(t, a.db.First(&sub, "email = ?", "reader@example.com").Error)
	require.True(t, sub.IsActive)

	// 邮件里有完整的下载链接
	require.Len(t, mail.sent, 1)
	require.Contains(t, mail.sent[0].HTML, "http://localhost:1323/files/art-guide.pdf")
}

func TestBookDownloadExistingSubscriberKeptAsIs(t *testing.T) {
	a, mail := newTestApp(t)

	sub, err := models.NewSubscriber("reader@example.com")
	require.NoError(t, err)
	sub.IsActive = false
	require.NoError(t, a.db.Create(sub).Error)

	rec := doJSON(t, a.BookDownload, http.MethodPost, "/api/subscribers/download-book",
		`{"email":"reader@example.com"}`, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, mail.sent, 1)

	// 已有记录不被改动：退订状态与令牌保持原样
	var reloaded models.Subscriber
	require.NoError(t, a.db.First(&reloaded, "id = ?", sub.ID).Error)
	require.False(t, reloaded.IsActive)
	require.Equal(t, sub.UnsubscribeToken, reloaded.UnsubscribeToken)
}

func TestBookDownloadMailFailureFailsRequest(t *testing.T) {
	a, mail := newTestApp(t)
	mail.failFor["reader@example.com"] = true

	// 这封邮件就是功能本身，发不出去要报错
	rec := doJSON(t, a.BookDownload, http.MethodPost, "/api/subscribers/download-book",
		`{"email":"reader@example.com"}`, "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubscriberAdminOperations(t *testing.T) {
	a, _ := newTestApp(t)
	token := adminToken(t, a)

	for i := 0; i < 3; i++ {
		sub, err := models.NewSubscriber(fmt.Sprintf("reader%d@example.com", i))
		require.NoError(t, err)
		require.NoError(t, a.db.Create(sub).Error)
	}

	// 列表
	rec := doJSON(t, a.SubscriberList, http.MethodGet, "/api/subscribers", "", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list types.SubscriberListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.List, 3)

	// 手动停用
	rec = doJSON(t, a.SubscriberActiveUpdate, http.MethodPatch, "/api/subscribers/1",
		`{"isActive":false}`, token, map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var sub models.Subscriber
	require.NoError(t, a.db.First(&sub, "id = ?", 1).Error)
	require.False(t, sub.IsActive)

	// 删除
	rec = doJSON(t, a.SubscriberDelete, http.MethodDelete, "/api/subscribers/2",
		"", token, map[string]string{"id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, a.db.Model(&models.Subscriber{}).Count(&count).Error)
	require.EqualValues(t, 2, count)

	// 不存在的记录
	rec = doJSON(t, a.SubscriberDelete, http.MethodDelete, "/api/subscribers/99",
		"", token, map[string]string{"id": "99"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
