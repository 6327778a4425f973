package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"atelier-site-core/app/server/constants"
	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) postMapFields(req *types.PostInput, post *models.Post) {
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if req.PublishDate != nil {
		post.PublishDate = req.PublishDate
	}
}

func (a *App) postValidate(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("title is required")
	}
	if post.Content == "" {
		return fmt.Errorf("content is required")
	}
	if post.Status != models.PostStatusDraft && post.Status != models.PostStatusPublished {
		return fmt.Errorf("unknown post status: %q", post.Status)
	}
	return nil
}

func (a *App) postInvalidateCache(ctx context.Context, post *models.Post) {
	a.cacheDel(ctx,
		constants.CacheKeyPublishedPosts,
		fmt.Sprintf(constants.CacheKeyPostBySlug, post.Slug),
	)
}

func postInfo(post *models.Post) types.PostInfo {
	return types.PostInfo{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		Status:        post.Status,
		WordCount:     post.WordCount,
		PublishDate:   post.PublishDate,
		AuthorID:      post.AuthorID,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

func (a *App) PostCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	jwtUser, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.PostInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	post := models.Post{
		Status:   models.PostStatusDraft,
		AuthorID: jwtUser.ID,
	}
	a.postMapFields(&req, &post)

	// 验证
	if err := a.postValidate(&post); err != nil {
		return a.erMsg(c, http.StatusBadRequest, err.Error())
	}

	// 发布时间：发布的文章没有指定就取当前时间
	if post.Status == models.PostStatusPublished && post.PublishDate == nil {
		now := time.Now()
		post.PublishDate = &now
	}

	// 派生字段在落库前显式计算
	post.Derive()

	if err := a.db.WithContext(rctx).Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusConflict, "post slug already exists")
		}
		a.l.Error("failed to create post", zap.Any("post", post), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.postInvalidateCache(rctx, &post)

	return c.JSON(http.StatusCreated, postInfo(&post))
}

func (a *App) PostUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.PostUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.ID == nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的文章
	var post models.Post
	if err := a.db.WithContext(rctx).First(&post, "id = ?", *req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get post", zap.Uint("id", *req.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.postMapFields(&req.PostInput, &post)

	// 验证
	if err := a.postValidate(&post); err != nil {
		return a.erMsg(c, http.StatusBadRequest, err.Error())
	}

	if post.Status == models.PostStatusPublished && post.PublishDate == nil {
		now := time.Now()
		post.PublishDate = &now
	}

	// 词数按新正文重算； slug 已存在，不会被改变
	post.Derive()

	// 更新文章
	if err := a.db.WithContext(rctx).Save(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusConflict, "post slug already exists")
		}
		a.l.Error("failed to update post", zap.Any("post", post), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.postInvalidateCache(rctx, &post)

	return c.JSON(http.StatusOK, postInfo(&post))
}

func (a *App) PostDelete(c echo.Context) error {
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

	var post models.Post
	if err := a.db.WithContext(rctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get post", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 删除文章
	if err := a.db.WithContext(rctx).Delete(&post).Error; err != nil {
		a.l.Error("failed to delete post", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.postInvalidateCache(rctx, &post)

	return c.JSON(http.StatusOK, &types.Message{Message: "post deleted"})
}

func (a *App) PostListAdmin(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var (
		posts      []models.Post
		postsCount int64
	)

	showAll, page, limit := a.parsePagination(queryUint(c, "page"), queryUint(c, "limit"))
	queryBase := a.db.WithContext(rctx).Model(&models.Post{}).Order("id ASC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&posts).Error; err != nil {
		a.l.Error("failed to get post list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := a.db.WithContext(rctx).Model(&models.Post{}).Count(&postsCount).Error; err != nil {
		a.l.Error("failed to count post", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resPosts := []types.PostInfo{}
	for i := range posts {
		resPosts = append(resPosts, postInfo(&posts[i]))
	}

	return c.JSON(http.StatusOK, &types.PostListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(postsCount, showAll, limit),
		List:    resPosts,
	})
}

func (a *App) PostListPublished(c echo.Context) error {
	rctx := c.Request().Context()

	// 检查是否有缓存结果
	var resPosts []types.PostInfo
	if a.cacheGetJSON(rctx, constants.CacheKeyPublishedPosts, &resPosts) {
		return c.JSON(http.StatusOK, resPosts)
	}

	var posts []models.Post
	if err := a.db.WithContext(rctx).
		Where("status = ?", models.PostStatusPublished).
		Order("publish_date DESC").
		Find(&posts).Error; err != nil {
		a.l.Error("failed to get published posts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resPosts = []types.PostInfo{}
	for i := range posts {
		resPosts = append(resPosts, postInfo(&posts[i]))
	}

	// 加入缓存，方便下一次查询
	a.cacheSetJSON(rctx, constants.CacheKeyPublishedPosts, resPosts, constants.CacheExpireList)

	return c.JSON(http.StatusOK, resPosts)
}

func (a *App) PostGetBySlug(c echo.Context) error {
	rctx := c.Request().Context()
	slug := c.Param("slug")

	cacheKey := fmt.Sprintf(constants.CacheKeyPostBySlug, slug)

	// 检查是否有缓存结果
	var resPost types.PostInfo
	if a.cacheGetJSON(rctx, cacheKey, &resPost) {
		return c.JSON(http.StatusOK, resPost)
	}

	var post models.Post
	if err := a.db.WithContext(rctx).
		First(&post, "slug = ? AND status = ?", slug, models.PostStatusPublished).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get post by slug", zap.String("slug", slug), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	resPost = postInfo(&post)

	// 加入缓存，方便下一次查询
	a.cacheSetJSON(rctx, cacheKey, resPost, constants.CacheExpirePost)

	return c.JSON(http.StatusOK, resPost)
}
