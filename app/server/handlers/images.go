package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"atelier-site-core/app/server/upload"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func imageInfo(img *models.Image) types.ImageInfo {
	return types.ImageInfo{
		ID:          img.ID,
		URL:         img.URL,
		Title:       img.Title,
		Description: img.Description,
		Category:    img.Category,
		UploadDate:  img.UploadDate,
	}
}

// ImageUpload 上传图库图片： multipart 表单带 file 、 title 、 category 、 description 。
// 校验顺序固定（大小、类型、扩展名），存储文件名用 UUID 重新生成。
func (a *App) ImageUpload(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "file is required")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	category := c.FormValue("category")
	description := c.FormValue("description")

	if title == "" {
		return a.erMsg(c, http.StatusBadRequest, "title is required")
	}
	if len(title) > 200 {
		return a.erMsg(c, http.StatusBadRequest, "title cannot exceed 200 characters")
	}
	if !slices.Contains(models.ImageCategories, category) {
		return a.erMsg(c, http.StatusBadRequest, fmt.Sprintf("unknown image category: %q", category))
	}

	// 文件校验：大小在前，类型在后
	if err := upload.Validate(fileHeader.Size, fileHeader.Header.Get("Content-Type"), fileHeader.Filename); err != nil {
		return a.erMsg(c, http.StatusBadRequest, err.Error())
	}

	// 存储文件名重新生成，不信任上传方给的名字
	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))

	if err := os.MkdirAll(a.cfg.System.UploadsDir, 0o755); err != nil {
		a.l.Error("failed to create uploads dir", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	dstPath := filepath.Join(a.cfg.System.UploadsDir, storedName)
	dst, err := os.Create(dstPath)
	if err != nil {
		a.l.Error("failed to create stored file", zap.String("path", dstPath), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		a.l.Error("failed to write stored file", zap.String("path", dstPath), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	image := models.Image{
		URL:         strings.TrimRight(a.cfg.System.PublicBaseURL, "/") + "/uploads/" + storedName,
		Title:       title,
		Description: description,
		Category:    category,
		UploadDate:  time.Now(),
		StoredName:  storedName,
	}
	if err := a.db.WithContext(rctx).Create(&image).Error; err != nil {
		a.l.Error("failed to create image record", zap.Any("image", image), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, imageInfo(&image))
}

func (a *App) ImageList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var (
		images      []models.Image
		imagesCount int64
	)

	showAll, page, limit := a.parsePagination(queryUint(c, "page"), queryUint(c, "limit"))
	queryBase := a.db.WithContext(rctx).Model(&models.Image{}).Order("upload_date DESC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&images).Error; err != nil {
		a.l.Error("failed to get image list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := a.db.WithContext(rctx).Model(&models.Image{}).Count(&imagesCount).Error; err != nil {
		a.l.Error("failed to count image", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resImages := []types.ImageInfo{}
	for i := range images {
		resImages = append(resImages, imageInfo(&images[i]))
	}

	return c.JSON(http.StatusOK, &types.ImageListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(imagesCount, showAll, limit),
		List:    resImages,
	})
}

func (a *App) ImageDelete(c echo.Context) error {
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

	var image models.Image
	if err := a.db.WithContext(rctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get image", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 删除记录
	if err := a.db.WithContext(rctx).Delete(&image).Error; err != nil {
		a.l.Error("failed to delete image", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 磁盘文件尽力清理，失败只记日志
	if image.StoredName != "" {
		if err := os.Remove(filepath.Join(a.cfg.System.UploadsDir, image.StoredName)); err != nil && !os.IsNotExist(err) {
			a.l.Error("failed to remove stored file", zap.String("storedName", image.StoredName), zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, &types.Message{Message: "image deleted"})
}
