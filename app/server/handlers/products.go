package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"atelier-site-core/app/server/constants"
	"atelier-site-core/app/server/models"
	"atelier-site-core/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) productMapFields(req *types.ProductInput, product *models.Product) {
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Width != nil {
		product.Width = req.Width
	}
	if req.Height != nil {
		product.Height = req.Height
	}
	if req.Depth != nil {
		product.Depth = req.Depth
	}
}

func (a *App) productValidate(product *models.Product) error {
	if product.Title == "" {
		return fmt.Errorf("title is required")
	}
	if product.Description == "" {
		return fmt.Errorf("description is required")
	}
	if product.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if !slices.Contains(models.ProductCategories, product.Category) {
		return fmt.Errorf("unknown product category: %q", product.Category)
	}
	if len(product.Images) < models.ProductImagesMin || len(product.Images) > models.ProductImagesMax {
		return fmt.Errorf("product needs %d to %d images, got %d",
			models.ProductImagesMin, models.ProductImagesMax, len(product.Images))
	}
	if product.Status != models.ProductStatusAvailable && product.Status != models.ProductStatusSold {
		return fmt.Errorf("unknown product status: %q", product.Status)
	}
	return nil
}

func productInfo(product *models.Product) types.ProductInfo {
	return types.ProductInfo{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Images:      product.Images,
		Status:      product.Status,
		Width:       product.Width,
		Height:      product.Height,
		Depth:       product.Depth,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func (a *App) ProductCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ProductInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	product := models.Product{
		Status: models.ProductStatusAvailable,
	}
	a.productMapFields(&req, &product)

	// 验证
	if err := a.productValidate(&product); err != nil {
		return a.erMsg(c, http.StatusBadRequest, err.Error())
	}

	if err := a.db.WithContext(rctx).Create(&product).Error; err != nil {
		a.l.Error("failed to create product", zap.Any("product", product), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheDel(rctx, constants.CacheKeyAvailableProducts)

	return c.JSON(http.StatusCreated, productInfo(&product))
}

func (a *App) ProductUpdate(c echo.Context) error {
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
	var req types.ProductInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的作品
	var product models.Product
	if err := a.db.WithContext(rctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get product", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.productMapFields(&req, &product)

	// 验证
	if err := a.productValidate(&product); err != nil {
		return a.erMsg(c, http.StatusBadRequest, err.Error())
	}

	// 更新作品
	if err := a.db.WithContext(rctx).Save(&product).Error; err != nil {
		a.l.Error("failed to update product", zap.Any("product", product), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheDel(rctx, constants.CacheKeyAvailableProducts)

	return c.JSON(http.StatusOK, productInfo(&product))
}

func (a *App) ProductDelete(c echo.Context) error {
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

	var product models.Product
	if err := a.db.WithContext(rctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get product", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 删除作品
	if err := a.db.WithContext(rctx).Delete(&product).Error; err != nil {
		a.l.Error("failed to delete product", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheDel(rctx, constants.CacheKeyAvailableProducts)

	return c.JSON(http.StatusOK, &types.Message{Message: "product deleted"})
}

// ProductList 公开的在售作品列表，最多 50 个
func (a *App) ProductList(c echo.Context) error {
	rctx := c.Request().Context()

	// 检查是否有缓存结果
	var resProducts []types.ProductInfo
	if a.cacheGetJSON(rctx, constants.CacheKeyAvailableProducts, &resProducts) {
		return c.JSON(http.StatusOK, resProducts)
	}

	var products []models.Product
	if err := a.db.WithContext(rctx).
		Where("status = ?", models.ProductStatusAvailable).
		Order("id DESC").
		Limit(50).
		Find(&products).Error; err != nil {
		a.l.Error("failed to get product list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resProducts = []types.ProductInfo{}
	for i := range products {
		resProducts = append(resProducts, productInfo(&products[i]))
	}

	// 加入缓存，方便下一次查询
	a.cacheSetJSON(rctx, constants.CacheKeyAvailableProducts, resProducts, constants.CacheExpireList)

	return c.JSON(http.StatusOK, resProducts)
}

func (a *App) ProductGet(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var product models.Product
	if err := a.db.WithContext(rctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get product", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, productInfo(&product))
}
