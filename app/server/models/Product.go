package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ProductStatusAvailable = "available"
	ProductStatusSold      = "sold"
)

// 作品分类为闭合枚举
var ProductCategories = []string{"painting", "sculpture", "print", "craft", "other"}

// 单个作品允许的配图数量范围
const (
	ProductImagesMin = 1
	ProductImagesMax = 10
)

type Product struct {
	gorm.Model

	// 作品基础信息
	Title       string         `gorm:"column:title"`                // 作品名
	Description string         `gorm:"column:description"`          // 作品介绍
	Price       float64        `gorm:"column:price;index"`          // 价格，不允许为负
	Category    string         `gorm:"column:category;index"`       // 分类，取值见 ProductCategories
	Images      pq.StringArray `gorm:"column:images;type:text[]"`   // 配图地址，1 到 10 张
	Status      string         `gorm:"column:status;index"`         // available 或 sold

	// 尺寸信息（可选）
	Width  *float64 `gorm:"column:width"`  // 宽，厘米
	Height *float64 `gorm:"column:height"` // 高，厘米
	Depth  *float64 `gorm:"column:depth"`  // 深，厘米
}
