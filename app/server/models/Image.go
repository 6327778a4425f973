package models

import (
	"time"

	"gorm.io/gorm"
)

// 图库分类为闭合枚举
var ImageCategories = []string{"painting", "sculpture", "sketch", "process", "other"}

type Image struct {
	gorm.Model

	URL         string    `gorm:"column:url"`            // 对外访问地址
	Title       string    `gorm:"column:title"`          // 标题，最长 200 字符
	Description string    `gorm:"column:description"`    // 描述，可以为空
	Category    string    `gorm:"column:category;index"` // 分类，取值见 ImageCategories
	UploadDate  time.Time `gorm:"column:upload_date;index"`
	StoredName  string    `gorm:"column:stored_name"` // 磁盘上的存储文件名，删除记录时一并清理
}
