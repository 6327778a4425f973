package models

import (
	"strings"
	"time"

	"atelier-site-core/app/server/slug"
	"gorm.io/gorm"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type Post struct {
	gorm.Model

	// 文章内容
	Title         string `gorm:"column:title"`          // 标题
	Content       string `gorm:"column:content"`        // 正文
	Excerpt       string `gorm:"column:excerpt"`        // 摘要，可以为空
	FeaturedImage string `gorm:"column:featured_image"` // 封面图地址，可以为空

	// 发布状态
	Status      string     `gorm:"column:status;index"` // draft 或 published
	PublishDate *time.Time `gorm:"column:publish_date"` // 发布时间，草稿为 NULL

	// 派生字段
	Slug      string `gorm:"column:slug;uniqueIndex"` // URL 标识，由标题派生，一经确定不再改变
	WordCount int    `gorm:"column:word_count"`       // 正文词数，每次保存前重新计算

	// 作者
	AuthorID uint `gorm:"column:author_id;index"` // 所属作者
}

// Derive 计算派生字段：词数总是按当前正文重新计算，
// slug 只在为空时由标题生成（稳定性约束：之后修改标题也不会变）。
// 所有写入路径都应在落库前调用这里，而不是依赖隐式钩子。
func (p *Post) Derive() {
	p.WordCount = len(strings.Fields(p.Content))

	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
}
