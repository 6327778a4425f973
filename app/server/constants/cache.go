package constants

import "time"

const (
	CacheKeyPostBySlug        = "site:post:slug:%s"
	CacheKeyPublishedPosts    = "site:posts:published"
	CacheKeyAvailableProducts = "site:products:available"
)

const (
	CacheExpirePost = 1 * time.Hour
	CacheExpireList = 10 * time.Minute
)
