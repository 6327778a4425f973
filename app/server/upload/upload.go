package upload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize 上传文件大小上限
const MaxFileSize = 5 * 1024 * 1024 // 5MB

// 每种允许的 MIME 类型对应的扩展名
var allowedExts = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
	"image/gif":  {".gif"},
}

// Validate 校验上传文件的元信息。
// 检查顺序固定：先大小，再 MIME 类型，最后扩展名是否与类型一致；
// 第一个不通过的检查即返回对应原因。
func Validate(size int64, mimeType string, filename string) error {
	if size > MaxFileSize {
		return fmt.Errorf("file size exceeds %dMB limit", MaxFileSize/1024/1024)
	}

	exts, ok := allowedExts[mimeType]
	if !ok {
		return fmt.Errorf("only JPEG, PNG, WebP and GIF images are allowed")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range exts {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("file extension %q does not match type %s", ext, mimeType)
}
