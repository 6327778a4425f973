package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("accepts valid jpeg", func(t *testing.T) {
		assert.NoError(t, Validate(1024, "image/jpeg", "photo.jpg"))
	})

	t.Run("accepts uppercase extension", func(t *testing.T) {
		assert.NoError(t, Validate(1024, "image/png", "Scan.PNG"))
	})

	t.Run("size checked before type", func(t *testing.T) {
		// 6MB 且类型也非法：必须报大小错误
		err := Validate(6*1024*1024, "application/pdf", "doc.pdf")
		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "5MB"), "got: %v", err)
	})

	t.Run("rejects exactly over limit", func(t *testing.T) {
		assert.Error(t, Validate(MaxFileSize+1, "image/jpeg", "big.jpg"))
		assert.NoError(t, Validate(MaxFileSize, "image/jpeg", "fits.jpg"))
	})

	t.Run("rejects disallowed mime type", func(t *testing.T) {
		err := Validate(1024, "image/tiff", "scan.tiff")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "allowed")
	})

	t.Run("rejects extension mismatching type", func(t *testing.T) {
		err := Validate(1024, "image/png", "photo.jpg")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})
}
