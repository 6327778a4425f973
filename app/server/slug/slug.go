package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// 除小写字母、数字、连字符外的字符
	invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// 连续的连字符
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Make 由标题派生 URL 标识：Unicode 规范化去掉音调符号，转小写，
// 空格换成连字符，去掉其余非法字符，折叠重复的连字符。
func Make(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ := transform.String(t, title)

	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = multipleHyphens.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// IsValid 检查字符串是否是合法的 slug 形式
func IsValid(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}
