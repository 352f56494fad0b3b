package post

import (
	"fmt"
	"strings"
	"unicode"
)

// ExistsFunc 判断候选 slug 是否已被占用
type ExistsFunc func(slug string) (bool, error)

// Slugify 把自由文本规范化为小写、连字符分隔的 ASCII 形式
// 非字母数字字符一律视为分隔符，连续分隔符折叠为一个连字符
func Slugify(text string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingHyphen = true
		default:
			// 其他符号（标点、非 ASCII）同样作为分隔符丢弃
			pendingHyphen = true
		}
	}

	return b.String()
}

// AssignUniqueSlug 生成全局唯一 slug
// 基础 slug 未被占用则直接使用，否则依次尝试 base-1, base-2, ...
// 计数没有上限：大量同名标题只会变慢，不会出错
//
// 单写者下该过程无竞态；并发写者下 check-then-insert 存在窗口，
// 数据库唯一约束是最终兜底，插入冲突由调用方重试（见 PostService）
func AssignUniqueSlug(text string, exists ExistsFunc) (string, error) {
	base := Slugify(text)
	if base == "" {
		base = "untitled"
	}

	slug := base
	for counter := 1; ; counter++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
