// Package markdown 文章与关于页正文的 Markdown 渲染
package markdown

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var md goldmark.Markdown

var wordRegex = regexp.MustCompile(`\w+`)

func init() {
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

// Render 将 Markdown 源文本渲染为 HTML
func Render(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ReadingTime 估算阅读时长（分钟），按每分钟200词计，至少1分钟
func ReadingTime(source string) int {
	words := len(wordRegex.FindAllString(source, -1))
	minutes := (words + 100) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
