// Package markdown 文章正文渲染
package markdown

import (
	"bytes"
	"html"
	"html/template"
	"regexp"
	"strings"
	"unicode"

	"github.com/labstack/gommon/log"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Ellipsis 摘要截断后追加的省略号
const Ellipsis = "…"

// Renderer Markdown 渲染器
//
// 原始 HTML 会被转义；危险链接（javascript: 等）由 goldmark 丢弃，
// 输出再经过 bluemonday UGC 策略过滤。
type Renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

// New 创建渲染器
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(&escapeHTMLRenderer{}, 100)),
		),
	)
	return newRenderer(md)
}

func newRenderer(md goldmark.Markdown) *Renderer {
	ugc := bluemonday.UGCPolicy()
	ugc.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")

	return &Renderer{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

var defaultRenderer = New()

// Render 使用默认渲染器
func Render(source string) (template.HTML, error) {
	return defaultRenderer.Render(source)
}

// RenderOrFallback 使用默认渲染器
func RenderOrFallback(source string) template.HTML {
	return defaultRenderer.RenderOrFallback(source)
}

// ExtractText 使用默认渲染器
func ExtractText(source string, maxLength int) string {
	return defaultRenderer.ExtractText(source, maxLength)
}

// Render 将 Markdown 渲染为安全的 HTML
func (r *Renderer) Render(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(r.ugc.SanitizeBytes(buf.Bytes())), nil
}

// RenderOrFallback 渲染失败时退化为转义后的纯文本，不中断页面请求
func (r *Renderer) RenderOrFallback(source string) template.HTML {
	out, err := r.Render(source)
	if err == nil {
		return out
	}
	log.Errorf("渲染 Markdown 失败，使用纯文本输出: %v", err)
	return PlainHTML(source)
}

// PlainHTML 转义文本，段落用 <p>，段内换行用 <br>
func PlainHTML(source string) template.HTML {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	var b strings.Builder
	for _, para := range strings.Split(source, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		for i, line := range lines {
			lines[i] = html.EscapeString(line)
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>"))
		b.WriteString("</p>")
	}
	return template.HTML(b.String())
}

// ExtractText 渲染后去除标签并合并空白，超过 maxLength 时在单词边界截断并追加省略号
func (r *Renderer) ExtractText(source string, maxLength int) string {
	rendered, err := r.Render(source)
	if err != nil {
		log.Warnf("提取摘要时渲染失败: %v", err)
		return truncateRunes(source, maxLength)
	}

	text := html.UnescapeString(r.strict.Sanitize(string(rendered)))
	text = strings.Join(strings.Fields(text), " ")
	return Truncate(text, maxLength)
}

// Truncate 在 maxLength 之前最后一个空白处截断，找不到空白时按字符截断
//
// 首个单词本身超过 maxLength 时直接在 maxLength 处切断，如
// Truncate("supercalifragilistic word", 5) 返回 "super…"，摘要长度上限优先于词完整。
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if maxLength <= 0 || len(runes) <= maxLength {
		return text
	}

	// 恰好在单词末尾截断时保留整个单词
	if unicode.IsSpace(runes[maxLength]) {
		return strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace) + Ellipsis
	}

	cut := runes[:maxLength]
	for i := len(cut) - 1; i > 0; i-- {
		if unicode.IsSpace(cut[i]) {
			return strings.TrimRightFunc(string(cut[:i]), unicode.IsSpace) + Ellipsis
		}
	}
	// 超长首词
	return string(cut) + Ellipsis
}

func truncateRunes(text string, maxLength int) string {
	runes := []rune(text)
	if maxLength <= 0 || len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + Ellipsis
}
