package message

import "github.com/microcosm-cc/bluemonday"

// Sanitizer 消息内容清洗，*bluemonday.Policy 满足该接口
type Sanitizer interface {
	Sanitize(s string) string
}

// NewContentPolicy 只保留基础的 markdown 渲染标签，其余 HTML 全部去除
func NewContentPolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AllowElements("p", "br", "strong", "em", "code", "pre", "blockquote")
	p.AllowElements("ul", "ol", "li")
	p.AllowAttrs("href").OnElements("a")
	p.RequireParseableURLs(true)
	p.RequireNoFollowOnLinks(true)
	return p
}
