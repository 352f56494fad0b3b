package dto

import "time"

// PostForm 创建/编辑文章的表单（multipart，封面图单独取 cover_image 文件域）
type PostForm struct {
	Title   string `form:"title" binding:"required,max=200"`
	Excerpt string `form:"excerpt" binding:"max=500"`
	Content string `form:"content" binding:"required"`
	// 逗号分隔的标签名列表
	Tags        string `form:"tags"`
	IsPublished bool   `form:"is_published"`
	IsFeatured  bool   `form:"is_featured"`
}

// PostSummary 列表页使用的文章摘要
type PostSummary struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"cover_image,omitempty"`
	IsPublished bool       `json:"is_published"`
	IsFeatured  bool       `json:"is_featured"`
	Views       uint       `json:"views"`
	ReadingTime int        `json:"reading_time"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// PostDetail 文章详情（含渲染后的 HTML 与相关文章）
type PostDetail struct {
	PostSummary
	Content     string        `json:"content"`
	ContentHTML string        `json:"content_html"`
	Related     []PostSummary `json:"related"`
}

// AdminPostDetail 后台编辑回显（标签回显为逗号分隔字符串）
type AdminPostDetail struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"cover_image,omitempty"`
	IsPublished bool       `json:"is_published"`
	IsFeatured  bool       `json:"is_featured"`
	Views       uint       `json:"views"`
	Tags        string     `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// TagInfo 标签基础信息
type TagInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostListResponse 分页文章列表
type PostListResponse struct {
	Posts      []PostSummary `json:"posts"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// HomeResponse 首页数据：推荐位 + 分页列表 + 在用标签
type HomeResponse struct {
	Featured *PostSummary `json:"featured,omitempty"`
	PostListResponse
	Tags []TagInfo `json:"tags"`
}

// TagPostsResponse 标签页数据
type TagPostsResponse struct {
	Tag TagInfo `json:"tag"`
	PostListResponse
}

// DashboardResponse 后台仪表盘统计
type DashboardResponse struct {
	TotalPosts     int64         `json:"total_posts"`
	PublishedPosts int64         `json:"published_posts"`
	DraftPosts     int64         `json:"draft_posts"`
	TotalViews     int64         `json:"total_views"`
	RecentPosts    []PostSummary `json:"recent_posts"`
}
