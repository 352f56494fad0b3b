package dto

// GenerateRequest AI 生成草稿请求
type GenerateRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// GenerateResponse AI 生成的草稿，字段形状与 PostForm 对齐，便于前端直接回填
type GenerateResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	// 逗号分隔的标签名
	Tags string `json:"tags"`
}
