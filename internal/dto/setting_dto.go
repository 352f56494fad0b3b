package dto

// AboutResponse 关于页内容
type AboutResponse struct {
	AboutTitle       string `json:"about_title"`
	AboutIntro       string `json:"about_intro"`
	AboutContent     string `json:"about_content"`
	AboutContentHTML string `json:"about_content_html"`
	TwitterURL       string `json:"twitter_url"`
	GithubURL        string `json:"github_url"`
	LinkedinURL      string `json:"linkedin_url"`
}

// UpdateAboutRequest 关于页更新请求
type UpdateAboutRequest struct {
	AboutTitle   string `json:"about_title" binding:"max=200"`
	AboutIntro   string `json:"about_intro" binding:"max=500"`
	AboutContent string `json:"about_content"`
	TwitterURL   string `json:"twitter_url"`
	GithubURL    string `json:"github_url"`
	LinkedinURL  string `json:"linkedin_url"`
}
