package generate

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/pkg/response"
)

const generateTimeout = 60 * time.Second

// GenerateService 调用 Gemini 生成文章草稿
// 四段内容（正文/标题/摘要/标签）各自独立请求，正文先生成，其余从正文派生
type GenerateService struct {
	apiKey string
	model  string
}

func NewGenerateService(apiKey, model string) *GenerateService {
	return &GenerateService{apiKey: apiKey, model: model}
}

// Enabled 是否配置了 API Key
func (s *GenerateService) Enabled() bool {
	return s.apiKey != ""
}

// Draft 按主题生成完整草稿
// 上游任何一步失败都折叠为同一个对外错误，细节只进日志
func (s *GenerateService) Draft(req dto.GenerateRequest) (*dto.GenerateResponse, *response.BusinessError) {
	// binding:"required" 拦不住纯空白，按空主题拒绝
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("主题不能为空"),
		)
	}

	if !s.Enabled() {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未配置 AI 服务"),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[blog] 创建 Gemini 客户端失败: %v", err)
		return nil, providerError()
	}

	content, err := s.generate(ctx, client, fmt.Sprintf(
		"Write a well-structured blog post in Markdown about: %s. "+
			"Use headings, short paragraphs, and a friendly, knowledgeable tone. "+
			"Do not include a top-level title heading.", topic))
	if err != nil {
		log.Printf("[blog] 生成正文失败: %v", err)
		return nil, providerError()
	}

	title, err := s.generate(ctx, client, fmt.Sprintf(
		"Suggest a single concise, catchy blog post title for the following article. "+
			"Reply with the title only, no quotes.\n\n%s", content))
	if err != nil {
		log.Printf("[blog] 生成标题失败: %v", err)
		return nil, providerError()
	}

	excerpt, err := s.generate(ctx, client, fmt.Sprintf(
		"Write a one or two sentence excerpt summarizing the following article, "+
			"under 300 characters. Reply with the excerpt only.\n\n%s", content))
	if err != nil {
		log.Printf("[blog] 生成摘要失败: %v", err)
		return nil, providerError()
	}

	tags, err := s.generate(ctx, client, fmt.Sprintf(
		"Suggest 3 to 5 short topical tags for the following article. "+
			"Reply with the tags only, comma separated, lowercase.\n\n%s", content))
	if err != nil {
		log.Printf("[blog] 生成标签失败: %v", err)
		return nil, providerError()
	}

	return &dto.GenerateResponse{
		Title:   strings.Trim(strings.TrimSpace(title), `"`),
		Content: strings.TrimSpace(content),
		Excerpt: strings.TrimSpace(excerpt),
		Tags:    strings.TrimSpace(tags),
	}, nil
}

func (s *GenerateService) generate(ctx context.Context, client *genai.Client, prompt string) (string, error) {
	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

func providerError() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.ProviderError),
		response.WithErrorMessage("生成失败，请稍后重试"),
	)
}
