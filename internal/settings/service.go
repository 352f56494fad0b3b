package settings

import (
	"log"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/markdown"
	"terminal-terrace/blog/internal/model/setting"
	"terminal-terrace/blog/pkg/response"
)

// 关于页各字段的缺省值，新站点未配置时展示
var aboutDefaults = map[string]string{
	setting.KeyAboutTitle: "Welcome to my blog",
	setting.KeyAboutIntro: "Sharing thoughts, stories, and ideas with the world.",
}

// SettingService 关于页内容的读写
type SettingService struct {
	repo *SettingRepository
}

func NewSettingService(repo *SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// About 读取关于页全部设置，正文渲染为 HTML
func (s *SettingService) About() (*dto.AboutResponse, *response.BusinessError) {
	keys := []string{
		setting.KeyAboutTitle,
		setting.KeyAboutIntro,
		setting.KeyAboutContent,
		setting.KeyTwitterURL,
		setting.KeyGithubURL,
		setting.KeyLinkedinURL,
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := s.repo.Get(key, aboutDefaults[key])
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("读取站点设置失败"),
				response.WithError(err),
			)
		}
		values[key] = value
	}

	contentHTML, err := markdown.Render(values[setting.KeyAboutContent])
	if err != nil {
		log.Printf("[blog] 关于页正文渲染失败: %v", err)
	}

	return &dto.AboutResponse{
		AboutTitle:       values[setting.KeyAboutTitle],
		AboutIntro:       values[setting.KeyAboutIntro],
		AboutContent:     values[setting.KeyAboutContent],
		AboutContentHTML: contentHTML,
		TwitterURL:       values[setting.KeyTwitterURL],
		GithubURL:        values[setting.KeyGithubURL],
		LinkedinURL:      values[setting.KeyLinkedinURL],
	}, nil
}

// UpdateAbout 逐个 key 覆盖写入关于页设置
func (s *SettingService) UpdateAbout(req dto.UpdateAboutRequest) *response.BusinessError {
	updates := map[string]string{
		setting.KeyAboutTitle:   req.AboutTitle,
		setting.KeyAboutIntro:   req.AboutIntro,
		setting.KeyAboutContent: req.AboutContent,
		setting.KeyTwitterURL:   req.TwitterURL,
		setting.KeyGithubURL:    req.GithubURL,
		setting.KeyLinkedinURL:  req.LinkedinURL,
	}

	for key, value := range updates {
		if err := s.repo.Set(key, value); err != nil {
			return response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("保存站点设置失败"),
				response.WithError(err),
			)
		}
	}
	return nil
}
