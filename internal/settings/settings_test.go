package settings

import (
	"strings"
	"testing"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/testutils"
)

func TestSettingRepository_GetSet(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewSettingRepository(db)

	// 未写入时回退到缺省值
	value, err := repo.Get("missing_key", "fallback")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if value != "fallback" {
		t.Errorf("Get missing = %q, want fallback", value)
	}

	if err := repo.Set("greeting", "hello"); err != nil {
		t.Fatalf("Set create: %v", err)
	}
	if err := repo.Set("greeting", "hola"); err != nil {
		t.Fatalf("Set update: %v", err)
	}

	value, err = repo.Get("greeting", "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "hola" {
		t.Errorf("Get after update = %q, want hola", value)
	}
}

func TestSettingService_AboutDefaults(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewSettingService(NewSettingRepository(db))

	about, bizErr := service.About()
	if bizErr != nil {
		t.Fatalf("About: %v", bizErr.Msg)
	}

	if about.AboutTitle != "Welcome to my blog" {
		t.Errorf("default about_title = %q", about.AboutTitle)
	}
	if about.AboutIntro == "" {
		t.Error("default about_intro should not be empty")
	}
	if about.TwitterURL != "" || about.GithubURL != "" {
		t.Error("social links default to empty")
	}
}

func TestSettingService_UpdateAboutRoundTrip(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewSettingService(NewSettingRepository(db))

	req := dto.UpdateAboutRequest{
		AboutTitle:   "About Me",
		AboutIntro:   "Short intro.",
		AboutContent: "# Hi\n\nI write about Go.",
		TwitterURL:   "https://twitter.com/example",
		GithubURL:    "https://github.com/example",
		LinkedinURL:  "https://linkedin.com/in/example",
	}
	if bizErr := service.UpdateAbout(req); bizErr != nil {
		t.Fatalf("UpdateAbout: %v", bizErr.Msg)
	}

	about, bizErr := service.About()
	if bizErr != nil {
		t.Fatalf("About: %v", bizErr.Msg)
	}

	if about.AboutTitle != req.AboutTitle {
		t.Errorf("about_title = %q, want %q", about.AboutTitle, req.AboutTitle)
	}
	if about.AboutContent != req.AboutContent {
		t.Errorf("about_content not persisted")
	}
	if !strings.Contains(about.AboutContentHTML, "<h1") {
		t.Errorf("about_content_html should be rendered markdown, got %q", about.AboutContentHTML)
	}
	if about.GithubURL != req.GithubURL {
		t.Errorf("github_url = %q", about.GithubURL)
	}
}
