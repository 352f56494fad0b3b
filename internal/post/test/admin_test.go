package post_test

import (
	"testing"

	"terminal-terrace/blog/internal/testutils"
)

func TestDashboard_Integration(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	testutils.CreateTestPost(db, author.ID, testutils.Published(), testutils.WithViews(10))
	testutils.CreateTestPost(db, author.ID, testutils.Published(), testutils.WithViews(7))
	testutils.CreateTestPost(db, author.ID) // draft

	stats, bizErr := service.Dashboard()
	if bizErr != nil {
		t.Fatalf("Dashboard: %v", bizErr.Msg)
	}

	if stats.TotalPosts != 3 {
		t.Errorf("total_posts = %d, want 3", stats.TotalPosts)
	}
	if stats.PublishedPosts != 2 {
		t.Errorf("published_posts = %d, want 2", stats.PublishedPosts)
	}
	if stats.DraftPosts != 1 {
		t.Errorf("draft_posts = %d, want 1", stats.DraftPosts)
	}
	if stats.TotalViews != 17 {
		t.Errorf("total_views = %d, want 17", stats.TotalViews)
	}
	if len(stats.RecentPosts) != 3 {
		t.Errorf("recent_posts = %d, want 3", len(stats.RecentPosts))
	}
}

func TestAdminList_StatusFilter(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	testutils.CreateTestPost(db, author.ID, testutils.Published())
	testutils.CreateTestPost(db, author.ID)
	testutils.CreateTestPost(db, author.ID)

	tests := []struct {
		status string
		want   int64
	}{
		{status: "all", want: 3},
		{status: "published", want: 1},
		{status: "draft", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			result, bizErr := service.AdminList(tt.status, 1)
			if bizErr != nil {
				t.Fatalf("AdminList(%q): %v", tt.status, bizErr.Msg)
			}
			if result.Total != tt.want {
				t.Errorf("AdminList(%q) total = %d, want %d", tt.status, result.Total, tt.want)
			}
		})
	}
}

func TestAdminDetail_Integration(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	p := testutils.CreateTestPost(db, author.ID)
	testutils.CreateTestTag(db, "alpha", p.ID)
	testutils.CreateTestTag(db, "beta", p.ID)

	detail, bizErr := service.AdminDetail(p.ID)
	if bizErr != nil {
		t.Fatalf("AdminDetail: %v", bizErr.Msg)
	}

	if detail.ID != p.ID {
		t.Errorf("id = %d, want %d", detail.ID, p.ID)
	}
	// 标签回显为逗号分隔字符串，顺序按名字
	if detail.Tags != "alpha, beta" && detail.Tags != "beta, alpha" {
		t.Errorf("tags = %q, want alpha and beta joined", detail.Tags)
	}

	if _, bizErr := service.AdminDetail(99999); bizErr == nil {
		t.Error("missing id must report not found")
	}
}
