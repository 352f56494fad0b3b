package post_test

import (
	"testing"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/model/post"
	"terminal-terrace/blog/internal/testutils"
)

func TestCreatePost_Integration(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	tests := []struct {
		name            string
		form            dto.PostForm
		wantSlug        string
		wantPublishedAt bool
		wantTags        []string
	}{
		{
			name: "draft without tags",
			form: dto.PostForm{
				Title:   "My First Post",
				Content: "Hello world content.",
			},
			wantSlug:        "my-first-post",
			wantPublishedAt: false,
			wantTags:        nil,
		},
		{
			name: "published with tags stamped at creation",
			form: dto.PostForm{
				Title:       "Shipping A Release",
				Content:     "Release notes.",
				Tags:        "go, backend",
				IsPublished: true,
			},
			wantSlug:        "shipping-a-release",
			wantPublishedAt: true,
			wantTags:        []string{"go", "backend"},
		},
		{
			name: "duplicate tag names collapse after normalization",
			form: dto.PostForm{
				Title:   "Tag Dedup",
				Content: "Body.",
				Tags:    "Go, go ,  GO",
			},
			wantSlug: "tag-dedup",
			wantTags: []string{"go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, bizErr := service.CreatePost(tt.form, nil, author.ID)
			if bizErr != nil {
				t.Fatalf("CreatePost: %v", bizErr.Msg)
			}

			if created.Slug != tt.wantSlug {
				t.Errorf("slug = %q, want %q", created.Slug, tt.wantSlug)
			}
			if (created.PublishedAt != nil) != tt.wantPublishedAt {
				t.Errorf("published_at set = %v, want %v", created.PublishedAt != nil, tt.wantPublishedAt)
			}
			if created.AuthorID != author.ID {
				t.Errorf("author = %d, want %d", created.AuthorID, author.ID)
			}

			got := countRows(t, db, &post.PostTag{}, "post_id = ?", created.ID)
			if got != int64(len(tt.wantTags)) {
				t.Errorf("post has %d tag links, want %d", got, len(tt.wantTags))
			}
		})
	}
}

func TestCreateEditPost_BlankTitleRejected(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	// 纯空白标题能通过 required 校验，服务层必须拦下
	if _, bizErr := service.CreatePost(dto.PostForm{Title: "   \t ", Content: "body"}, nil, author.ID); bizErr == nil {
		t.Fatal("blank title must be rejected on create")
	}
	if got := countRows(t, db, &post.Post{}, ""); got != 0 {
		t.Errorf("no post should be created, found %d", got)
	}

	created, bizErr := service.CreatePost(dto.PostForm{Title: "Valid Title", Content: "body"}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("CreatePost: %v", bizErr.Msg)
	}

	if _, bizErr := service.EditPost(created.ID, dto.PostForm{Title: "  ", Content: "body"}, nil); bizErr == nil {
		t.Fatal("blank title must be rejected on edit")
	}

	detail, bizErr := service.AdminDetail(created.ID)
	if bizErr != nil {
		t.Fatalf("AdminDetail: %v", bizErr.Msg)
	}
	if detail.Title != "Valid Title" {
		t.Errorf("title = %q, rejected edit must not change it", detail.Title)
	}
}

func TestCreatePost_SlugCollision(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	first, bizErr := service.CreatePost(dto.PostForm{Title: "Same Title", Content: "a"}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("first CreatePost: %v", bizErr.Msg)
	}
	second, bizErr := service.CreatePost(dto.PostForm{Title: "Same Title", Content: "b"}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("second CreatePost: %v", bizErr.Msg)
	}

	if first.Slug != "same-title" {
		t.Errorf("first slug = %q, want same-title", first.Slug)
	}
	if second.Slug != "same-title-1" {
		t.Errorf("second slug = %q, want same-title-1", second.Slug)
	}
}

func TestEditPost_SlugStaysStable(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.CreatePost(dto.PostForm{Title: "Original Title", Content: "body"}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("CreatePost: %v", bizErr.Msg)
	}

	edited, bizErr := service.EditPost(created.ID, dto.PostForm{
		Title:   "Completely New Title",
		Content: "updated body",
	}, nil)
	if bizErr != nil {
		t.Fatalf("EditPost: %v", bizErr.Msg)
	}

	if edited.Slug != created.Slug {
		t.Errorf("slug changed on edit: %q -> %q", created.Slug, edited.Slug)
	}
	if edited.Title != "Completely New Title" {
		t.Errorf("title = %q, want updated title", edited.Title)
	}
}

func TestEditPost_PublishEdgeStampsOnce(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.CreatePost(dto.PostForm{Title: "Draft Post", Content: "body"}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("CreatePost: %v", bizErr.Msg)
	}
	if created.PublishedAt != nil {
		t.Fatal("draft should not carry published_at")
	}

	// 首次发布：盖上时间戳
	published, bizErr := service.EditPost(created.ID, dto.PostForm{
		Title: "Draft Post", Content: "body", IsPublished: true,
	}, nil)
	if bizErr != nil {
		t.Fatalf("EditPost publish: %v", bizErr.Msg)
	}
	if published.PublishedAt == nil {
		t.Fatal("published_at should be set on first publish")
	}
	firstStamp := *published.PublishedAt

	// 已发布状态下再次保存：时间戳不动
	saved, bizErr := service.EditPost(created.ID, dto.PostForm{
		Title: "Draft Post", Content: "body v2", IsPublished: true,
	}, nil)
	if bizErr != nil {
		t.Fatalf("EditPost save: %v", bizErr.Msg)
	}
	if saved.PublishedAt == nil || !saved.PublishedAt.Equal(firstStamp) {
		t.Error("published_at must not change when saving an already published post")
	}

	// 取消发布再发布：原始时间戳保留
	unpublished, bizErr := service.EditPost(created.ID, dto.PostForm{
		Title: "Draft Post", Content: "body v2",
	}, nil)
	if bizErr != nil {
		t.Fatalf("EditPost unpublish: %v", bizErr.Msg)
	}
	if unpublished.IsPublished {
		t.Error("post should be unpublished")
	}
	if unpublished.PublishedAt == nil || !unpublished.PublishedAt.Equal(firstStamp) {
		t.Error("published_at must survive unpublish")
	}

	republished, bizErr := service.EditPost(created.ID, dto.PostForm{
		Title: "Draft Post", Content: "body v2", IsPublished: true,
	}, nil)
	if bizErr != nil {
		t.Fatalf("EditPost republish: %v", bizErr.Msg)
	}
	if republished.PublishedAt == nil || !republished.PublishedAt.Equal(firstStamp) {
		t.Error("republish must keep the original published_at")
	}
}

func TestEditPost_TagsFullyReplaced(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.CreatePost(dto.PostForm{
		Title: "Tagged Post", Content: "body", Tags: "go, redis",
	}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("CreatePost: %v", bizErr.Msg)
	}

	if _, bizErr := service.EditPost(created.ID, dto.PostForm{
		Title: "Tagged Post", Content: "body", Tags: "postgres",
	}, nil); bizErr != nil {
		t.Fatalf("EditPost: %v", bizErr.Msg)
	}

	detail, bizErr := service.AdminDetail(created.ID)
	if bizErr != nil {
		t.Fatalf("AdminDetail: %v", bizErr.Msg)
	}
	if detail.Tags != "postgres" {
		t.Errorf("tags after replace = %q, want %q", detail.Tags, "postgres")
	}

	// 被移除的标签行本身保留，只有关联被清掉
	if got := countRows(t, db, &post.Tag{}, "name IN ?", []string{"go", "redis"}); got != 2 {
		t.Errorf("detached tags should survive, found %d of 2", got)
	}
}

func TestEditPost_NotFound(t *testing.T) {
	service, _ := setupPostService(t)

	if _, bizErr := service.EditPost(99999, dto.PostForm{Title: "x", Content: "y"}, nil); bizErr == nil {
		t.Fatal("editing a missing post should fail")
	}
}

func TestDeletePost_Integration(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.CreatePost(dto.PostForm{
		Title: "Doomed Post", Content: "body", Tags: "keeper",
	}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("CreatePost: %v", bizErr.Msg)
	}

	if bizErr := service.DeletePost(created.ID); bizErr != nil {
		t.Fatalf("DeletePost: %v", bizErr.Msg)
	}

	if got := countRows(t, db, &post.Post{}, "id = ?", created.ID); got != 0 {
		t.Error("post row should be gone")
	}
	if got := countRows(t, db, &post.PostTag{}, "post_id = ?", created.ID); got != 0 {
		t.Error("post_tags links should be gone")
	}
	if got := countRows(t, db, &post.Tag{}, "name = ?", "keeper"); got != 1 {
		t.Error("tag row must survive post deletion")
	}

	if bizErr := service.DeletePost(created.ID); bizErr == nil {
		t.Error("deleting twice should report not found")
	}
}

func TestTogglePublish_Integration(t *testing.T) {
	service, db := setupPostService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.CreatePost(dto.PostForm{Title: "Toggle Me", Content: "body"}, nil, author.ID)
	if bizErr != nil {
		t.Fatalf("CreatePost: %v", bizErr.Msg)
	}

	published, bizErr := service.TogglePublish(created.ID)
	if bizErr != nil {
		t.Fatalf("TogglePublish: %v", bizErr.Msg)
	}
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatal("toggle into published should set flag and timestamp")
	}
	stamp := *published.PublishedAt

	unpublished, bizErr := service.TogglePublish(created.ID)
	if bizErr != nil {
		t.Fatalf("TogglePublish back: %v", bizErr.Msg)
	}
	if unpublished.IsPublished {
		t.Error("second toggle should unpublish")
	}
	if unpublished.PublishedAt == nil || !unpublished.PublishedAt.Equal(stamp) {
		t.Error("unpublish must keep published_at")
	}

	again, bizErr := service.TogglePublish(created.ID)
	if bizErr != nil {
		t.Fatalf("TogglePublish again: %v", bizErr.Msg)
	}
	if again.PublishedAt == nil || !again.PublishedAt.Equal(stamp) {
		t.Error("re-publish must keep the original published_at")
	}
}
