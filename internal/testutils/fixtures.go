package testutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/auth"
	"terminal-terrace/blog/internal/model/post"
	"terminal-terrace/blog/internal/model/user"
)

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	hash, err := auth.HashPassword("test-password")
	if err != nil {
		panic(fmt.Sprintf("Failed to hash test password: %v", err))
	}

	testUser := &user.User{
		Username:     fmt.Sprintf("test_user_%s", uniqueID),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithPassword replaces the stored hash with one for the given password
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		hash, err := auth.HashPassword(password)
		if err != nil {
			panic(fmt.Sprintf("Failed to hash test password: %v", err))
		}
		u.PasswordHash = hash
	}
}

// WithAdmin sets the admin flag
func WithAdmin(isAdmin bool) UserOption {
	return func(u *user.User) {
		u.IsAdmin = isAdmin
	}
}

// CreateTestPost creates a test post with a unique slug
func CreateTestPost(db *gorm.DB, authorID uint, opts ...PostOption) *post.Post {
	uniqueID := uuid.New().String()
	now := time.Now()

	testPost := &post.Post{
		Title:     fmt.Sprintf("Test Post %s", uniqueID),
		Slug:      fmt.Sprintf("test-post-%s", uniqueID),
		Excerpt:   "Test excerpt",
		Content:   "Test content for a blog post.",
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, opt := range opts {
		opt(testPost)
	}

	if err := db.Create(testPost).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test post: %v", err))
	}

	return testPost
}

// PostOption configures test post
type PostOption func(*post.Post)

// WithTitle sets the title
func WithTitle(title string) PostOption {
	return func(p *post.Post) {
		p.Title = title
	}
}

// WithSlug sets the slug
func WithSlug(slug string) PostOption {
	return func(p *post.Post) {
		p.Slug = slug
	}
}

// WithContent sets the content
func WithContent(content string) PostOption {
	return func(p *post.Post) {
		p.Content = content
	}
}

// Published marks the post as published with published_at set
func Published() PostOption {
	return func(p *post.Post) {
		now := time.Now()
		p.IsPublished = true
		p.PublishedAt = &now
	}
}

// Featured marks the post as featured
func Featured() PostOption {
	return func(p *post.Post) {
		p.IsFeatured = true
	}
}

// WithViews sets the view counter
func WithViews(views uint) PostOption {
	return func(p *post.Post) {
		p.Views = views
	}
}

// CreateTestTag creates a test tag and links it to the given posts
func CreateTestTag(db *gorm.DB, name string, postIDs ...uint) *post.Tag {
	testTag := &post.Tag{
		Name:      strings.ToLower(strings.TrimSpace(name)),
		Slug:      strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-")),
		CreatedAt: time.Now(),
	}

	if err := db.Create(testTag).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test tag: %v", err))
	}

	for _, postID := range postIDs {
		link := &post.PostTag{PostID: postID, TagID: testTag.ID, CreatedAt: time.Now()}
		if err := db.Create(link).Error; err != nil {
			panic(fmt.Sprintf("Failed to link test tag: %v", err))
		}
	}

	return testTag
}
