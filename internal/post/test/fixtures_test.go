package post_test

import (
	"testing"

	"gorm.io/gorm"

	postPkg "terminal-terrace/blog/internal/post"
	"terminal-terrace/blog/internal/testutils"
	"terminal-terrace/blog/internal/upload"
)

const testPageSize = 10

// setupPostService 创建 PostService 实例用于测试
func setupPostService(t *testing.T) (*postPkg.PostService, *gorm.DB) {
	t.Helper()
	db := testutils.SetupTestDB(t)

	store, err := upload.NewStore(t.TempDir(), []string{"png", "jpg", "jpeg", "gif", "webp"})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	return postPkg.NewPostService(db, store, testPageSize), db
}

// countRows 数表行数的小工具
func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
