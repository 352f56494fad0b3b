package post

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/blog/internal/model/post"
)

// PostRepository 文章仓储层
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// ===== Post 基础操作 =====

func (r *PostRepository) GetByID(id uint) (*post.Post, error) {
	var p post.Post
	err := r.db.First(&p, id).Error
	return &p, err
}

// GetPublishedBySlug 按 slug 获取已发布文章（草稿对外等同于不存在）
func (r *PostRepository) GetPublishedBySlug(slug string) (*post.Post, error) {
	var p post.Post
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&p).Error
	return &p, err
}

func (r *PostRepository) Create(p *post.Post) error {
	return r.db.Create(p).Error
}

func (r *PostRepository) Update(p *post.Post) error {
	return r.db.Save(p).Error
}

// SlugExists slug 占用检查，作为 AssignUniqueSlug 的 exists 谓词
func (r *PostRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&post.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// IncrementViews 阅读量原子自增（存储层保证原子性，应用层不加锁）
func (r *PostRepository) IncrementViews(postID uint) error {
	return r.db.Model(&post.Post{}).
		Where("id = ?", postID).
		Update("views", gorm.Expr("views + 1")).Error
}

// GetFeatured 首页推荐位：最新发布的推荐文章，没有则返回 nil
func (r *PostRepository) GetFeatured() (*post.Post, error) {
	var p post.Post
	err := r.db.Where("is_published = ? AND is_featured = ?", true, true).
		Order("published_at DESC").
		First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublished 已发布文章分页列表，excludeID 用于排除推荐位文章
func (r *PostRepository) ListPublished(excludeID uint, offset, limit int) ([]post.Post, int64, error) {
	var posts []post.Post
	var total int64

	query := r.db.Model(&post.Post{}).Where("is_published = ?", true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	err := query.Offset(offset).Limit(limit).Order("published_at DESC").Find(&posts).Error
	return posts, total, err
}

// ListByTag 标签下的已发布文章分页列表
func (r *PostRepository) ListByTag(tagID uint, offset, limit int) ([]post.Post, int64, error) {
	var posts []post.Post
	var total int64

	query := r.db.Model(&post.Post{}).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ? AND posts.is_published = ?", tagID, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("posts.published_at DESC").Find(&posts).Error
	return posts, total, err
}

// Search 标题和正文的大小写不敏感子串搜索，只搜已发布文章
func (r *PostRepository) Search(keyword string, offset, limit int) ([]post.Post, int64, error) {
	var posts []post.Post
	var total int64

	pattern := "%" + keyword + "%"
	query := r.db.Model(&post.Post{}).
		Where("is_published = ?", true).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("published_at DESC").Find(&posts).Error
	return posts, total, err
}

// ListAdmin 后台文章列表，status: all / published / draft
func (r *PostRepository) ListAdmin(status string, offset, limit int) ([]post.Post, int64, error) {
	var posts []post.Post
	var total int64

	query := r.db.Model(&post.Post{})
	switch status {
	case "published":
		query = query.Where("is_published = ?", true)
	case "draft":
		query = query.Where("is_published = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&posts).Error
	return posts, total, err
}

// Recent 最近创建的文章（后台仪表盘）
func (r *PostRepository) Recent(limit int) ([]post.Post, error) {
	var posts []post.Post
	err := r.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// GetRelated 相关文章：与指定文章共享任一标签的已发布文章
func (r *PostRepository) GetRelated(postID uint, tagIDs []uint, limit int) ([]post.Post, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	var posts []post.Post
	err := r.db.Model(&post.Post{}).
		Distinct("posts.*").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id IN ?", tagIDs).
		Where("posts.is_published = ? AND posts.id <> ?", true, postID).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ===== 统计 =====

func (r *PostRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&post.Post{}).Count(&count).Error
	return count, err
}

func (r *PostRepository) CountByPublished(published bool) (int64, error) {
	var count int64
	err := r.db.Model(&post.Post{}).Where("is_published = ?", published).Count(&count).Error
	return count, err
}

func (r *PostRepository) TotalViews() (int64, error) {
	var total int64
	err := r.db.Model(&post.Post{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// NormalizeTagName 标签名统一为小写去空格形式（大小写不敏感的同一性）
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FindOrCreateTag 查找或创建标签
// "Python" 和 " python " 归一到同一个标签；slug 同样走唯一性分配
func (r *TagRepository) FindOrCreateTag(name string) (*post.Tag, error) {
	normalized := NormalizeTagName(name)

	var tag post.Tag
	err := r.db.Where("name = ?", normalized).First(&tag).Error
	if err == nil {
		return &tag, nil
	}

	if err == gorm.ErrRecordNotFound {
		slug, slugErr := AssignUniqueSlug(name, r.SlugExists)
		if slugErr != nil {
			return nil, slugErr
		}

		tag = post.Tag{
			Name:      normalized,
			Slug:      slug,
			CreatedAt: time.Now(),
		}
		if err := r.db.Create(&tag).Error; err != nil {
			return nil, err
		}
		return &tag, nil
	}

	return nil, err
}

// GetBySlug 按 slug 获取标签
func (r *TagRepository) GetBySlug(slug string) (*post.Tag, error) {
	var tag post.Tag
	err := r.db.Where("slug = ?", slug).First(&tag).Error
	return &tag, err
}

// SlugExists 标签 slug 占用检查
func (r *TagRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&post.Tag{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// AddPostTag 添加文章标签关联
func (r *TagRepository) AddPostTag(postID uint, tagID uint) error {
	postTag := &post.PostTag{
		PostID:    postID,
		TagID:     tagID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(postTag).Error
}

// RemovePostTags 移除文章的所有标签关联（标签本身永不删除）
func (r *TagRepository) RemovePostTags(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&post.PostTag{}).Error
}

// GetPostTags 获取文章的所有标签
func (r *TagRepository) GetPostTags(postID uint) ([]post.Tag, error) {
	var tags []post.Tag
	err := r.db.
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Find(&tags).Error
	return tags, err
}

// ListInUse 被已发布文章引用的标签（首页标签云）
func (r *TagRepository) ListInUse() ([]post.Tag, error) {
	var tags []post.Tag
	err := r.db.
		Distinct("tags.*").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("JOIN posts ON posts.id = post_tags.post_id").
		Where("posts.is_published = ?", true).
		Find(&tags).Error
	return tags, err
}
