package post

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/markdown"
	"terminal-terrace/blog/internal/model/post"
	"terminal-terrace/blog/internal/upload"
	"terminal-terrace/blog/pkg/response"
)

const (
	adminPageSize   = 20
	recentPostCount = 5
	relatedPostMax  = 3
)

// PostService 文章工作流：创建/编辑/发布/删除及公开浏览
type PostService struct {
	db       *gorm.DB
	postRepo *PostRepository
	tagRepo  *TagRepository
	store    *upload.Store
	pageSize int
}

func NewPostService(db *gorm.DB, store *upload.Store, pageSize int) *PostService {
	return &PostService{
		db:       db,
		postRepo: NewPostRepository(db),
		tagRepo:  NewTagRepository(db),
		store:    store,
		pageSize: pageSize,
	}
}

// ===== 后台写路径 =====

// CreatePost 创建文章
// slug 在此一次性分配；文章与标签关联在同一事务内提交
func (s *PostService) CreatePost(form dto.PostForm, cover *multipart.FileHeader, authorID uint) (*post.Post, *response.BusinessError) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return nil, emptyTitleError()
	}

	// 1. 保存封面图（扩展名不合法时 storedName 为空，按无图处理）
	storedName, err := s.store.Save(cover)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存封面图失败"),
		)
	}

	now := time.Now()
	p := &post.Post{
		Title:       title,
		Excerpt:     strings.TrimSpace(form.Excerpt),
		Content:     form.Content,
		CoverImage:  storedName,
		IsPublished: form.IsPublished,
		IsFeatured:  form.IsFeatured,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 2. 创建时即发布则立刻盖上发布时间
	if form.IsPublished {
		p.PublishedAt = &now
	}

	tagNames := parseTagNames(form.Tags)

	// 3. 分配 slug 并插入
	// check-then-insert 在并发下可能撞上唯一约束，此时用递增候选重试，
	// 每轮重试是独立事务（postgres 中唯一冲突会中止当前事务）
	for {
		slug, err := AssignUniqueSlug(p.Title, s.postRepo.SlugExists)
		if err != nil {
			return nil, storageError(err)
		}
		p.Slug = slug

		txErr := s.db.Transaction(func(tx *gorm.DB) error {
			if err := NewPostRepository(tx).Create(p); err != nil {
				return err
			}
			return applyTags(NewTagRepository(tx), p.ID, tagNames)
		})
		if txErr == nil {
			break
		}
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			p.ID = 0
			continue
		}
		return nil, storageError(txErr)
	}

	return p, nil
}

// EditPost 编辑文章
// slug 不重算；发布状态 false→true 的边沿才盖发布时间；标签全量替换
func (s *PostService) EditPost(id uint, form dto.PostForm, cover *multipart.FileHeader) (*post.Post, *response.BusinessError) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return nil, emptyTitleError()
	}

	p, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, notFoundError("文章不存在")
	}

	// 新封面先存成功，旧文件才允许删除
	oldCover := p.CoverImage
	newCover, err := s.store.Save(cover)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存封面图失败"),
		)
	}
	if newCover != "" {
		p.CoverImage = newCover
	}

	p.Title = title
	p.Excerpt = strings.TrimSpace(form.Excerpt)
	p.Content = form.Content
	p.IsFeatured = form.IsFeatured
	p.UpdatedAt = time.Now()

	// 发布边沿检测；重复保存已发布文章不会动 published_at
	wasPublished := p.IsPublished
	p.IsPublished = form.IsPublished
	if !wasPublished && form.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	tagNames := parseTagNames(form.Tags)

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := NewPostRepository(tx).Update(p); err != nil {
			return err
		}
		return applyTags(NewTagRepository(tx), p.ID, tagNames)
	})
	if txErr != nil {
		return nil, storageError(txErr)
	}

	// 替换成功后清理旧封面
	if newCover != "" && oldCover != "" && oldCover != newCover {
		if err := s.store.Remove(oldCover); err != nil {
			log.Printf("[blog] 删除旧封面图失败: %v", err)
		}
	}

	return p, nil
}

// DeletePost 删除文章
// 封面图删除是尽力而为；关联行随事务删除，标签行永远保留
func (s *PostService) DeletePost(id uint) *response.BusinessError {
	p, err := s.postRepo.GetByID(id)
	if err != nil {
		return notFoundError("文章不存在")
	}

	if err := s.store.Remove(p.CoverImage); err != nil {
		log.Printf("[blog] 删除封面图失败: %v", err)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := NewTagRepository(tx).RemovePostTags(p.ID); err != nil {
			return err
		}
		return tx.Delete(&post.Post{}, p.ID).Error
	})
	if txErr != nil {
		return storageError(txErr)
	}

	return nil
}

// TogglePublish 切换发布状态
// 首次进入已发布且发布时间未设置时盖上当前时间，取消发布不会清空
func (s *PostService) TogglePublish(id uint) (*post.Post, *response.BusinessError) {
	p, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, notFoundError("文章不存在")
	}

	p.IsPublished = !p.IsPublished
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	p.UpdatedAt = time.Now()

	if err := s.postRepo.Update(p); err != nil {
		return nil, storageError(err)
	}

	return p, nil
}

// ===== 公开读路径 =====

// ViewPost 公开文章详情
// 阅读量自增失败只记日志，不影响本次阅读
func (s *PostService) ViewPost(slug string) (*dto.PostDetail, *response.BusinessError) {
	p, err := s.postRepo.GetPublishedBySlug(slug)
	if err != nil {
		return nil, notFoundError("文章不存在")
	}

	if err := s.postRepo.IncrementViews(p.ID); err != nil {
		log.Printf("[blog] 阅读量自增失败 post=%d: %v", p.ID, err)
	} else {
		p.Views++
	}

	tags, err := s.tagRepo.GetPostTags(p.ID)
	if err != nil {
		return nil, storageError(err)
	}

	contentHTML, err := markdown.Render(p.Content)
	if err != nil {
		log.Printf("[blog] 正文渲染失败 post=%d: %v", p.ID, err)
	}

	// 相关文章：共享任一标签的已发布文章，最多 3 篇
	tagIDs := make([]uint, 0, len(tags))
	for _, t := range tags {
		tagIDs = append(tagIDs, t.ID)
	}
	related, err := s.postRepo.GetRelated(p.ID, tagIDs, relatedPostMax)
	if err != nil {
		return nil, storageError(err)
	}

	detail := &dto.PostDetail{
		PostSummary: s.buildSummary(p, tags),
		Content:     p.Content,
		ContentHTML: contentHTML,
		Related:     s.buildSummaries(related),
	}
	return detail, nil
}

// Home 首页：推荐位 + 分页列表（排除推荐位）+ 在用标签
func (s *PostService) Home(page int) (*dto.HomeResponse, *response.BusinessError) {
	featured, err := s.postRepo.GetFeatured()
	if err != nil {
		return nil, storageError(err)
	}

	var excludeID uint
	var featuredSummary *dto.PostSummary
	if featured != nil {
		excludeID = featured.ID
		summary := s.summaryWithTags(featured)
		featuredSummary = &summary
	}

	offset := (page - 1) * s.pageSize
	posts, total, err := s.postRepo.ListPublished(excludeID, offset, s.pageSize)
	if err != nil {
		return nil, storageError(err)
	}

	tags, err := s.tagRepo.ListInUse()
	if err != nil {
		return nil, storageError(err)
	}
	tagInfos := make([]dto.TagInfo, 0, len(tags))
	for _, t := range tags {
		tagInfos = append(tagInfos, dto.TagInfo{Name: t.Name, Slug: t.Slug})
	}

	return &dto.HomeResponse{
		Featured:         featuredSummary,
		PostListResponse: s.buildList(posts, total, page, s.pageSize),
		Tags:             tagInfos,
	}, nil
}

// TagPosts 标签页：标签不存在返回 404
func (s *PostService) TagPosts(slug string, page int) (*dto.TagPostsResponse, *response.BusinessError) {
	tag, err := s.tagRepo.GetBySlug(slug)
	if err != nil {
		return nil, notFoundError("标签不存在")
	}

	offset := (page - 1) * s.pageSize
	posts, total, err := s.postRepo.ListByTag(tag.ID, offset, s.pageSize)
	if err != nil {
		return nil, storageError(err)
	}

	return &dto.TagPostsResponse{
		Tag:              dto.TagInfo{Name: tag.Name, Slug: tag.Slug},
		PostListResponse: s.buildList(posts, total, page, s.pageSize),
	}, nil
}

// SearchPosts 搜索：空查询返回空结果，不是错误
func (s *PostService) SearchPosts(keyword string, page int) (*dto.PostListResponse, *response.BusinessError) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		empty := s.buildList(nil, 0, page, s.pageSize)
		return &empty, nil
	}

	offset := (page - 1) * s.pageSize
	posts, total, err := s.postRepo.Search(keyword, offset, s.pageSize)
	if err != nil {
		return nil, storageError(err)
	}

	list := s.buildList(posts, total, page, s.pageSize)
	return &list, nil
}

// ===== 后台读路径 =====

// Dashboard 仪表盘统计
func (s *PostService) Dashboard() (*dto.DashboardResponse, *response.BusinessError) {
	totalPosts, err := s.postRepo.CountAll()
	if err != nil {
		return nil, storageError(err)
	}
	published, err := s.postRepo.CountByPublished(true)
	if err != nil {
		return nil, storageError(err)
	}
	drafts, err := s.postRepo.CountByPublished(false)
	if err != nil {
		return nil, storageError(err)
	}
	totalViews, err := s.postRepo.TotalViews()
	if err != nil {
		return nil, storageError(err)
	}
	recent, err := s.postRepo.Recent(recentPostCount)
	if err != nil {
		return nil, storageError(err)
	}

	return &dto.DashboardResponse{
		TotalPosts:     totalPosts,
		PublishedPosts: published,
		DraftPosts:     drafts,
		TotalViews:     totalViews,
		RecentPosts:    s.buildSummaries(recent),
	}, nil
}

// AdminList 后台文章列表
func (s *PostService) AdminList(status string, page int) (*dto.PostListResponse, *response.BusinessError) {
	offset := (page - 1) * adminPageSize
	posts, total, err := s.postRepo.ListAdmin(status, offset, adminPageSize)
	if err != nil {
		return nil, storageError(err)
	}

	list := s.buildList(posts, total, page, adminPageSize)
	return &list, nil
}

// AdminDetail 后台编辑回显
func (s *PostService) AdminDetail(id uint) (*dto.AdminPostDetail, *response.BusinessError) {
	p, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, notFoundError("文章不存在")
	}

	tags, err := s.tagRepo.GetPostTags(p.ID)
	if err != nil {
		return nil, storageError(err)
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	return &dto.AdminPostDetail{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		CoverImage:  p.CoverImage,
		IsPublished: p.IsPublished,
		IsFeatured:  p.IsFeatured,
		Views:       p.Views,
		Tags:        strings.Join(names, ", "),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		PublishedAt: p.PublishedAt,
	}, nil
}

// ===== 内部辅助 =====

// parseTagNames 解析逗号分隔的标签输入，丢弃空白项
func parseTagNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// applyTags 全量替换文章的标签集合（清空后重建，不做差量合并）
// 输入按归一化后的名字去重，"Go" 和 "go " 只会关联一次
func applyTags(tagRepo *TagRepository, postID uint, names []string) error {
	if err := tagRepo.RemovePostTags(postID); err != nil {
		return err
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		normalized := NormalizeTagName(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		tag, err := tagRepo.FindOrCreateTag(name)
		if err != nil {
			return err
		}
		if err := tagRepo.AddPostTag(postID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostService) buildSummary(p *post.Post, tags []post.Tag) dto.PostSummary {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	return dto.PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		IsPublished: p.IsPublished,
		IsFeatured:  p.IsFeatured,
		Views:       p.Views,
		ReadingTime: markdown.ReadingTime(p.Content),
		Tags:        names,
		CreatedAt:   p.CreatedAt,
		PublishedAt: p.PublishedAt,
	}
}

func (s *PostService) summaryWithTags(p *post.Post) dto.PostSummary {
	tags, err := s.tagRepo.GetPostTags(p.ID)
	if err != nil {
		log.Printf("[blog] 读取文章标签失败 post=%d: %v", p.ID, err)
	}
	return s.buildSummary(p, tags)
}

func (s *PostService) buildSummaries(posts []post.Post) []dto.PostSummary {
	summaries := make([]dto.PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, s.summaryWithTags(&posts[i]))
	}
	return summaries
}

func (s *PostService) buildList(posts []post.Post, total int64, page, pageSize int) dto.PostListResponse {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return dto.PostListResponse{
		Posts:      s.buildSummaries(posts),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func emptyTitleError() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("标题不能为空"),
	)
}

func notFoundError(msg string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage(msg),
	)
}

func storageError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("存储操作失败"),
		response.WithError(err),
	)
}
