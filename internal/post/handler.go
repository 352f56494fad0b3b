package post

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/pkg/response"
)

type PostHandler struct {
	service *PostService
}

func NewPostHandler(service *PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ===== 公开接口 =====

// Home 首页
// @Summary 首页：推荐文章、分页列表与在用标签
// @Tags Public
// @Produce json
// @Param page query int false "页码，默认 1"
// @Success 200 {object} response.Response{data=dto.HomeResponse}
// @Router / [get]
func (h *PostHandler) Home(c *gin.Context) {
	result, bizErr := h.service.Home(pageParam(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// View 文章详情
// @Summary 按 slug 查看已发布文章
// @Tags Public
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} response.Response{data=dto.PostDetail}
// @Router /post/{slug} [get]
func (h *PostHandler) View(c *gin.Context) {
	result, bizErr := h.service.ViewPost(c.Param("slug"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// ByTag 标签文章列表
// @Summary 按标签浏览已发布文章
// @Tags Public
// @Produce json
// @Param slug path string true "标签 slug"
// @Param page query int false "页码，默认 1"
// @Success 200 {object} response.Response{data=dto.TagPostsResponse}
// @Router /tag/{slug} [get]
func (h *PostHandler) ByTag(c *gin.Context) {
	result, bizErr := h.service.TagPosts(c.Param("slug"), pageParam(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// Search 搜索
// @Summary 按关键词搜索已发布文章（标题与正文）
// @Tags Public
// @Produce json
// @Param q query string false "关键词"
// @Param page query int false "页码，默认 1"
// @Success 200 {object} response.Response{data=dto.PostListResponse}
// @Router /search [get]
func (h *PostHandler) Search(c *gin.Context) {
	result, bizErr := h.service.SearchPosts(c.Query("q"), pageParam(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// ===== 后台接口 =====

// Dashboard 仪表盘
// @Summary 后台统计概览
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response{data=dto.DashboardResponse}
// @Router /admin/dashboard [get]
func (h *PostHandler) Dashboard(c *gin.Context) {
	result, bizErr := h.service.Dashboard()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// List 后台文章列表
// @Summary 后台文章列表，可按发布状态过滤
// @Tags Admin
// @Produce json
// @Param status query string false "all/published/draft，默认 all"
// @Param page query int false "页码，默认 1"
// @Success 200 {object} response.Response{data=dto.PostListResponse}
// @Router /admin/posts [get]
func (h *PostHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	result, bizErr := h.service.AdminList(status, pageParam(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// Create 创建文章
// @Summary 创建文章（multipart 表单，封面图放 cover_image 文件域）
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Success 200 {object} response.Response{data=dto.AdminPostDetail}
// @Router /admin/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	// 封面图可以不传
	cover, _ := c.FormFile("cover_image")

	authorID, _ := c.Get("user_id")

	p, bizErr := h.service.CreatePost(form, cover, authorID.(uint))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	detail, bizErr := h.service.AdminDetail(p.ID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, detail)
}

// Detail 后台编辑回显
// @Summary 按 ID 取文章（含草稿）
// @Tags Admin
// @Produce json
// @Param id path int true "文章 ID"
// @Success 200 {object} response.Response{data=dto.AdminPostDetail}
// @Router /admin/posts/{id} [get]
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	result, bizErr := h.service.AdminDetail(id)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// Update 编辑文章
// @Summary 编辑文章（slug 不变）
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param id path int true "文章 ID"
// @Success 200 {object} response.Response{data=dto.AdminPostDetail}
// @Router /admin/posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	cover, _ := c.FormFile("cover_image")

	p, bizErr := h.service.EditPost(id, form, cover)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	detail, bizErr := h.service.AdminDetail(p.ID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, detail)
}

// Delete 删除文章
// @Summary 删除文章及其封面图
// @Tags Admin
// @Produce json
// @Param id path int true "文章 ID"
// @Success 200 {object} response.Response
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if bizErr := h.service.DeletePost(id); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, nil)
}

// TogglePublish 切换发布状态
// @Summary 发布或取消发布文章
// @Tags Admin
// @Produce json
// @Param id path int true "文章 ID"
// @Success 200 {object} response.Response{data=dto.AdminPostDetail}
// @Router /admin/posts/{id}/toggle-publish [post]
func (h *PostHandler) TogglePublish(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	p, bizErr := h.service.TogglePublish(id)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	detail, bizErr := h.service.AdminDetail(p.ID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, detail)
}

// pageParam 解析页码参数，非法值回落到第一页
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam 解析路径中的文章 ID，非法时直接写回 400
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("文章 ID 不合法"),
		))
		return 0, false
	}
	return uint(id), true
}
