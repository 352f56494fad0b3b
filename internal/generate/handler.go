package generate

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/dto"
)

type GenerateHandler struct {
	service *GenerateService
}

func NewGenerateHandler(service *GenerateService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Draft 生成文章草稿
// @Summary 按主题用 AI 生成文章草稿（标题/正文/摘要/标签）
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "生成请求"
// @Success 200 {object} response.Response{data=dto.GenerateResponse}
// @Router /admin/generate [post]
func (h *GenerateHandler) Draft(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.Draft(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}
