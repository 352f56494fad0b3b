package settings

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/dto"
)

type SettingHandler struct {
	service *SettingService
}

func NewSettingHandler(service *SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

// About 关于页
// @Summary 关于页内容与社交链接
// @Tags Public
// @Produce json
// @Success 200 {object} response.Response{data=dto.AboutResponse}
// @Router /about [get]
func (h *SettingHandler) About(c *gin.Context) {
	result, bizErr := h.service.About()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// AdminAbout 后台关于页回显
// @Summary 后台读取关于页设置
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response{data=dto.AboutResponse}
// @Router /admin/about [get]
func (h *SettingHandler) AdminAbout(c *gin.Context) {
	result, bizErr := h.service.About()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// UpdateAbout 更新关于页
// @Summary 更新关于页内容与社交链接
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateAboutRequest true "关于页设置"
// @Success 200 {object} response.Response
// @Router /admin/about [put]
func (h *SettingHandler) UpdateAbout(c *gin.Context) {
	var req dto.UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if bizErr := h.service.UpdateAbout(req); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, nil)
}
