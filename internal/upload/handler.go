package upload

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/pkg/response"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// ServeFile 返回存储的封面图
// GET /uploads/:name
func (h *Handler) ServeFile(c *gin.Context) {
	// 文件名是服务端生成的，这里仍取 Base 防止路径穿越
	name := filepath.Base(c.Param("name"))
	path := h.store.Path(name)

	if _, err := os.Stat(path); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("文件不存在"),
		))
		return
	}

	// 文件名随机且内容不变，可以长期缓存
	c.Header("Cache-Control", "public, max-age=31536000")
	c.File(path)
}
