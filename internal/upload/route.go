package upload

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, store *Store) {
	h := NewHandler(store)

	r.GET("/uploads/:name", h.ServeFile)
}
