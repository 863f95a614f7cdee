package schedule

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	schedules := r.Group("/schedules")
	{
		schedules.GET("", handler.GetAll)
		schedules.POST("", handler.Create)
		schedules.GET("/lookup", handler.Lookup)
		schedules.GET("/board", handler.Board)
		schedules.PUT("/:id", handler.Update)
		schedules.DELETE("/:id", handler.Delete)
	}
}
