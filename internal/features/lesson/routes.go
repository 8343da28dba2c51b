package lesson

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches lesson endpoints to the router. Reads are
// public; writes take the staff chain.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, staff []gin.HandlerFunc) {
	lessons := router.Group("/lessons")

	lessons.GET("/:lessonId", handler.GetLesson)

	lessons.POST("", append(staff, handler.CreateLesson)...)
	lessons.PUT("/:lessonId", append(staff, handler.UpdateLesson)...)
	lessons.DELETE("/:lessonId", append(staff, handler.DeleteLesson)...)
}
