package progress

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches progress endpoints to the router. All of
// them require authentication.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authenticated []gin.HandlerFunc) {
	router.GET("/progress", append(authenticated, handler.GetProgress)...)

	lessons := router.Group("/lessons/:lessonId/progress")
	lessons.PUT("", append(authenticated, handler.SetLessonProgress)...)
	lessons.POST("/toggle", append(authenticated, handler.ToggleLessonProgress)...)
}
