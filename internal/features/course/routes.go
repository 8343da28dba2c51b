package course

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches course endpoints to the router. Catalog reads
// take the optional-auth chain so anonymous browsing works; write
// endpoints take the staff chain.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, optionalAuth, staff []gin.HandlerFunc) {
	courses := router.Group("/courses")

	courses.GET("", append(optionalAuth, handler.ListCourses)...)
	courses.GET("/:courseId", append(optionalAuth, handler.GetCourse)...)
	courses.GET("/:courseId/lessons", append(optionalAuth, handler.ListLessons)...)
	courses.GET("/:courseId/detail", append(optionalAuth, handler.GetCourseDetail)...)

	courses.POST("", append(staff, handler.CreateCourse)...)
	courses.PUT("/:courseId", append(staff, handler.UpdateCourse)...)
	courses.DELETE("/:courseId", append(staff, handler.DeleteCourse)...)
}
