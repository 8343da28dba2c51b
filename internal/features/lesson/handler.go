package lesson

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/pkg/response"
)

// Handler processes lesson HTTP requests.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHandler constructs a lesson handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// GetLesson returns a single lesson by ID.
func (h *Handler) GetLesson(c *gin.Context) {
	id, ok := parseLessonID(c)
	if !ok {
		return
	}

	lsn, err := Get(h.db, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, lsn, "", nil)
}

type createLessonRequest struct {
	CourseID   uuid.UUID `json:"courseId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ModuleName string    `json:"moduleName"`
	OrderIndex int       `json:"orderIndex"`
	Duration   *string   `json:"duration"`
}

// CreateLesson adds a lesson to a course.
func (h *Handler) CreateLesson(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	if req.CourseID == uuid.Nil {
		response.Error(c, http.StatusBadRequest, "Course ID is required.", nil)
		return
	}

	lsn, err := Create(h.db, CreateInput{
		CourseID:   req.CourseID,
		Title:      req.Title,
		Content:    req.Content,
		ModuleName: req.ModuleName,
		OrderIndex: req.OrderIndex,
		Duration:   req.Duration,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("lesson created", "lesson_id", lsn.ID, "course_id", lsn.CourseID)
	response.Created(c, lsn, "Lesson created successfully.")
}

type updateLessonRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	ModuleName *string `json:"moduleName"`
	OrderIndex *int    `json:"orderIndex"`
	Duration   *string `json:"duration"`
}

// UpdateLesson applies partial changes to a lesson.
func (h *Handler) UpdateLesson(c *gin.Context) {
	id, ok := parseLessonID(c)
	if !ok {
		return
	}

	var req updateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	lsn, err := Update(h.db, id, UpdateInput{
		Title:      req.Title,
		Content:    req.Content,
		ModuleName: req.ModuleName,
		OrderIndex: req.OrderIndex,
		Duration:   req.Duration,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, lsn, "Lesson updated successfully.", nil)
}

// DeleteLesson removes a lesson and its progress records.
func (h *Handler) DeleteLesson(c *gin.Context) {
	id, ok := parseLessonID(c)
	if !ok {
		return
	}

	if err := Delete(h.db, id); err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("lesson deleted", "lesson_id", id)
	response.Success(c, http.StatusOK, nil, "Lesson deleted successfully.", nil)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLessonNotFound), errors.Is(err, ErrCourseNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrModuleRequired):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Something went wrong.", err)
	}
}

func parseLessonID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid lesson ID.", nil)
		return uuid.Nil, false
	}
	return id, true
}
