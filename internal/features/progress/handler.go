package progress

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/features/lesson"
	"github.com/skillpath/skillpath-server-go/internal/middleware"
	"github.com/skillpath/skillpath-server-go/pkg/response"
)

// Handler processes progress HTTP requests.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHandler constructs a progress handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

type progressOverview struct {
	Records     []Record          `json:"records"`
	Percentages map[uuid.UUID]int `json:"percentages"`
}

type progressResult struct {
	Record               Record    `json:"record"`
	CourseID             uuid.UUID `json:"courseId"`
	CompletionPercentage int       `json:"completionPercentage"`
}

// GetProgress returns the caller's progress records and per-course
// completion percentages. A courseId query parameter narrows the
// response to a single course.
func (h *Handler) GetProgress(c *gin.Context) {
	usr, ok := middleware.GetUserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	records, err := ListByUser(h.db, usr.ID)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load progress.", err)
		return
	}

	var lessons []lesson.Lesson
	if rawCourseID := c.Query("courseId"); rawCourseID != "" {
		courseID, err := uuid.Parse(rawCourseID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid course ID.", nil)
			return
		}

		lessons, err = lesson.ListByCourse(h.db, courseID)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load lessons.", err)
			return
		}

		inCourse := make(map[uuid.UUID]bool, len(lessons))
		for _, lsn := range lessons {
			inCourse[lsn.ID] = true
		}

		filtered := make([]Record, 0, len(records))
		for _, rec := range records {
			if inCourse[rec.LessonID] {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	} else {
		lessons, err = lesson.ListAll(h.db)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load lessons.", err)
			return
		}
	}

	response.Success(c, http.StatusOK, progressOverview{
		Records:     records,
		Percentages: Percentages(lessons, records),
	}, "", nil)
}

type setProgressRequest struct {
	Completed *bool `json:"completed"`
}

// SetLessonProgress writes an explicit completion state for a lesson.
func (h *Handler) SetLessonProgress(c *gin.Context) {
	usr, ok := middleware.GetUserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	lessonID, ok := parseLessonID(c)
	if !ok {
		return
	}

	var req setProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		response.Error(c, http.StatusBadRequest, "Field 'completed' is required.", nil)
		return
	}

	lsn, err := lesson.Get(h.db, lessonID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rec, err := Set(h.db, usr.ID, lessonID, *req.Completed)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.buildResult(usr.ID, lsn.CourseID, rec)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to compute progress.", err)
		return
	}

	response.Success(c, http.StatusOK, result, "Progress updated.", nil)
}

// ToggleLessonProgress flips a lesson's completion state for the
// caller. An untracked lesson becomes completed.
func (h *Handler) ToggleLessonProgress(c *gin.Context) {
	usr, ok := middleware.GetUserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	lessonID, ok := parseLessonID(c)
	if !ok {
		return
	}

	lsn, err := lesson.Get(h.db, lessonID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rec, err := Toggle(h.db, usr.ID, lessonID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.buildResult(usr.ID, lsn.CourseID, rec)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to compute progress.", err)
		return
	}

	h.logger.Info("lesson progress toggled",
		"user_id", usr.ID, "lesson_id", lessonID, "completed", rec.Completed)
	response.Success(c, http.StatusOK, result, "Progress updated.", nil)
}

func (h *Handler) buildResult(userID, courseID uuid.UUID, rec Record) (progressResult, error) {
	courseLessons, err := lesson.ListByCourse(h.db, courseID)
	if err != nil {
		return progressResult{}, err
	}

	records, err := ListByUser(h.db, userID)
	if err != nil {
		return progressResult{}, err
	}

	completed := 0
	done := CompletedLessons(records)
	for _, lsn := range courseLessons {
		if done[lsn.ID] {
			completed++
		}
	}

	return progressResult{
		Record:               rec,
		CourseID:             courseID,
		CompletionPercentage: CoursePercentage(completed, len(courseLessons)),
	}, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lesson.ErrLessonNotFound), errors.Is(err, ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
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
