package course

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/features/lesson"
	"github.com/skillpath/skillpath-server-go/internal/features/progress"
	"github.com/skillpath/skillpath-server-go/internal/middleware"
	"github.com/skillpath/skillpath-server-go/pkg/cache"
	"github.com/skillpath/skillpath-server-go/pkg/metrics"
	"github.com/skillpath/skillpath-server-go/pkg/pagination"
	"github.com/skillpath/skillpath-server-go/pkg/request"
	"github.com/skillpath/skillpath-server-go/pkg/response"
)

const (
	catalogCacheKey = "courses:list"
	catalogCacheTTL = 5 * time.Minute
)

// Handler processes course HTTP requests.
type Handler struct {
	db     *gorm.DB
	cache  cache.Client
	logger *slog.Logger
}

// NewHandler constructs a course handler instance.
func NewHandler(db *gorm.DB, cacheClient cache.Client, logger *slog.Logger) *Handler {
	return &Handler{db: db, cache: cacheClient, logger: logger}
}

type catalogCourse struct {
	Course
	CompletionPercentage int `json:"completionPercentage"`
}

type lessonView struct {
	lesson.Lesson
	Completed bool `json:"completed"`
}

type detailModule struct {
	Name    string       `json:"name"`
	Lessons []lessonView `json:"lessons"`
}

type courseDetail struct {
	Course
	Modules              []detailModule `json:"modules"`
	TotalLessons         int            `json:"totalLessons"`
	CompletedLessons     int            `json:"completedLessons"`
	CompletionPercentage int            `json:"completionPercentage"`
}

// ListCourses returns the full catalog. Authenticated requests include
// each course's completion percentage; anonymous ones report zero.
func (h *Handler) ListCourses(c *gin.Context) {
	courses, err := h.loadCatalog(c)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load courses.", err)
		return
	}

	percentages := map[uuid.UUID]int{}
	if usr, ok := middleware.GetUserFromContext(c); ok {
		percentages, err = h.userPercentages(usr.ID)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load progress.", err)
			return
		}
	}

	params := pagination.Extract(c)
	meta := pagination.MetadataFrom(int64(len(courses)), params)
	start, end := params.Bounds(len(courses))

	result := make([]catalogCourse, 0, end-start)
	for _, crs := range courses[start:end] {
		result = append(result, catalogCourse{
			Course:               crs,
			CompletionPercentage: percentages[crs.ID],
		})
	}

	response.Success(c, http.StatusOK, result, "", meta)
}

// GetCourse returns a single course by ID.
func (h *Handler) GetCourse(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}

	crs, err := Get(h.db, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, crs, "", nil)
}

// ListLessons returns a course's lessons in display order.
func (h *Handler) ListLessons(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}

	if _, err := Get(h.db, id); err != nil {
		h.respondError(c, err)
		return
	}

	lessons, err := lesson.ListByCourse(h.db, id)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load lessons.", err)
		return
	}

	response.Success(c, http.StatusOK, lessons, "", nil)
}

// GetCourseDetail returns a course with its lessons grouped into
// modules, annotated with the caller's completion state.
func (h *Handler) GetCourseDetail(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}

	crs, err := Get(h.db, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	lessons, err := lesson.ListByCourse(h.db, id)
	if err != nil {
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load lessons.", err)
		return
	}

	completed := map[uuid.UUID]bool{}
	if usr, ok := middleware.GetUserFromContext(c); ok {
		records, err := progress.ListByUser(h.db, usr.ID)
		if err != nil {
			response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Failed to load progress.", err)
			return
		}
		completed = progress.CompletedLessons(records)
	}

	detail := courseDetail{
		Course:       crs,
		Modules:      make([]detailModule, 0),
		TotalLessons: len(lessons),
	}

	for _, group := range lesson.GroupByModule(lessons) {
		mod := detailModule{Name: group.Name, Lessons: make([]lessonView, 0, len(group.Lessons))}
		for _, lsn := range group.Lessons {
			done := completed[lsn.ID]
			if done {
				detail.CompletedLessons++
			}
			mod.Lessons = append(mod.Lessons, lessonView{Lesson: lsn, Completed: done})
		}
		detail.Modules = append(detail.Modules, mod)
	}

	detail.CompletionPercentage = progress.CoursePercentage(detail.CompletedLessons, detail.TotalLessons)

	response.Success(c, http.StatusOK, detail, "", nil)
}

type createCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Duration    *string  `json:"duration"`
	Level       *string  `json:"level"`
	Tags        []string `json:"tags"`
}

// CreateCourse adds a course to the catalog.
func (h *Handler) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	crs, err := Create(h.db, CreateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Duration:    req.Duration,
		Level:       req.Level,
		Tags:        req.Tags,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateCatalog(c)
	h.logger.Info("course created", "course_id", crs.ID, "title", crs.Title)
	response.Created(c, crs, "Course created successfully.")
}

// UpdateCourse applies partial changes to a course. Only the fields
// present in the request body are touched.
func (h *Handler) UpdateCourse(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	input, err := updateInputFromBody(body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	crs, err := Update(h.db, id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateCatalog(c)
	response.Success(c, http.StatusOK, crs, "Course updated successfully.", nil)
}

// DeleteCourse removes a course along with its lessons and progress.
func (h *Handler) DeleteCourse(c *gin.Context) {
	id, ok := parseCourseID(c)
	if !ok {
		return
	}

	if err := Delete(h.db, id); err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateCatalog(c)
	h.logger.Info("course deleted", "course_id", id)
	response.Success(c, http.StatusOK, nil, "Course deleted successfully.", nil)
}

func (h *Handler) loadCatalog(c *gin.Context) ([]Course, error) {
	ctx := c.Request.Context()

	var cached []Course
	if err := cache.GetJSON(ctx, h.cache, catalogCacheKey, &cached); err == nil {
		metrics.RecordCacheHit("courses")
		return cached, nil
	}
	metrics.RecordCacheMiss("courses")

	courses, err := List(h.db)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, h.cache, catalogCacheKey, courses, catalogCacheTTL); err != nil {
		h.logger.Warn("failed to cache course list", "error", err)
	}

	return courses, nil
}

func (h *Handler) userPercentages(userID uuid.UUID) (map[uuid.UUID]int, error) {
	lessons, err := lesson.ListAll(h.db)
	if err != nil {
		return nil, err
	}

	records, err := progress.ListByUser(h.db, userID)
	if err != nil {
		return nil, err
	}

	return progress.Percentages(lessons, records), nil
}

func (h *Handler) invalidateCatalog(c *gin.Context) {
	if err := h.cache.Delete(c.Request.Context(), catalogCacheKey); err != nil {
		h.logger.Warn("failed to invalidate course cache", "error", err)
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrTitleRequired):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Something went wrong.", err)
	}
}

func updateInputFromBody(body map[string]interface{}) (UpdateInput, error) {
	var input UpdateInput

	if raw, exists := body["title"]; exists {
		title, err := request.ReadString(raw)
		if err != nil {
			return input, ErrTitleRequired
		}
		input.Title = &title
	}
	if raw, exists := body["description"]; exists {
		description, _ := raw.(string)
		input.Description = &description
	}
	if raw, exists := body["imageUrl"]; exists {
		imageURL, _ := raw.(string)
		input.ImageURL = &imageURL
	}
	if raw, exists := body["duration"]; exists {
		if duration, err := request.ReadString(raw); err == nil {
			input.Duration = &duration
		}
	}
	if raw, exists := body["level"]; exists {
		if level, err := request.ReadString(raw); err == nil {
			input.Level = &level
		}
	}
	if raw, exists := body["tags"]; exists {
		tags, err := request.ReadStringSlice(raw)
		if err != nil {
			return input, errors.New("tags must be an array of strings")
		}
		input.Tags = tags
	}

	return input, nil
}

func parseCourseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid course ID.", nil)
		return uuid.Nil, false
	}
	return id, true
}
