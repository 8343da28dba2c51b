package lesson

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/pkg/types"
)

// Lesson represents a single lesson within a course.
type Lesson struct {
	types.BaseModel

	CourseID   uuid.UUID `gorm:"type:uuid;not null;column:course_id;index" json:"courseId"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	ModuleName string    `gorm:"type:varchar(255);not null;column:module_name" json:"moduleName"`
	OrderIndex int       `gorm:"not null;default:0;column:order_index" json:"orderIndex"`
	Duration   *string   `gorm:"type:varchar(50)" json:"duration"`
}

// TableName overrides the default table name.
func (Lesson) TableName() string { return "lessons" }

// CreateInput carries data for creating a lesson.
type CreateInput struct {
	CourseID   uuid.UUID
	Title      string
	Content    string
	ModuleName string
	OrderIndex int
	Duration   *string
}

// UpdateInput carries optional fields for updating a lesson.
type UpdateInput struct {
	Title      *string
	Content    *string
	ModuleName *string
	OrderIndex *int
	Duration   *string
}

// ListByCourse returns a course's lessons in display order. Order index
// ties are broken by ID so the ordering is stable across requests.
func ListByCourse(db *gorm.DB, courseID uuid.UUID) ([]Lesson, error) {
	var lessons []Lesson
	err := db.Where("course_id = ?", courseID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

// ListAll returns every lesson. Used for catalog-wide progress aggregation.
func ListAll(db *gorm.DB) ([]Lesson, error) {
	var lessons []Lesson
	if err := db.Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// Get retrieves a single lesson by ID.
func Get(db *gorm.DB, id uuid.UUID) (Lesson, error) {
	var lsn Lesson
	if err := db.First(&lsn, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lsn, ErrLessonNotFound
		}
		return lsn, err
	}
	return lsn, nil
}

// Create inserts a new lesson after verifying the course exists.
func Create(db *gorm.DB, input CreateInput) (Lesson, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Lesson{}, ErrTitleRequired
	}

	moduleName := strings.TrimSpace(input.ModuleName)
	if moduleName == "" {
		return Lesson{}, ErrModuleRequired
	}

	var count int64
	if err := db.Table("courses").Where("id = ?", input.CourseID).Count(&count).Error; err != nil {
		return Lesson{}, err
	}
	if count == 0 {
		return Lesson{}, ErrCourseNotFound
	}

	lsn := Lesson{
		CourseID:   input.CourseID,
		Title:      title,
		Content:    input.Content,
		ModuleName: moduleName,
		OrderIndex: input.OrderIndex,
		Duration:   input.Duration,
	}

	if err := db.Create(&lsn).Error; err != nil {
		return Lesson{}, err
	}

	return lsn, nil
}

// Update applies partial changes to a lesson.
func Update(db *gorm.DB, id uuid.UUID, input UpdateInput) (Lesson, error) {
	lsn, err := Get(db, id)
	if err != nil {
		return Lesson{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return Lesson{}, ErrTitleRequired
		}
		lsn.Title = title
	}
	if input.Content != nil {
		lsn.Content = *input.Content
	}
	if input.ModuleName != nil {
		moduleName := strings.TrimSpace(*input.ModuleName)
		if moduleName == "" {
			return Lesson{}, ErrModuleRequired
		}
		lsn.ModuleName = moduleName
	}
	if input.OrderIndex != nil {
		lsn.OrderIndex = *input.OrderIndex
	}
	if input.Duration != nil {
		lsn.Duration = input.Duration
	}

	if err := db.Save(&lsn).Error; err != nil {
		return Lesson{}, err
	}

	return lsn, nil
}

// Delete removes a lesson and any progress recorded against it.
func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		lsn, err := Get(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM progress_records WHERE lesson_id = ?", lsn.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&lsn).Error
	})
}
