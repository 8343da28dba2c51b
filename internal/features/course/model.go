package course

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/pkg/types"
)

// Course represents a course in the catalog.
type Course struct {
	types.BaseModel

	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"type:text;column:image_url" json:"imageUrl"`
	Duration    *string        `gorm:"type:varchar(50)" json:"duration"`
	Level       *string        `gorm:"type:varchar(50)" json:"level"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
}

// TableName overrides the default table name.
func (Course) TableName() string { return "courses" }

// CreateInput carries data for creating a course.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	Duration    *string
	Level       *string
	Tags        []string
}

// UpdateInput carries optional fields for updating a course.
// Nil pointers leave the stored value untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	Duration    *string
	Level       *string
	Tags        []string
}

// List returns all courses ordered by creation time, oldest first.
func List(db *gorm.DB) ([]Course, error) {
	var courses []Course
	if err := db.Order("created_at ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Get retrieves a single course by ID.
func Get(db *gorm.DB, id uuid.UUID) (Course, error) {
	var crs Course
	if err := db.First(&crs, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return crs, ErrCourseNotFound
		}
		return crs, err
	}
	return crs, nil
}

// Create inserts a new course.
func Create(db *gorm.DB, input CreateInput) (Course, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Course{}, ErrTitleRequired
	}

	crs := Course{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Duration:    input.Duration,
		Level:       input.Level,
		Tags:        pq.StringArray(input.Tags),
	}

	if err := db.Create(&crs).Error; err != nil {
		return Course{}, err
	}

	return crs, nil
}

// Update applies partial changes to a course.
func Update(db *gorm.DB, id uuid.UUID, input UpdateInput) (Course, error) {
	crs, err := Get(db, id)
	if err != nil {
		return Course{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return Course{}, ErrTitleRequired
		}
		crs.Title = title
	}
	if input.Description != nil {
		crs.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURL != nil {
		crs.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Duration != nil {
		crs.Duration = input.Duration
	}
	if input.Level != nil {
		crs.Level = input.Level
	}
	if input.Tags != nil {
		crs.Tags = pq.StringArray(input.Tags)
	}

	if err := db.Save(&crs).Error; err != nil {
		return Course{}, err
	}

	return crs, nil
}

// Delete removes a course and its lessons. Progress rows tied to the
// deleted lessons are removed in the same transaction.
func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		crs, err := Get(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM progress_records WHERE lesson_id IN (SELECT id FROM lessons WHERE course_id = ?)",
			crs.ID,
		).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM lessons WHERE course_id = ?", crs.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&crs).Error
	})
}
