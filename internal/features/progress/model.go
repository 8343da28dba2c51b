package progress

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skillpath/skillpath-server-go/pkg/types"
)

// Record tracks one user's completion state for one lesson.
type Record struct {
	types.BaseModel

	UserID      uuid.UUID  `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_progress_user_lesson" json:"userId"`
	LessonID    uuid.UUID  `gorm:"type:uuid;not null;column:lesson_id;uniqueIndex:idx_progress_user_lesson" json:"lessonId"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
}

// TableName overrides the default table name.
func (Record) TableName() string { return "progress_records" }

// ListByUser returns all progress records belonging to a user.
func ListByUser(db *gorm.DB, userID uuid.UUID) ([]Record, error) {
	var records []Record
	if err := db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetForLesson returns a user's record for one lesson.
func GetForLesson(db *gorm.DB, userID, lessonID uuid.UUID) (Record, error) {
	var rec Record
	err := db.First(&rec, "user_id = ? AND lesson_id = ?", userID, lessonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, ErrRecordNotFound
		}
		return rec, err
	}
	return rec, nil
}

// completionTimestamp returns the completed_at value for a completion
// state: the transition time when completing, NULL when un-completing.
func completionTimestamp(completed bool, now time.Time) *time.Time {
	if completed {
		return &now
	}
	return nil
}

// nextToggleState computes the record state after one toggle. A nil
// previous record counts as incomplete, so the first toggle completes
// the lesson.
func nextToggleState(prev *Record, userID, lessonID uuid.UUID, now time.Time) Record {
	rec := Record{UserID: userID, LessonID: lessonID}
	if prev != nil {
		rec = *prev
	}

	rec.Completed = prev == nil || !prev.Completed
	rec.CompletedAt = completionTimestamp(rec.Completed, now)
	return rec
}

// Set writes an explicit completion state, inserting or updating the
// (user, lesson) row in one statement.
func Set(db *gorm.DB, userID, lessonID uuid.UUID, completed bool) (Record, error) {
	completedAt := completionTimestamp(completed, time.Now().UTC())

	rec := Record{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   completed,
		CompletedAt: completedAt,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":    completed,
			"completed_at": completedAt,
			"updated_at":   time.Now().UTC(),
		}),
	}).Create(&rec).Error
	if err != nil {
		return Record{}, err
	}

	return GetForLesson(db, userID, lessonID)
}

// Toggle flips a lesson's completion state atomically. The row is
// locked for the duration of the transaction so concurrent toggles
// serialize instead of clobbering each other.
func Toggle(db *gorm.DB, userID, lessonID uuid.UUID) (Record, error) {
	var result Record
	err := db.Transaction(func(tx *gorm.DB) error {
		var prev Record
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&prev, "user_id = ? AND lesson_id = ?", userID, lessonID).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec := nextToggleState(nil, userID, lessonID, time.Now().UTC())
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
				DoNothing: true,
			}).Create(&rec)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				result = rec
				return nil
			}

			// Lost the insert race to a concurrent toggle. Lock the
			// winner's row and flip that instead of failing on the
			// unique index.
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&prev, "user_id = ? AND lesson_id = ?", userID, lessonID).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		next := nextToggleState(&prev, userID, lessonID, time.Now().UTC())
		updates := map[string]interface{}{
			"completed":    next.Completed,
			"completed_at": next.CompletedAt,
		}
		if err := tx.Model(&prev).Updates(updates).Error; err != nil {
			return err
		}

		result = next
		return nil
	})
	if err != nil {
		return Record{}, err
	}

	return result, nil
}
