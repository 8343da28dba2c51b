package progress

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skillpath/skillpath-server-go/internal/features/lesson"
	"github.com/skillpath/skillpath-server-go/pkg/types"
)

func courseLesson(courseID uuid.UUID) lesson.Lesson {
	return lesson.Lesson{
		BaseModel: types.BaseModel{ID: uuid.New()},
		CourseID:  courseID,
	}
}

func completedRecord(lessonID uuid.UUID) Record {
	return Record{
		BaseModel: types.BaseModel{ID: uuid.New()},
		LessonID:  lessonID,
		Completed: true,
	}
}

func TestCoursePercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"no lessons", 0, 0, 0},
		{"nothing completed", 0, 4, 0},
		{"half completed", 2, 4, 50},
		{"all completed", 4, 4, 100},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"never exceeds hundred", 5, 4, 100},
		{"negative total", 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoursePercentage(tt.completed, tt.total))
		})
	}
}

func TestPercentagesNoRecords(t *testing.T) {
	courseID := uuid.New()
	lessons := []lesson.Lesson{
		courseLesson(courseID),
		courseLesson(courseID),
		courseLesson(courseID),
		courseLesson(courseID),
	}

	result := Percentages(lessons, nil)

	assert.Equal(t, 0, result[courseID])
}

func TestPercentagesPartialCompletion(t *testing.T) {
	courseID := uuid.New()
	lessons := []lesson.Lesson{
		courseLesson(courseID),
		courseLesson(courseID),
		courseLesson(courseID),
		courseLesson(courseID),
	}

	records := []Record{
		completedRecord(lessons[0].ID),
		completedRecord(lessons[1].ID),
	}

	result := Percentages(lessons, records)

	assert.Equal(t, 50, result[courseID])
}

func TestPercentagesIgnoresIncompleteRecords(t *testing.T) {
	courseID := uuid.New()
	lessons := []lesson.Lesson{
		courseLesson(courseID),
		courseLesson(courseID),
	}

	records := []Record{
		completedRecord(lessons[0].ID),
		{BaseModel: types.BaseModel{ID: uuid.New()}, LessonID: lessons[1].ID, Completed: false},
	}

	result := Percentages(lessons, records)

	assert.Equal(t, 50, result[courseID])
}

func TestPercentagesIgnoresOrphanRecords(t *testing.T) {
	courseID := uuid.New()
	lessons := []lesson.Lesson{
		courseLesson(courseID),
		courseLesson(courseID),
	}

	records := []Record{
		completedRecord(lessons[0].ID),
		completedRecord(uuid.New()), // lesson no longer exists
	}

	result := Percentages(lessons, records)

	assert.Equal(t, 50, result[courseID])
}

func TestPercentagesMultipleCourses(t *testing.T) {
	courseA := uuid.New()
	courseB := uuid.New()
	lessons := []lesson.Lesson{
		courseLesson(courseA),
		courseLesson(courseA),
		courseLesson(courseB),
	}

	records := []Record{
		completedRecord(lessons[0].ID),
		completedRecord(lessons[2].ID),
	}

	result := Percentages(lessons, records)

	assert.Equal(t, 50, result[courseA])
	assert.Equal(t, 100, result[courseB])
}

func TestCompletedLessons(t *testing.T) {
	done := uuid.New()
	undone := uuid.New()

	records := []Record{
		completedRecord(done),
		{BaseModel: types.BaseModel{ID: uuid.New()}, LessonID: undone, Completed: false},
	}

	result := CompletedLessons(records)

	assert.True(t, result[done])
	assert.False(t, result[undone])
}
