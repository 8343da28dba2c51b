package progress

import (
	"math"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-server-go/internal/features/lesson"
)

// CoursePercentage converts a completed/total lesson count into a whole
// percentage. A course with no lessons reports zero.
func CoursePercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}

	pct := int(math.Round(float64(completed) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Percentages computes the completion percentage of every course a
// lesson belongs to, given the full lesson list and one user's records.
// Courses without lessons map to zero. Records for lessons that no
// longer exist are ignored.
func Percentages(lessons []lesson.Lesson, records []Record) map[uuid.UUID]int {
	totals := make(map[uuid.UUID]int)
	lessonCourse := make(map[uuid.UUID]uuid.UUID, len(lessons))
	for _, lsn := range lessons {
		totals[lsn.CourseID]++
		lessonCourse[lsn.ID] = lsn.CourseID
	}

	completed := make(map[uuid.UUID]int)
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		courseID, ok := lessonCourse[rec.LessonID]
		if !ok {
			continue
		}
		completed[courseID]++
	}

	result := make(map[uuid.UUID]int, len(totals))
	for courseID, total := range totals {
		result[courseID] = CoursePercentage(completed[courseID], total)
	}

	return result
}

// CompletedLessons returns the set of lesson IDs a user has completed.
func CompletedLessons(records []Record) map[uuid.UUID]bool {
	done := make(map[uuid.UUID]bool, len(records))
	for _, rec := range records {
		if rec.Completed {
			done[rec.LessonID] = true
		}
	}
	return done
}
