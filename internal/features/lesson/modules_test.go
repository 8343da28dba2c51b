package lesson

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/skillpath-server-go/pkg/types"
)

func makeLesson(title, moduleName string, order int) Lesson {
	return Lesson{
		BaseModel:  types.BaseModel{ID: uuid.New()},
		CourseID:   uuid.New(),
		Title:      title,
		ModuleName: moduleName,
		OrderIndex: order,
	}
}

func TestGroupByModuleEmpty(t *testing.T) {
	groups := GroupByModule(nil)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupByModuleSingleModule(t *testing.T) {
	lessons := []Lesson{
		makeLesson("A", "Basics", 0),
		makeLesson("B", "Basics", 1),
		makeLesson("C", "Basics", 2),
	}

	groups := GroupByModule(lessons)

	require.Len(t, groups, 1)
	assert.Equal(t, "Basics", groups[0].Name)
	assert.Len(t, groups[0].Lessons, 3)
}

func TestGroupByModuleConsecutiveRuns(t *testing.T) {
	lessons := []Lesson{
		makeLesson("A", "Intro", 0),
		makeLesson("B", "Intro", 1),
		makeLesson("C", "Core", 2),
		makeLesson("D", "Core", 3),
		makeLesson("E", "Advanced", 4),
	}

	groups := GroupByModule(lessons)

	require.Len(t, groups, 3)
	assert.Equal(t, "Intro", groups[0].Name)
	assert.Equal(t, "Core", groups[1].Name)
	assert.Equal(t, "Advanced", groups[2].Name)
	assert.Len(t, groups[0].Lessons, 2)
	assert.Len(t, groups[1].Lessons, 2)
	assert.Len(t, groups[2].Lessons, 1)
}

func TestGroupByModuleRepeatedNameStartsNewGroup(t *testing.T) {
	lessons := []Lesson{
		makeLesson("A", "Intro", 0),
		makeLesson("B", "Intro", 1),
		makeLesson("C", "Core", 2),
		makeLesson("D", "Intro", 3),
	}

	groups := GroupByModule(lessons)

	// The second "Intro" run does not merge with the first one.
	require.Len(t, groups, 3)
	assert.Equal(t, "Intro", groups[0].Name)
	assert.Equal(t, "Core", groups[1].Name)
	assert.Equal(t, "Intro", groups[2].Name)
	assert.Equal(t, "D", groups[2].Lessons[0].Title)
}

func TestGroupByModulePreservesOrder(t *testing.T) {
	lessons := []Lesson{
		makeLesson("First", "M1", 0),
		makeLesson("Second", "M1", 1),
		makeLesson("Third", "M2", 2),
	}

	groups := GroupByModule(lessons)

	var flattened []string
	for _, group := range groups {
		for _, lsn := range group.Lessons {
			flattened = append(flattened, lsn.Title)
		}
	}

	assert.Equal(t, []string{"First", "Second", "Third"}, flattened)
}
