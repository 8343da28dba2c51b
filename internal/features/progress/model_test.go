package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/skillpath-server-go/pkg/types"
)

func TestNextToggleStateFirstToggleCompletes(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()
	now := time.Now().UTC()

	// An untracked lesson counts as incomplete.
	rec := nextToggleState(nil, userID, lessonID, now)

	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, lessonID, rec.LessonID)
	assert.True(t, rec.Completed)
	require.NotNil(t, rec.CompletedAt)
	assert.Equal(t, now, *rec.CompletedAt)
}

func TestNextToggleStateTwiceRestoresOriginal(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()
	now := time.Now().UTC()

	first := nextToggleState(nil, userID, lessonID, now)
	second := nextToggleState(&first, userID, lessonID, now.Add(time.Second))

	// Two toggles land back on the original incomplete state with the
	// completion timestamp cleared.
	assert.False(t, second.Completed)
	assert.Nil(t, second.CompletedAt)
	assert.Equal(t, userID, second.UserID)
	assert.Equal(t, lessonID, second.LessonID)
}

func TestNextToggleStateRecompleteRefreshesTimestamp(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()
	start := time.Now().UTC()

	first := nextToggleState(nil, userID, lessonID, start)
	second := nextToggleState(&first, userID, lessonID, start.Add(time.Second))
	third := nextToggleState(&second, userID, lessonID, start.Add(2*time.Second))

	assert.True(t, third.Completed)
	require.NotNil(t, third.CompletedAt)
	assert.Equal(t, start.Add(2*time.Second), *third.CompletedAt)
}

func TestNextToggleStatePreservesRowIdentity(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()
	now := time.Now().UTC()

	prev := Record{
		BaseModel: types.BaseModel{ID: uuid.New()},
		UserID:    userID,
		LessonID:  lessonID,
		Completed: true,
		CompletedAt: func() *time.Time {
			ts := now.Add(-time.Hour)
			return &ts
		}(),
	}

	next := nextToggleState(&prev, userID, lessonID, now)

	// The flip keeps the stored row's identity so updates target it.
	assert.Equal(t, prev.ID, next.ID)
	assert.False(t, next.Completed)
	assert.Nil(t, next.CompletedAt)
}

func TestCompletionTimestamp(t *testing.T) {
	now := time.Now().UTC()

	ts := completionTimestamp(true, now)
	require.NotNil(t, ts)
	assert.Equal(t, now, *ts)

	assert.Nil(t, completionTimestamp(false, now))
}
