package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateInputFromBodyPartial(t *testing.T) {
	body := map[string]interface{}{
		"title": "New Title",
		"tags":  []interface{}{"go", "backend"},
	}

	input, err := updateInputFromBody(body)
	require.NoError(t, err)

	require.NotNil(t, input.Title)
	assert.Equal(t, "New Title", *input.Title)
	assert.Equal(t, []string{"go", "backend"}, input.Tags)

	// Absent fields stay nil so the update leaves them untouched.
	assert.Nil(t, input.Description)
	assert.Nil(t, input.Duration)
	assert.Nil(t, input.Level)
}

func TestUpdateInputFromBodyBlankTitle(t *testing.T) {
	body := map[string]interface{}{"title": "   "}

	_, err := updateInputFromBody(body)
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestUpdateInputFromBodyBadTags(t *testing.T) {
	body := map[string]interface{}{"tags": []interface{}{"go", 42}}

	_, err := updateInputFromBody(body)
	assert.Error(t, err)
}

func TestUpdateInputFromBodyEmpty(t *testing.T) {
	input, err := updateInputFromBody(map[string]interface{}{})
	require.NoError(t, err)

	assert.Nil(t, input.Title)
	assert.Nil(t, input.Tags)
}
