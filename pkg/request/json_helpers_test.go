package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadString(t *testing.T) {
	value, err := ReadString("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	_, err = ReadString("   ")
	assert.Error(t, err)

	_, err = ReadString(42)
	assert.Error(t, err)
}

func TestReadInt(t *testing.T) {
	// JSON numbers decode to float64.
	value, err := ReadInt(float64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	value, err = ReadInt(3)
	require.NoError(t, err)
	assert.Equal(t, 3, value)

	_, err = ReadInt("7")
	assert.Error(t, err)
}

func TestReadBool(t *testing.T) {
	value, err := ReadBool(true)
	require.NoError(t, err)
	assert.True(t, value)

	_, err = ReadBool("true")
	assert.Error(t, err)
}

func TestReadStringSlice(t *testing.T) {
	value, err := ReadStringSlice([]interface{}{"go", "  backend ", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "backend"}, value)

	_, err = ReadStringSlice([]interface{}{"go", 42})
	assert.Error(t, err)

	_, err = ReadStringSlice("not an array")
	assert.Error(t, err)
}
