package parsing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	n, err := ParseCount("Certificates", " 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ParseCount("Certificates", "2.0")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = ParseCount("Certificates", "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestParseCount_Invalid(t *testing.T) {
	for _, raw := range []string{"many", "-1"} {
		_, err := ParseCount("Certificates", raw)
		var valueErr *ValueError
		require.True(t, errors.As(err, &valueErr), raw)
		assert.Equal(t, "Certificates", valueErr.Field)
	}
}

func TestParseYear(t *testing.T) {
	n, err := ParseYear("Graduation_Year", "2023")
	require.NoError(t, err)
	assert.Equal(t, 2023, n)

	n, err = ParseYear("Graduation_Year", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultGraduationYear, n)

	_, err = ParseYear("Graduation_Year", "23")
	assert.Error(t, err)
}
