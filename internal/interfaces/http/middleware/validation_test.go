package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsISODate(t *testing.T) {
	valid := []string{"2024-01-15", "1999-12-31", "2024-02-30"}
	for _, s := range valid {
		assert.True(t, isISODate(s), s)
	}

	invalid := []string{"", "2024-1-15", "15-01-2024", "2024/01/15", "2024-01-15T00:00:00Z", "yyyy-mm-dd"}
	for _, s := range invalid {
		assert.False(t, isISODate(s), s)
	}
}

func TestValidationMessage_PassesThroughNonValidationErrors(t *testing.T) {
	err := assert.AnError
	assert.Equal(t, err.Error(), ValidationMessage(err))
}
