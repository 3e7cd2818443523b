package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("geocoding failed: ZERO_RESULTS", "OVER_QUERY_LIMIT", "ZERO_RESULTS"))
	assert.False(t, HasAny("REQUEST_DENIED", "ZERO_RESULTS"))
	assert.False(t, HasAny("anything"))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t\n"))
	assert.False(t, IsBlank(" Berlin "))
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "Berlin", FirstNonBlank("", "  ", "Berlin", "Paris"))
	assert.Equal(t, "", FirstNonBlank(" ", ""))
}
