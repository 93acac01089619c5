package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id := New()
	assert.Len(t, id, Length)
	assert.Regexp(t, "^[0-9a-f]{32}$", id)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id generated")
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(New()))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("short"))
	assert.False(t, IsValid(New()+"0"))
}
