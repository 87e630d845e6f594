package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortID(t *testing.T) {
	pattern := regexp.MustCompile(`^req_[0-9a-f]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := ShortID("req")
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 45)
}
