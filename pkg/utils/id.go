package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShortID returns prefix + "_" + the first 8 hex characters of a random UUID,
// e.g. "req_1a2b3c4d".
func ShortID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:8]
}

// NowMillis is the document timestamp format: Unix epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
