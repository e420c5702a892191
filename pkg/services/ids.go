package services

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a prefixed unique identifier, e.g. "build_5f1c…".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}
