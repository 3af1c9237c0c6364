package domain

import (
	"fmt"
	"time"

	apperrors "eduterm/internal/platform/errors"
)

// Key identifies one bookmarkable resource across resource kinds.
type Key struct {
	Type string // paper, note, syllabus, forum
	ID   string
}

func (k Key) Validate() error {
	switch k.Type {
	case "paper", "note", "syllabus", "forum":
	default:
		return fmt.Errorf("%w: bookmark type %q", apperrors.ErrInvalidInput, k.Type)
	}
	if k.ID == "" {
		return fmt.Errorf("%w: bookmark id required", apperrors.ErrInvalidInput)
	}
	return nil
}

type Bookmark struct {
	Key     Key
	Title   string
	AddedAt time.Time
}

// Set holds the known bookmark state per resource.
type Set map[Key]bool
