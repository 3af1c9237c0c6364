package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "eduterm/internal/platform/errors"
)

type Post struct {
	ID         string
	Title      string
	Content    string
	Author     string
	Branch     string
	Tags       []string
	CreatedAt  time.Time
	ReplyCount int
}

func (p Post) SearchTitle() string  { return p.Title }
func (p Post) SearchBranch() string { return p.Branch }
func (p Post) SearchText() []string {
	text := make([]string, 0, len(p.Tags)+1)
	text = append(text, p.Content)
	text = append(text, p.Tags...)
	return text
}

type Reply struct {
	ID        string
	PostID    string
	Content   string
	Author    string
	CreatedAt time.Time
}

type NewPost struct {
	Title   string
	Content string
	Branch  string
	Tags    []string
}

func (n NewPost) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: post title required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(n.Content) == "" {
		return fmt.Errorf("%w: post content required", apperrors.ErrInvalidInput)
	}
	return nil
}

type NewReply struct {
	PostID  string
	Content string
}

func (n NewReply) Validate() error {
	if n.PostID == "" {
		return fmt.Errorf("%w: reply post id required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(n.Content) == "" {
		return fmt.Errorf("%w: reply content required", apperrors.ErrInvalidInput)
	}
	return nil
}
