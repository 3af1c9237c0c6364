package domain

import (
	"fmt"
	"strings"
)

type ResourceType string

const (
	ResourceTypePaper    ResourceType = "paper"
	ResourceTypeNote     ResourceType = "note"
	ResourceTypeSyllabus ResourceType = "syllabus"
)

func (t ResourceType) Validate() error {
	switch t {
	case ResourceTypePaper, ResourceTypeNote, ResourceTypeSyllabus:
		return nil
	default:
		return fmt.Errorf("unsupported resource type %q", string(t))
	}
}

// Plural is the path segment the backend uses for this type.
func (t ResourceType) Plural() string {
	switch t {
	case ResourceTypeSyllabus:
		return "syllabus"
	default:
		return string(t) + "s"
	}
}

// Resource is a read-only snapshot owned by the backend. Lists are replaced
// wholesale on every fetch; the client never patches them incrementally.
type Resource struct {
	ID          string
	Type        ResourceType
	Title       string
	Branch      string
	Description string
	Tags        []string
	Year        string
	UploadedBy  string
	FileName    string
}

func (r Resource) Validate() error {
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// Search* methods feed the query engine.

func (r Resource) SearchTitle() string  { return r.Title }
func (r Resource) SearchBranch() string { return r.Branch }

func (r Resource) SearchText() []string {
	fields := make([]string, 0, len(r.Tags)+1)
	if r.Description != "" {
		fields = append(fields, r.Description)
	}
	return append(fields, r.Tags...)
}

// Upload is a new-resource submission. Validation happens before any network
// dispatch: a rejected upload never produces a request.
type Upload struct {
	Type        ResourceType
	Title       string
	Branch      string
	Description string
	Tags        []string
	Year        string
	FilePath    string
}

func (u Upload) Validate() error {
	if err := u.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(u.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(u.Branch) == "" {
		return fmt.Errorf("branch is required")
	}
	if strings.TrimSpace(u.FilePath) == "" {
		return fmt.Errorf("file is required")
	}
	return nil
}

// PreviewPage is one page of a downloaded PDF rendered as text.
type PreviewPage struct {
	Number int
	Total  int
	Text   string
}
