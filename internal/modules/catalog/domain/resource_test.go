package domain_test

import (
	"testing"

	"eduterm/internal/modules/catalog/domain"
)

func TestResourceTypeValidate(t *testing.T) {
	t.Parallel()
	for _, valid := range []domain.ResourceType{domain.ResourceTypePaper, domain.ResourceTypeNote, domain.ResourceTypeSyllabus} {
		if err := valid.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", valid, err)
		}
	}
	if err := domain.ResourceType("thesis").Validate(); err == nil {
		t.Fatalf("unknown resource type should fail")
	}
}

func TestResourceTypePlural(t *testing.T) {
	t.Parallel()
	if got := domain.ResourceTypePaper.Plural(); got != "papers" {
		t.Fatalf("expected papers, got %s", got)
	}
	if got := domain.ResourceTypeSyllabus.Plural(); got != "syllabus" {
		t.Fatalf("syllabus is uncounted on the backend, got %s", got)
	}
}

func TestUploadValidate(t *testing.T) {
	t.Parallel()
	base := domain.Upload{
		Type:     domain.ResourceTypePaper,
		Title:    "Data Structures 2023",
		Branch:   "Computer Science Engineering",
		FilePath: "/tmp/ds.pdf",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("upload should be valid: %v", err)
	}

	missingTitle := base
	missingTitle.Title = "  "
	if err := missingTitle.Validate(); err == nil {
		t.Fatalf("missing title should fail")
	}
	missingBranch := base
	missingBranch.Branch = ""
	if err := missingBranch.Validate(); err == nil {
		t.Fatalf("missing branch should fail")
	}
	missingFile := base
	missingFile.FilePath = ""
	if err := missingFile.Validate(); err == nil {
		t.Fatalf("missing file should fail")
	}
}
