package domain

// Kind mirrors the backend's resource taxonomy plus forum posts.
type Kind string

const (
	KindPaper    Kind = "paper"
	KindNote     Kind = "note"
	KindSyllabus Kind = "syllabus"
	KindForum    Kind = "forum"
)

// Item is one global search result, flattened across resource kinds.
type Item struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Branch      string
	Tags        []string
	Year        string
}

func (i Item) SearchTitle() string  { return i.Title }
func (i Item) SearchBranch() string { return i.Branch }

func (i Item) SearchText() []string {
	fields := make([]string, 0, len(i.Tags)+1)
	if i.Description != "" {
		fields = append(fields, i.Description)
	}
	return append(fields, i.Tags...)
}
