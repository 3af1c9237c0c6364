package dto

type ListInput struct {
	Type   string
	Query  string
	Branch string
	Limit  int
}

type ResourceOutput struct {
	ID          string
	Type        string
	Title       string
	Branch      string
	Description string
	Tags        []string
	Year        string
	UploadedBy  string
}

type UploadInput struct {
	Type        string
	Title       string
	Branch      string
	Description string
	Tags        []string
	Year        string
	FilePath    string
}

type DownloadOutput struct {
	Path  string
	Title string
}

type PreviewInput struct {
	Type string
	ID   string
	Page int
}

type PreviewOutput struct {
	Title string
	Page  int
	Total int
	Text  string
}
