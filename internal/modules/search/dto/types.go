package dto

type SearchInput struct {
	Query  string
	Kind   string
	Branch string
	Limit  int
}

type ItemOutput struct {
	ID          string
	Kind        string
	Title       string
	Description string
	Branch      string
	Tags        []string
	Year        string
}
