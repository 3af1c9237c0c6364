package domain

import "testing"

func TestSanitizeStripsMarkup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> claim", "bold claim"},
		{`<script>alert("x")</script>hello`, "hello"},
		{`<a href="http://evil.test">link</a>`, "link"},
		{"&lt;already escaped&gt;", "<already escaped>"},
		{"  spaced  ", "spaced"},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewPostValidation(t *testing.T) {
	t.Parallel()

	if err := (NewPost{Title: "Q", Content: "body"}).Validate(); err != nil {
		t.Errorf("valid post rejected: %v", err)
	}
	if err := (NewPost{Title: " ", Content: "body"}).Validate(); err == nil {
		t.Error("blank title accepted")
	}
	if err := (NewPost{Title: "Q", Content: ""}).Validate(); err == nil {
		t.Error("empty content accepted")
	}
}
