package domain

// SessionState lives only for the current terminal session. It is held in
// the session-scoped store and starts fresh on every launch.
type SessionState struct {
	CurrentPage     string                       `json:"currentPage"`
	TimeOnPage      int                          `json:"timeOnPage"` // seconds
	SearchHistory   []string                     `json:"searchHistory"`
	ScrollPositions map[string]int               `json:"scrollPositions"`
	FormData        map[string]map[string]string `json:"formData"`
	OpenModals      []string                     `json:"openModals"`
}

func DefaultSessionState() SessionState {
	return SessionState{
		CurrentPage:     "/",
		ScrollPositions: map[string]int{},
		FormData:        map[string]map[string]string{},
	}
}
