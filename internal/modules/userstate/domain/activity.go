package domain

// EventKind enumerates the activity events the tracker understands.
// Anything else is silently ignored.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventResourceDownloaded
	EventTestCompleted
	EventBookmarkAdded
	EventPageViewed
)

type Event struct {
	Kind       EventKind
	ResourceID string // EventBookmarkAdded
	PageURL    string // EventPageViewed
}
