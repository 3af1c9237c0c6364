package out

// Notifier is the side-channel for user-facing state notifications,
// achievement unlocks included. Implementations must be safe to call from
// the service goroutine.
type Notifier interface {
	Success(title, detail string)
	Error(title, detail string)
	Info(title, detail string)
}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Success(string, string) {}
func (NopNotifier) Error(string, string)   {}
func (NopNotifier) Info(string, string)    {}
