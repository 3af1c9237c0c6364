package domain

import "time"

// DebounceDelay is how long keystroke input must pause before a search runs.
// The search bar restarts this window on every keystroke, so only the last
// quiet query is executed.
const DebounceDelay = 300 * time.Millisecond
