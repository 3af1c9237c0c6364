package out

import (
	"fmt"
	"io"
)

// WriterNotifier prints notifications as plain lines, for CLI runs where
// no TUI is on screen.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) WriterNotifier {
	return WriterNotifier{w: w}
}

func (n WriterNotifier) Success(title, detail string) {
	n.print("ok", title, detail)
}

func (n WriterNotifier) Error(title, detail string) {
	n.print("error", title, detail)
}

func (n WriterNotifier) Info(title, detail string) {
	n.print("info", title, detail)
}

func (n WriterNotifier) print(level, title, detail string) {
	if detail == "" {
		fmt.Fprintf(n.w, "[%s] %s\n", level, title)
		return
	}
	fmt.Fprintf(n.w, "[%s] %s: %s\n", level, title, detail)
}
