package adminclient

import (
	"fmt"
	"io"
	"sync"
)

// Severity of a transient notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a fire-and-forget status message. It never blocks the
// caller and carries no delivery guarantee.
type Notification struct {
	Severity Severity
	Title    string
	Message  string
}

type Notifier interface {
	Notify(n Notification)
}

// SlotNotifier keeps only the latest notification: a new one replaces
// whatever is currently held, matching the single-toast behavior of the
// admin pages.
type SlotNotifier struct {
	mu      sync.Mutex
	current *Notification
}

func NewSlotNotifier() *SlotNotifier {
	return &SlotNotifier{}
}

func (s *SlotNotifier) Notify(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &n
}

// Current returns the held notification, or false when none was shown yet.
func (s *SlotNotifier) Current() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// Clear drops the held notification.
func (s *SlotNotifier) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// WriterNotifier prints notifications to a writer, one line each.
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

func (w *WriterNotifier) Notify(n Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "[%s] %s: %s\n", n.Severity, n.Title, n.Message)
}
