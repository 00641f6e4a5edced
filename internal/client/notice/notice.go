// Package notice is the transient user-facing notification surface. Notifiers
// are fire-and-forget: nothing reads a notice back.
package notice

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

// Level tells the surface how to present a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a short title plus a human-readable description.
type Notice struct {
	Title       string
	Description string
	Level       Level
}

// Notifier shows a notice to the user.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Notifier = NotifierFunc(func(Notice) {})

// OrDiscard returns n, or Discard when n is nil.
func OrDiscard(n Notifier) Notifier {
	if n == nil {
		return Discard
	}
	return n
}

// Recorder keeps every notice in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of what was recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Terminal writes notices as single colored lines.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	colors bool
}

// NewTerminal creates a Terminal writing to w. Colors are applied only when
// colors is true.
func NewTerminal(w io.Writer, colors bool) *Terminal {
	return &Terminal{w: w, colors: colors}
}

func (t *Terminal) Notify(n Notice) {
	title := n.Title
	if t.colors {
		title = styleFor(n.Level).Render(title)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if n.Description == "" {
		fmt.Fprintln(t.w, title)
		return
	}
	fmt.Fprintf(t.w, "%s: %s\n", title, n.Description)
}

func styleFor(l Level) color.Style {
	switch l {
	case LevelSuccess:
		return color.New(color.FgGreen, color.OpBold)
	case LevelError:
		return color.New(color.FgRed, color.OpBold)
	default:
		return color.New(color.FgCyan)
	}
}
