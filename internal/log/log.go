// Package log writes leveled, categorized lines to a debug file. Nothing is
// logged until one of the Init functions runs, which keeps the terminal
// free for the widget.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Category tags the subsystem a line came from.
type Category string

const (
	CatConfig  Category = "config"
	CatLookup  Category = "lookup" // registry calls and search orchestration
	CatCache   Category = "cache"
	CatUI      Category = "ui"
	CatWatcher Category = "watcher"
	CatTrace   Category = "trace"
)

const timeLayout = "2006-01-02T15:04:05"

type sink struct {
	mu       sync.Mutex
	w        io.Writer
	muted    bool
	minLevel Level
}

var (
	current   *sink
	currentMu sync.RWMutex
)

func install(w io.Writer) {
	currentMu.Lock()
	current = &sink{w: w, minLevel: LevelDebug}
	currentMu.Unlock()
}

func active() *sink {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Init appends log lines to the file at path. The returned func closes it.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // G304: debug log path comes from the user
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	install(f)
	return func() { _ = f.Close() }, nil
}

// InitWithTeaLog opens path through tea.LogToFile so the standard library
// logger used by Bubble Tea lands in the same file.
func InitWithTeaLog(path, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	install(f)
	return func() { _ = f.Close() }, nil
}

// InitWriter logs to w.
func InitWriter(w io.Writer) {
	install(w)
}

// Reset turns logging off.
func Reset() {
	currentMu.Lock()
	current = nil
	currentMu.Unlock()
}

// SetEnabled mutes or unmutes the active logger.
func SetEnabled(enabled bool) {
	if s := active(); s != nil {
		s.mu.Lock()
		s.muted = !enabled
		s.mu.Unlock()
	}
}

// SetMinLevel drops lines below level.
func SetMinLevel(level Level) {
	if s := active(); s != nil {
		s.mu.Lock()
		s.minLevel = level
		s.mu.Unlock()
	}
}

func Debug(cat Category, msg string, kv ...any) { write(LevelDebug, cat, msg, kv) }
func Info(cat Category, msg string, kv ...any)  { write(LevelInfo, cat, msg, kv) }
func Warn(cat Category, msg string, kv ...any)  { write(LevelWarn, cat, msg, kv) }
func Error(cat Category, msg string, kv ...any) { write(LevelError, cat, msg, kv) }

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, kv ...any) {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	write(LevelError, cat, msg, append(kv, "error", text))
}

// format renders one line:
//
//	2025-12-06T10:45:00 [ERROR] [lookup] message key=value key2=value2
func format(now time.Time, level Level, cat Category, msg string, kv []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", now.Format(timeLayout), level, cat, msg)
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			fmt.Fprintf(&b, " %v=<missing>", kv[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	b.WriteByte('\n')
	return b.String()
}

func write(level Level, cat Category, msg string, kv []any) {
	s := active()
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted || level < s.minLevel || s.w == nil {
		return
	}
	_, _ = io.WriteString(s.w, format(time.Now(), level, cat, msg, kv))
}
