// Package logger provides levelled diagnostic logging for cairn.
//
// Listings go to stdout; diagnostics (unreadable directories, hide patterns
// that matched nothing, search progress) go through a Logger to stderr so
// they never disturb the rendered output.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders diagnostics by severity
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

var levelColours = [...]color.Attribute{color.FgHiBlack, color.FgCyan, color.FgBlue, color.FgYellow, color.FgRed}

func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel reads a level name in any case, ignoring surrounding blanks
func ParseLevel(name string) (Level, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for l, n := range levelNames {
		if n == name {
			return Level(l), true
		}
	}
	return LevelInfo, false
}

// ValidLevel reports whether name is trace, debug, info, warn or error
func ValidLevel(name string) bool {
	_, ok := ParseLevel(name)
	return ok
}

// Logger is the diagnostic sink the listing code writes to
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines at or above a
// minimum level. Level labels are coloured when the writer is a terminal.
type ConsoleLogger struct {
	writer io.Writer
	min    Level
	labels [len(levelNames)]string
	now    func() time.Time
	mutex  sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger for writer; a nil writer discards
// everything. An unknown level falls back to info.
func NewConsoleLogger(writer io.Writer, level string) *ConsoleLogger {
	minimum, _ := ParseLevel(level)
	cl := &ConsoleLogger{writer: writer, min: minimum, now: time.Now}
	colour := isTerminal(writer)
	for l, name := range levelNames {
		cl.labels[l] = name
		if colour {
			cl.labels[l] = color.New(levelColours[l]).Sprint(name)
		}
	}
	return cl
}

// isTerminal is true for stdout and stderr unless NO_COLOR is set or the
// stream is not a TTY
func isTerminal(w io.Writer) bool {
	if w != os.Stdout && w != os.Stderr {
		return false
	}
	return !color.NoColor
}

func (cl *ConsoleLogger) LogTrace(message string) { cl.log(LevelTrace, message) }
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(LevelDebug, message) }
func (cl *ConsoleLogger) LogInfo(message string)  { cl.log(LevelInfo, message) }
func (cl *ConsoleLogger) LogWarn(message string)  { cl.log(LevelWarn, message) }
func (cl *ConsoleLogger) LogError(message string) { cl.log(LevelError, message) }

func (cl *ConsoleLogger) log(level Level, message string) {
	if cl.writer == nil || level < cl.min {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", cl.now().Format("15:04:05"), cl.labels[level], message)
}

// NoOpLogger discards every message
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogError(message string) {}
