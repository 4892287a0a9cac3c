// Package kitelog wraps the standard logger with a prefix and duration tracking.
package kitelog

import (
	"fmt"
	"io"
	"log"
	"os"
)

var flags = log.LstdFlags | log.Lshortfile | log.Lmicroseconds

// Basic logs process level messages to stderr
var Basic = &Logger{
	Default: log.New(os.Stderr, "[jsmin] ", flags),
}

// New creates a logger writing plain lines to w, each prefixed with prefix
func New(w io.Writer, prefix string) *Logger {
	return &Logger{
		Default: log.New(w, prefix, 0),
	}
}

// Logger encapsulates multiple logging handlers
type Logger struct {
	Default   *log.Logger
	Durations Durations
}

// Interface encapsulates the relevant methods of log.Logger
type Interface interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Printf implements Interface
func (l *Logger) Printf(format string, v ...interface{}) {
	l.Default.Output(2, fmt.Sprintf(format, v...))
}

// Println implements Interface
func (l *Logger) Println(v ...interface{}) {
	l.Default.Output(2, fmt.Sprintln(v...))
}
