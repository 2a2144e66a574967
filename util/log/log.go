// Package log is a small two-level logger. Info output is always
// emitted; Debug output is emitted only when the level is raised. Write
// errors are latched rather than returned so call sites stay terse; the
// last outcome is available from Err.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logging levels. InfoLevel emits Info* only; DebugLevel emits
// everything.
const (
	InfoLevel = iota
	DebugLevel
)

// DebugPrefix is prepended to every Debug* message, after the logger's
// own prefix.
const DebugPrefix = "DEBUG: "

// ErrOutputDiscardedByLevel is latched when a Debug* call is dropped
// because the level is InfoLevel.
var ErrOutputDiscardedByLevel = errors.New("log output discarded by log level")

// Logger wraps the standard library logger with a level gate and a
// latched write error.
type Logger struct {
	logger *log.Logger

	mu      sync.Mutex
	level   int
	lastErr error
}

// New returns a logger writing to out at InfoLevel.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{logger: log.New(out, prefix, flag)}
}

func (l *Logger) emitInfo(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = l.logger.Output(calldepth, msg)
}

func (l *Logger) Info(v ...interface{})                 { l.emitInfo(3, fmt.Sprint(v...)) }
func (l *Logger) Infoln(v ...interface{})               { l.emitInfo(3, fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) { l.emitInfo(3, fmt.Sprintf(format, v...)) }

func (l *Logger) emitDebug(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < DebugLevel {
		l.lastErr = ErrOutputDiscardedByLevel
		return
	}
	l.lastErr = l.logger.Output(calldepth, DebugPrefix+msg)
}

func (l *Logger) Debug(v ...interface{})   { l.emitDebug(3, fmt.Sprint(v...)) }
func (l *Logger) Debugln(v ...interface{}) { l.emitDebug(3, fmt.Sprintln(v...)) }
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.emitDebug(3, fmt.Sprintf(format, v...))
}

func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *Logger) SetLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) SetPrefix(prefix string) {
	l.logger.SetPrefix(prefix)
}

func (l *Logger) Prefix() string {
	return l.logger.Prefix()
}

// Err returns the outcome of the most recent output call: nil on
// success, the write error on failure, or ErrOutputDiscardedByLevel
// when the call was dropped by the level gate. Each call overwrites the
// previous outcome.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Flag constants forwarded from the standard library logger.
const (
	Ldate         = log.Ldate
	Ltime         = log.Ltime
	Lmicroseconds = log.Lmicroseconds
	Lshortfile    = log.Lshortfile
	LUTC          = log.LUTC
	LstdFlags     = log.LstdFlags
)

var std = New(os.Stderr, "", LstdFlags)

func Info(v ...interface{})                 { std.emitInfo(3, fmt.Sprint(v...)) }
func Infoln(v ...interface{})               { std.emitInfo(3, fmt.Sprintln(v...)) }
func Infof(format string, v ...interface{}) { std.emitInfo(3, fmt.Sprintf(format, v...)) }

func Debug(v ...interface{})                 { std.emitDebug(3, fmt.Sprint(v...)) }
func Debugln(v ...interface{})               { std.emitDebug(3, fmt.Sprintln(v...)) }
func Debugf(format string, v ...interface{}) { std.emitDebug(3, fmt.Sprintf(format, v...)) }

func SetOutput(w io.Writer) { std.SetOutput(w) }
func SetLevel(level int)    { std.SetLevel(level) }
func Level() int            { return std.Level() }
func SetPrefix(p string)    { std.SetPrefix(p) }
func Prefix() string        { return std.Prefix() }
func Err() error            { return std.Err() }
