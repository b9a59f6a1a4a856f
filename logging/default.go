package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"strings"
)

// DefaultLogger writes one line per entry through the standard log
// package. Debug and Info go to out; Warn, Error and Fatal go to errOut,
// colored when colors is set.
type DefaultLogger struct {
	out    *log.Logger
	errOut *log.Logger
	level  Level
	fields Fields
	colors bool
}

// NewDefaultLogger logs to stdout and stderr with timestamps. Colors are
// on when stderr is a terminal.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		out:    log.New(os.Stdout, "", log.LstdFlags),
		errOut: log.New(os.Stderr, "", log.LstdFlags),
		level:  InfoLevel,
		fields: make(Fields),
		colors: isTerminal(os.Stderr),
	}
}

// NewWriterLogger sends every level to w without colors or timestamps.
func NewWriterLogger(w io.Writer, level Level) *DefaultLogger {
	l := log.New(w, "", 0)
	return &DefaultLogger{
		out:    l,
		errOut: l,
		level:  level,
		fields: make(Fields),
	}
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// colorize wraps line in the escape codes for level. Debug and Info
// lines are returned unchanged.
func colorize(level Level, line string) string {
	var prefix string
	switch level {
	case WarnLevel:
		prefix = ColorYellow
	case ErrorLevel:
		prefix = ColorRed
	case FatalLevel:
		prefix = ColorBold + ColorRed
	default:
		return line
	}
	return prefix + line + ColorReset
}

// format renders "[LEVEL] msg: err k=v ..." with the logger's fields
// merged under the call's, keys sorted.
func (d *DefaultLogger) format(level Level, err error, msg string, fields ...Fields) string {
	merged := maps.Clone(d.fields)
	if merged == nil {
		merged = make(Fields)
	}
	for _, f := range fields {
		maps.Copy(merged, f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}
	for _, k := range slices.Sorted(maps.Keys(merged)) {
		fmt.Fprintf(&b, " %s=%v", k, merged[k])
	}
	return b.String()
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	if level < d.level {
		return
	}

	line := d.format(level, err, msg, fields...)
	if level < WarnLevel {
		d.out.Println(line)
		return
	}
	if d.colors {
		line = colorize(level, line)
	}
	d.errOut.Println(line)
	if level == FatalLevel {
		os.Exit(1)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.log(FatalLevel, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	child := *d
	child.fields = make(Fields, len(d.fields)+len(fields))
	maps.Copy(child.fields, d.fields)
	maps.Copy(child.fields, fields)
	return &child
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

// NoOpLogger discards everything; SetGlobalLogger(nil) installs it.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) WithContext(ctx context.Context) Logger        { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
