// Package logx provides a small levelled logger. Messages carry a
// section name naming the stage that produced them.
package logx

import (
	"fmt"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	NOTICE
	WARN
	ERROR
	CRITICAL
	LevelCount
)

var levelNames = [LevelCount]string{
	DEBUG:    "DEBUG",
	INFO:     "INFO",
	NOTICE:   "NOTICE",
	WARN:     "WARNING",
	ERROR:    "ERROR",
	CRITICAL: "CRITICAL",
}

func (l Level) String() string {
	if l < 0 || l >= LevelCount {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts a level name, case-insensitively. "warn" is
// accepted as well as "warning".
func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "WARN" {
		return WARN, nil
	}
	for i, n := range levelNames {
		if n == s {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// LoggerX is implemented by log sinks shared between sections.
type LoggerX interface {
	LogPrintX(section string, lvl Level, v ...interface{})
	LogPrintfX(section string, lvl Level, fmt string, v ...interface{})
	Level() Level
}

// Logger is a LoggerX bound to one section.
type Logger interface {
	LogPrint(lvl Level, v ...interface{})
	LogPrintf(lvl Level, fmt string, v ...interface{})
}

type LogToX struct {
	section string
	logx    LoggerX
}

func (l LogToX) LogPrint(lvl Level, v ...interface{}) { l.logx.LogPrintX(l.section, lvl, v...) }
func (l LogToX) LogPrintf(lvl Level, fmt string, v ...interface{}) {
	l.logx.LogPrintfX(l.section, lvl, fmt, v...)
}

// NewLogToX binds logx to section.
func NewLogToX(logx LoggerX, section string) LogToX { return LogToX{section: section, logx: logx} }

var _ Logger = LogToX{}

type nopLogger struct{}

func (nopLogger) LogPrintX(string, Level, ...interface{})          {}
func (nopLogger) LogPrintfX(string, Level, string, ...interface{}) {}
func (nopLogger) Level() Level                                     { return LevelCount }

// Nop discards everything.
var Nop LoggerX = nopLogger{}
