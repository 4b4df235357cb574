package logx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

type levelTags [LevelCount]string

var levelstrings = [2]levelTags{
	// uncolored
	{
		DEBUG:    "   DEBUG",
		INFO:     "    INFO",
		NOTICE:   "  NOTICE",
		WARN:     " WARNING",
		ERROR:    "   ERROR",
		CRITICAL: "CRITICAL",
	},
	// colored
	{
		DEBUG:    "\033[37m   DEBUG\033[0m",
		INFO:     "\033[34m    INFO\033[0m",
		NOTICE:   "\033[32m  NOTICE\033[0m",
		WARN:     "\033[33m WARNING\033[0m",
		ERROR:    "\033[31m   ERROR\033[0m",
		CRITICAL: "\033[35mCRITICAL\033[0m",
	},
}

var formatstrings = [2]string{
	// uncolored
	"%s %s [%s] ",
	// colored
	"%s %s [\033[36m%s\033[0m] ",
}

var _ LoggerX = (*TermLogger)(nil)

// TermLogger writes one line per message. Level tags are coloured when
// the destination is a terminal.
type TermLogger struct {
	w   io.Writer
	l   sync.Mutex
	m   Level
	t   int
	buf bytes.Buffer
	now func() time.Time
}

// NewTermLogger logs to f. With ColorAuto colours are used only when f
// is a terminal; ColorOff never colours.
func NewTermLogger(f *os.File, logLevel Level, c ColorMode) *TermLogger {
	l := &TermLogger{w: f, m: logLevel, now: time.Now}
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if c == ColorOn || (c == ColorAuto && tty) {
		l.w = colorable.NewColorable(f)
		l.t = 1
	}
	return l
}

// NewWriterLogger logs uncoloured lines to w.
func NewWriterLogger(w io.Writer, logLevel Level) *TermLogger {
	return &TermLogger{w: w, m: logLevel, now: time.Now}
}

func (l *TermLogger) Level() Level {
	return l.m
}

func (l *TermLogger) prepareWrite(section string, lvl Level) {
	l.buf.Reset()
	fmt.Fprintf(&l.buf, formatstrings[l.t],
		l.now().Format("15:04:05.000"), levelstrings[l.t][lvl], section)
}

func (l *TermLogger) finish() {
	if b := l.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		l.buf.WriteByte('\n')
	}
	// a failing log sink has nowhere to report to
	_, _ = l.w.Write(l.buf.Bytes())
}

func (l *TermLogger) LogPrintX(section string, lvl Level, v ...interface{}) {
	if l.m > lvl {
		return
	}

	l.l.Lock()
	defer l.l.Unlock()

	l.prepareWrite(section, lvl)
	fmt.Fprint(&l.buf, v...)
	l.finish()
}

func (l *TermLogger) LogPrintfX(section string, lvl Level, fmts string, v ...interface{}) {
	if l.m > lvl {
		return
	}

	l.l.Lock()
	defer l.l.Unlock()

	l.prepareWrite(section, lvl)
	fmt.Fprintf(&l.buf, fmts, v...)
	l.finish()
}
