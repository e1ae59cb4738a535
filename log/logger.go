package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level selects how chatty the tracer is. Scene readers report parse
// timings at Notice, the renderer reports per-block progress at Debug.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levels = [...]struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levels[l].name
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	curLevel       = Notice
)

// Logger is implemented by the named loggers handed out by New.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger whose output is tagged with name, e.g. "renderer" or
// "text scene reader".
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink. Tests use it to capture output;
// the active level carries over.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	SetLevel(curLevel)
	logging.SetBackend(leveledBackend)
}

// SetLevel drops messages below level. Out of range values select Error.
func SetLevel(level Level) {
	if level < Debug || level > Error {
		level = Error
	}
	curLevel = level
	leveledBackend.SetLevel(levels[level].backend, "")
}

// GetLevel returns the active level.
func GetLevel() Level {
	return curLevel
}

// ParseLevel maps a --log-level value to a Level. Matching ignores case
// and surrounding whitespace.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, def := range levels {
		if def.name == name {
			return Level(l), nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

func init() {
	SetSink(os.Stderr)
}
