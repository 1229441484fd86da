package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how a Logger formats and where it writes.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// Pretty selects zerolog's human-readable console writer instead of
	// raw JSON lines, useful for the CLI's interactive output.
	Pretty bool
	Output io.Writer
}

// Logger wraps a zerolog.Logger, adding the attempt/step/seed fields this
// module's callers attach on nearly every log line.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from cfg, defaulting to info level and os.Stderr.
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// WithAttempt returns a Logger that tags every subsequent line with the
// given attempt number, so concurrent attempts' logs can be told apart.
func (l *Logger) WithAttempt(attempt int) *Logger {
	return &Logger{zl: l.zl.With().Int("attempt", attempt).Logger()}
}

// WithSeed returns a Logger tagging every line with the numeric seed.
func (l *Logger) WithSeed(seed uint64) *Logger {
	return &Logger{zl: l.zl.With().Uint64("seed", seed).Logger()}
}

// WithStep returns a Logger tagging every line with the placement step
// number.
func (l *Logger) WithStep(step int) *Logger {
	return &Logger{zl: l.zl.With().Int("step", step).Logger()}
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(zerolog.DebugLevel, msg, fields) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.log(zerolog.InfoLevel, msg, fields) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.log(zerolog.WarnLevel, msg, fields) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(zerolog.ErrorLevel, msg, fields) }

// log writes one event, treating fields as alternating key/value pairs the
// same way the reference reporting package's convenience loggers do.
func (l *Logger) log(level zerolog.Level, msg string, fields []interface{}) {
	event := l.zl.WithLevel(level)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}

var defaultLogger = New(Config{Level: "info"})

// InitGlobalLogger replaces the package-level default logger, for a CLI's
// main() to call once after parsing flags.
func InitGlobalLogger(cfg Config) {
	defaultLogger = New(cfg)
}

func Debug(msg string, fields ...interface{}) { defaultLogger.Debug(msg, fields...) }
func Info(msg string, fields ...interface{})  { defaultLogger.Info(msg, fields...) }
func Warn(msg string, fields ...interface{})  { defaultLogger.Warn(msg, fields...) }
func Error(msg string, fields ...interface{}) { defaultLogger.Error(msg, fields...) }
