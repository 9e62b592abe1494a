package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logger settings.
type Config struct {
	Level    string   `yaml:"level"`
	Filename string   `yaml:"filename"`
	MaxSize  int      `yaml:"max_log_size"`
	Targets  []string `yaml:"targets"`
}

type logger struct {
	z zerolog.Logger
}

var global = newLogger(&Config{Level: "info", Targets: []string{"console"}})

// InitGlobalLogger replaces the global logger with one built from cfg.
func InitGlobalLogger(cfg *Config) {
	global = newLogger(cfg)
}

func newLogger(cfg *Config) *logger {
	var writers []io.Writer

	for _, target := range cfg.Targets {
		switch target {
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename: cfg.Filename,
				MaxSize:  cfg.MaxSize,
			})
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	z := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()

	return &logger{z: z}
}

func withFields(e *zerolog.Event, keyvals ...any) *zerolog.Event {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		e = e.Interface(key, keyvals[i+1])
	}

	return e
}

func Debug(msg string, keyvals ...any) {
	withFields(global.z.Debug(), keyvals...).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	withFields(global.z.Info(), keyvals...).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	withFields(global.z.Warn(), keyvals...).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	withFields(global.z.Error(), keyvals...).Msg(msg)
}
