// Package logger sets up the process zerolog logger and carries run fields on ctx
package logger

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"filmnames/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

type Options struct {
	Level     string
	Format    string // console or json
	Service   string
	Component string
	Writer    io.Writer // stderr when nil; stdout is reserved for tool output
	NoColor   bool
	// WithCaller adds caller and go_version fields
	WithCaller   bool
	StaticFields map[string]string
}

// FromEnv reads LOG_* through raw, which does not log
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:      env.Get("LEVEL", "info"),
		Format:     strings.ToLower(env.Get("FORMAT", "console")),
		Service:    env.Get("SERVICE", ""),
		Component:  env.Get("COMPONENT", ""),
		NoColor:    env.GetBool("NO_COLOR", false),
		WithCaller: env.GetBool("CALLER", false),
	}
}

var (
	mu   sync.Mutex
	root *Logger
)

// Init builds the root logger. Only the first call has effect
func Init(opt Options) {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		l := build(opt)
		root = &l
	}
}

// Get returns the root logger, initializing it from the env on first use
func Get() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		l := build(FromEnv())
		root = &l
	}
	return root
}

// Named is Get with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

func build(opt Options) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opt.Writer
	if out == nil {
		out = os.Stderr
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: opt.NoColor}
	}

	fields := map[string]any{}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}
	if opt.Service != "" {
		fields["service"] = opt.Service
	}
	if opt.Component != "" {
		fields["component"] = opt.Component
	}
	if opt.WithCaller {
		fields["go_version"] = goVersion()
	}

	c := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp().Fields(fields)
	if opt.WithCaller {
		c = c.Caller()
	}
	return c.Logger()
}

// parseLevel is zerolog.ParseLevel plus the warning/off aliases; unknown is info
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "warning":
		s = "warn"
	case "off":
		s = "disabled"
	case "":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func goVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi.GoVersion
	}
	return "unknown"
}
