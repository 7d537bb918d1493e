package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var once sync.Once

func init() {
	once.Do(func() {
		level, err := parseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			panic(err)
		}

		out := io.Writer(os.Stderr)
		if level == slog.LevelDebug {
			out = os.Stdout
		}

		slog.SetDefault(slog.New(newLogHandler(out, level, getModulePrefix())))
		slog.Debug("debug logging enabled")
	})
}

// parseLevel reads LOG_LEVEL; empty means info.
func parseLevel(s string) (slog.Level, error) {
	level := slog.LevelInfo
	if s == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level: %s", s)
	}
	return level, nil
}

// newLogHandler returns a colourised tint handler with source locations at
// debug level and a JSON handler otherwise.
func newLogHandler(w io.Writer, level slog.Level, modulePrefix string) slog.Handler {
	if level > slog.LevelDebug {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.TimeOnly,
		ReplaceAttr: debugReplacer(modulePrefix),
		AddSource:   true,
	})
}

func debugReplacer(modulePrefix string) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok {
				source.File = cleanSourcePath(source.File, modulePrefix)
			}
		}
		if err, ok := a.Value.Any().(error); ok {
			aErr := tint.Err(err)
			aErr.Key = a.Key
			return aErr
		}
		return a
	}
}

// getModulePrefix returns "/<last module path element>/" from the build info,
// e.g. "github.com/loganlanou/clubhub" -> "/clubhub/".
func getModulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		if wd, err := os.Getwd(); err == nil {
			return "/" + filepath.Base(wd) + "/"
		}
		return "/clubhub/"
	}

	parts := strings.Split(info.Main.Path, "/")
	return "/" + parts[len(parts)-1] + "/"
}

// cleanSourcePath trims everything up to and including the module directory.
func cleanSourcePath(filePath, modulePrefix string) string {
	if _, rest, ok := strings.Cut(filePath, modulePrefix); ok {
		return rest
	}

	if idx := strings.LastIndex(filePath, "/go/src/"); idx != -1 {
		return filePath[idx+len("/go/src/"):]
	}
	if idx := strings.LastIndex(filePath, "/src/"); idx != -1 {
		return filePath[idx+len("/src/"):]
	}
	return filePath
}
