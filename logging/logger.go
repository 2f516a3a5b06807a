package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LogBuild struct {
	writer io.Writer
	level  string
	pretty bool
}

func New() *LogBuild {
	return &LogBuild{writer: os.Stdout, level: zerolog.LevelInfoValue}
}

func (build *LogBuild) FromWriter(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) Level(level string) *LogBuild {
	build.level = level
	return build
}

// Pretty switches to the human readable console writer.
func (build *LogBuild) Pretty(pretty bool) *LogBuild {
	build.pretty = pretty
	return build
}

// Make returns the root logger. An unknown level falls back to info.
func (build *LogBuild) Make() zerolog.Logger {
	level, err := zerolog.ParseLevel(build.level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	w := build.writer
	if build.pretty {
		w = zerolog.ConsoleWriter{Out: build.writer, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "jobs-service").Logger()
}
