package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/Slach/chartfmt/pkg/types"
)

const mainPackage = "github.com/Slach/chartfmt/"

// prettyWriter turns zerolog JSON events into one readable line per event.
// String fields containing newlines are written as an indented block.
type prettyWriter struct {
	Out io.Writer
}

var headerFields = map[string]bool{"time": true, "level": true, "message": true, "caller": true}

func (w *prettyWriter) Write(p []byte) (int, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(p), &m); err != nil {
		return w.Out.Write(p)
	}

	var ts, level, message, caller string
	_ = json.Unmarshal(m["time"], &ts)
	_ = json.Unmarshal(m["level"], &level)
	_ = json.Unmarshal(m["message"], &message)
	_ = json.Unmarshal(m["caller"], &caller)

	keys := make([]string, 0, len(m))
	for k := range m {
		if !headerFields[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var out strings.Builder
	for _, part := range []string{ts, strings.ToUpper(level)} {
		if part != "" {
			out.WriteString(part)
			out.WriteString(" ")
		}
	}
	if caller != "" {
		out.WriteString(caller)
		out.WriteString(" > ")
	}
	out.WriteString(message)

	for _, k := range keys {
		out.WriteString(" ")
		out.WriteString(k)
		out.WriteString("=")
		var s string
		if err := json.Unmarshal(m[k], &s); err == nil {
			s = strings.TrimSuffix(s, "\n")
			if strings.Contains(s, "\n") {
				out.WriteString("\n")
				out.WriteString(s)
				out.WriteString("\n")
				continue
			}
			out.WriteString(s)
			continue
		}
		var v interface{}
		if err := json.Unmarshal(m[k], &v); err == nil {
			out.WriteString(fmt.Sprint(v))
			continue
		}
		out.Write(m[k])
	}
	out.WriteString("\n")

	if _, err := io.WriteString(w.Out, out.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}

func InitConsoleStdErrLog() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return strings.TrimPrefix(file, mainPackage) + ":" + strconv.Itoa(line)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Caller().
		Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLevel parses a zerolog level name; an empty name means info.
func SetLevel(level string) error {
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// fatalStackHook adds stack traces to Fatal level logs
type fatalStackHook struct{}

func (h fatalStackHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.FatalLevel {
		e.Stack()
	}
}

// InitLogFile sends the global logger to cli.LogPath, by default
// ~/.chartfmt/chartfmt.log.
func InitLogFile(cli *types.CLI, version string) error {
	logPath := ""
	if cli != nil {
		logPath = cli.LogPath
	}
	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		logPath = filepath.Join(home, ".chartfmt", "chartfmt.log")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}

	log.Logger = newFileLogger(logFile, version)
	return nil
}

func newFileLogger(w io.Writer, version string) zerolog.Logger {
	return zerolog.New(zerolog.SyncWriter(&prettyWriter{Out: w})).
		With().
		Timestamp().
		Caller().
		Str("version", version).
		Logger().
		Hook(fatalStackHook{})
}
