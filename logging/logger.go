//Package logging builds the structured logger used by the bankshot tool.
//
//The level is taken from BANKSHOT_LOG_LEVEL (DEBUG, INFO, WARN or ERROR,
//INFO by default) and the output format from BANKSHOT_LOG_FORMAT
//(json or text, text by default).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelVariable  = "BANKSHOT_LOG_LEVEL"
	FormatVariable = "BANKSHOT_LOG_FORMAT"
)

//NewLogger creates the logger which writes to w
func NewLogger(w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: levelFromEnv()}
	var handler slog.Handler
	if formatFromEnv() == "json" {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	return slog.New(handler)
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(LevelVariable)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func formatFromEnv() string {
	if strings.EqualFold(os.Getenv(FormatVariable), "json") {
		return "json"
	}
	return "text"
}

//WrapError adds the context to the error and keeps the error chain.
//A nil error stays nil.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
