package layout

import (
	"context"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// layoutLogLevel controls the log level for layout debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var layoutLogLevel = new(slog.LevelVar)

// logHandler renders records in the charm log format on stderr.
var logHandler = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	Prefix: "layout",
	Level:  charmlog.DebugLevel,
})

// layoutLogger is the logger shared by groups, the frame driver and the list view.
var layoutLogger = slog.New(levelHandler{level: layoutLogLevel, Handler: logHandler})

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		layoutLogLevel.Set(slog.LevelDebug)
	} else {
		layoutLogLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return layoutLogLevel.Level() <= slog.LevelDebug
}

// levelHandler gates a handler behind a LevelVar so SetVerbose takes effect
// without rebuilding the charm logger.
type levelHandler struct {
	level *slog.LevelVar
	slog.Handler
}

func (h levelHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.level.Level() && h.Handler.Enabled(ctx, l)
}

func (h levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelHandler{level: h.level, Handler: h.Handler.WithAttrs(attrs)}
}

func (h levelHandler) WithGroup(name string) slog.Handler {
	return levelHandler{level: h.level, Handler: h.Handler.WithGroup(name)}
}
