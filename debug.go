package bringup

import (
	"context"

	"log/slog"
)

// levelTrace prints below slog.LevelDebug and carries per-byte wire
// chatter. Raise the handler level above it unless you want every
// transmitted byte in the log.
const levelTrace = slog.LevelDebug - 1

func logAttrs(l *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if l == nil {
		return
	}
	l.LogAttrs(context.Background(), level, msg, attrs...)
}

func (u *UARTbb) debug(msg string, attrs ...slog.Attr) {
	logAttrs(u.logger, slog.LevelDebug, msg, attrs...)
}

func (u *UARTbb) trace(msg string, attrs ...slog.Attr) {
	logAttrs(u.logger, levelTrace, msg, attrs...)
}

func (w *Watchdog) warn(msg string, attrs ...slog.Attr) {
	logAttrs(w.logger, slog.LevelWarn, msg, attrs...)
}
