package httpserver

import (
	"context"
	"log/slog"
)

// discardHandler drops every record. Used when no logger is configured so
// hooks never receive a nil *slog.Logger.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

func newNoopLogger() *slog.Logger {
	return slog.New(discardHandler{})
}
