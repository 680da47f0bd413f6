package lineart

import (
	"context"
	"log/slog"
	"testing"
)

type recordingHandler struct {
	msgs *[]string
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.msgs = append(*h.msgs, r.Message)
	return nil
}
func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestSetLogger(t *testing.T) {
	var msgs []string
	SetLogger(slog.New(recordingHandler{&msgs}))
	defer SetLogger(nil)

	Shortcut(Polyline{Pt(0, 0), Pt(3, 0), Pt(3, 1), Pt(1, 1), Pt(1, -1)}, DefaultShortcutOptions)
	if len(msgs) != 1 || msgs[0] != "removing loop" {
		t.Errorf("unexpected log messages %q", msgs)
	}

	msgs = nil
	SetLogger(nil)
	Shortcut(Polyline{Pt(0, 0), Pt(3, 0), Pt(3, 1), Pt(1, 1), Pt(1, -1)}, DefaultShortcutOptions)
	if len(msgs) != 0 {
		t.Errorf("default logger must be silent, got %q", msgs)
	}
}
