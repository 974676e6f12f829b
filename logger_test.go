package wrapcheck

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/gogpu/wrapcheck/geom"
)

// captureHandler keeps every record at or above level.
type captureHandler struct {
	level slog.Level

	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

// messages returns the messages logged so far.
func (h *captureHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.records))
	for i, r := range h.records {
		out[i] = r.Message
	}
	return out
}

// attr returns the value of key in the first record with message msg.
func (h *captureHandler) attr(msg, key string) (slog.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.Message != msg {
			continue
		}
		var v slog.Value
		found := false
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				v, found = a.Value, true
				return false
			}
			return true
		})
		return v, found
	}
	return slog.Value{}, false
}

// captureLogs installs a capturing logger for the duration of the test.
func captureLogs(t *testing.T, level slog.Level) *captureHandler {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	h := &captureHandler{level: level}
	SetLogger(slog.New(h))
	return h
}

func contains(msgs []string, msg string) bool {
	for _, m := range msgs {
		if m == msg {
			return true
		}
	}
	return false
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler enabled for %v", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v", err)
	}
	if h.WithAttrs(nil) != (nopHandler{}) || h.WithGroup("g") != (nopHandler{}) {
		t.Error("nopHandler derivatives are not nopHandler")
	}
}

func TestLoggerGeometryDiagnostics(t *testing.T) {
	h := captureLogs(t, slog.LevelDebug)

	cb := New(WithText("Hello"), WithFont(testFont()), WithStyle(testStyle(t)))
	cb.Resize(geom.Sz(400, 20))
	cb.SizeHint()
	cb.Rects()

	msgs := h.messages()
	for _, want := range []string{
		"wrapcheck: polish",
		"wrapcheck: height for width",
		"wrapcheck: size hints",
		"wrapcheck: geometry",
	} {
		if !contains(msgs, want) {
			t.Errorf("missing %q in %q", want, msgs)
		}
	}
	if v, ok := h.attr("wrapcheck: height for width", "height"); !ok || v.Int64() != 20 {
		t.Errorf("height attr = %v (found %v), want 20", v, ok)
	}
}

func TestLoggerToggleAtInfo(t *testing.T) {
	h := captureLogs(t, slog.LevelInfo)

	cb := New(WithText("Hello"), WithFont(testFont()), WithStyle(testStyle(t)))
	cb.Resize(geom.Sz(400, 20))
	cb.Click()

	msgs := h.messages()
	if len(msgs) != 1 || msgs[0] != "wrapcheck: toggled" {
		t.Fatalf("info records = %q, want only the toggle", msgs)
	}
	if v, _ := h.attr("wrapcheck: toggled", "to"); v.String() != "Checked" {
		t.Errorf("to = %v, want Checked", v)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) stored nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
