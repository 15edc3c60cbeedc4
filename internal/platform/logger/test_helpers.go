package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// Entry is one decoded JSON log record.
type Entry map[string]any

// TestLogBuffer collects log output from concurrent writers, such as the
// workers of a batch run.
type TestLogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *TestLogBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// Entries decodes every non-blank line written so far.
func (b *TestLogBuffer) Entries() ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(strings.NewReader(b.String()))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(text), &e); err != nil {
			return nil, fmt.Errorf("log line %d is not JSON: %w", line, err)
		}
		entries = append(entries, e)
	}

	return entries, sc.Err()
}

// GetTestLogger returns a debug-level JSON logger and the buffer it writes to.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()

	buf := &TestLogBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// AssertLogContains fails the test unless content appears in the raw output.
func AssertLogContains(t *testing.T, buf *TestLogBuffer, content string) {
	t.Helper()

	if out := buf.String(); !strings.Contains(out, content) {
		t.Errorf("log output does not contain %q:\n%s", content, out)
	}
}

// AssertLogField fails the test unless some entry has field == want.
// Numbers decode as float64.
func AssertLogField(t *testing.T, buf *TestLogBuffer, field string, want any) {
	t.Helper()

	entries, err := buf.Entries()
	if err != nil {
		t.Fatalf("decode log output: %v", err)
	}

	for _, e := range entries {
		if got, ok := e[field]; ok && got == want {
			return
		}
	}

	t.Errorf("no log entry among %d has %s=%v", len(entries), field, want)
}
