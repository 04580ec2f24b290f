// Package logging provides tests for loggers and session log files.
package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{" error ", log.ErrorLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"bogus", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Errorf("ParseLevel(%q): got %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   log.Formatter
	}{
		{"json", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"text", log.TextFormatter},
		{"", log.TextFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := ParseFormatter(tt.format); got != tt.want {
				t.Errorf("ParseFormatter(%q): got %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, OptionsFromConfig("warn", "logfmt", false, false))

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("expected warn message with field, got %q", out)
	}
	if !strings.Contains(out, DefaultPrefix) {
		t.Errorf("expected prefix %q in %q", DefaultPrefix, out)
	}
}

func TestOpenSessionLog(t *testing.T) {
	t.Run("creates file", func(t *testing.T) {
		baseDir := t.TempDir()
		workDir := t.TempDir()

		session, err := OpenSessionLog(baseDir, workDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer session.Close()

		if session.SessionID == "" {
			t.Error("expected SessionID to be set")
		}
		if !strings.HasPrefix(session.LogPath, baseDir) {
			t.Errorf("LogPath %q not under %q", session.LogPath, baseDir)
		}
		if _, err := os.Stat(session.LogPath); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := OpenSessionLog("", t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Fatalf("expected empty dir error, got %v", err)
		}
	})

	t.Run("writer receives log lines", func(t *testing.T) {
		session, err := OpenSessionLog(t.TempDir(), t.TempDir())
		if err != nil {
			t.Fatalf("OpenSessionLog: %v", err)
		}
		logger := New(session.Writer(), OptionsFromConfig("debug", "text", false, false))
		logger.Debug("task added", "id", "T1")
		if err := session.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		data, err := os.ReadFile(session.LogPath)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(data), "task added") {
			t.Errorf("log file missing message: %q", data)
		}
	})

	t.Run("nil session is safe", func(t *testing.T) {
		var session *SessionLog
		if err := session.Close(); err != nil {
			t.Errorf("Close on nil: %v", err)
		}
		if session.Writer() == nil {
			t.Error("Writer on nil should not be nil")
		}
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"my-project", "my-project"},
		{"My Project!", "My_Project"},
		{"a  b", "a_b"},
		{"", "project"},
		{"!!!", "project"},
	}
	for _, tt := range tests {
		if got := slugify(tt.input); got != tt.want {
			t.Errorf("slugify(%q): got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHashPath(t *testing.T) {
	a := hashPath("/a")
	if len(a) != 8 {
		t.Errorf("hash length: got %d, want 8", len(a))
	}
	if a != hashPath("/a") {
		t.Error("hash should be stable")
	}
	if a == hashPath("/b") {
		t.Error("different paths should hash differently")
	}
}

func TestResolveBaseDir(t *testing.T) {
	workDir := t.TempDir()
	if got := resolveBaseDir("logs", workDir); got != filepath.Join(workDir, "logs") {
		t.Errorf("relative: got %q", got)
	}
	abs := filepath.Join(workDir, "abs")
	if got := resolveBaseDir(abs, "/elsewhere"); got != abs {
		t.Errorf("absolute: got %q, want %q", got, abs)
	}
}

func TestFindLatestLog(t *testing.T) {
	dir := t.TempDir()

	got, err := FindLatestLog(filepath.Join(dir, "missing"))
	if err != nil || got != "" {
		t.Fatalf("missing dir: got %q, %v", got, err)
	}

	older := filepath.Join(dir, "old.log")
	newer := filepath.Join(dir, "new.log")
	other := filepath.Join(dir, "note.txt")
	for _, p := range []string{older, newer, other} {
		if err := os.WriteFile(p, []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(other, future, future); err != nil {
		t.Fatal(err)
	}

	got, err = FindLatestLog(dir)
	if err != nil {
		t.Fatalf("FindLatestLog: %v", err)
	}
	if got != newer {
		t.Errorf("got %q, want %q", got, newer)
	}
}

func TestTailLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"all lines", 0, "one\ntwo\nthree\n"},
		{"last line", 1, "three\n"},
		{"last two", 2, "two\nthree\n"},
		{"more than available", 10, "one\ntwo\nthree\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := TailLog(context.Background(), &buf, path, tt.n, false); err != nil {
				t.Fatalf("TailLog: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}

	t.Run("follow stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var buf bytes.Buffer
		if err := TailLog(ctx, &buf, path, 1, true); err != nil {
			t.Fatalf("TailLog: %v", err)
		}
		if buf.String() != "three\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		if err := TailLog(context.Background(), &buf, filepath.Join(t.TempDir(), "nope"), 0, false); err == nil {
			t.Fatal("expected error")
		}
	})
}
