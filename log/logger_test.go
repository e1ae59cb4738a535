package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	SetLevel(Notice)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Debugf("hidden %d", 1)
	logger.Noticef("visible %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Fatalf("expected debug message to be filtered out; got %q", out)
	}
	if !strings.Contains(out, "visible 2") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected notice message tagged with the module name; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("expected debug message after raising verbosity; got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	type spec struct {
		in       string
		exp      Level
		expError string
	}
	specs := []spec{
		{"debug", Debug, ""},
		{" INFO ", Info, ""},
		{"Warning", Warning, ""},
		{"error", Error, ""},
		{"chatty", Notice, `log: unknown level "chatty"`},
	}

	for idx, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expError != "" {
			if err == nil || err.Error() != s.expError {
				t.Fatalf("[spec %d] expected error %s; got %v", idx, s.expError, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] %v", idx, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", idx, s.exp, level)
		}
	}
}

func TestLevelNames(t *testing.T) {
	defer SetLevel(Notice)

	for l := Debug; l <= Error; l++ {
		parsed, err := ParseLevel(l.String())
		if err != nil {
			t.Fatalf("[level %d] %v", l, err)
		}
		if parsed != l {
			t.Fatalf("expected %q to parse as %d; got %d", l.String(), l, parsed)
		}

		SetLevel(l)
		if got := GetLevel(); got != l {
			t.Fatalf("expected active level %s; got %s", l, got)
		}
	}

	if got := Level(42).String(); got != "level(42)" {
		t.Fatalf("expected out of range level name level(42); got %s", got)
	}
	SetLevel(Level(-3))
	if got := GetLevel(); got != Error {
		t.Fatalf("expected out of range level to select error; got %s", got)
	}
}
