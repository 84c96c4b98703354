package cli

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	logpkg "github.com/rzbill/yyid/pkg/log"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger := logpkg.NewLogger(logpkg.WithOutput(io.Discard))
	root := NewRootCommand(logger)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestNewDefaults(t *testing.T) {
	out, err := execute(t, "new")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	re := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	got := lines(out)
	if len(got) != 1 || !re.MatchString(got[0]) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNewCountAndFormat(t *testing.T) {
	out, err := execute(t, "new", "--count", "3", "--format", "urn", "--upper")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	re := regexp.MustCompile(`^urn:yyid:[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)
	got := lines(out)
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(got), out)
	}
	for _, line := range got {
		if !re.MatchString(line) {
			t.Fatalf("unexpected line: %q", line)
		}
	}
	if got[0] == got[1] || got[1] == got[2] {
		t.Fatalf("generated identifiers repeat: %q", out)
	}
}

func TestNewRejectsBadFlags(t *testing.T) {
	if _, err := execute(t, "new", "--count", "0"); err == nil {
		t.Fatalf("expected error for --count 0")
	}
	if _, err := execute(t, "new", "--format", "spiffe"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestFmtRerenders(t *testing.T) {
	const hyphenated = "02e7f0f6-067e-8c92-b25c-12c9180540a9"
	out, err := execute(t, "fmt", "urn:yyid:"+hyphenated, "--format", "simple")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if got := lines(out); len(got) != 1 || got[0] != "02e7f0f6067e8c92b25c12c9180540a9" {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = execute(t, "fmt", hyphenated, "--format", "braced")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if got := lines(out); got[0] != "{"+hyphenated+"}" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFmtRejectsInvalidInput(t *testing.T) {
	if _, err := execute(t, "fmt", "not-an-id"); err == nil {
		t.Fatalf("expected parse error")
	}
}
