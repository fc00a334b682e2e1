package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/olirtf"
)

// isolateConfig keeps the user's config file and environment out of a test.
func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(configEnvVar, "")
	t.Setenv("COLUMNS", "")
}

var sampleDoc = []byte{0x1B, 0x1B, 0x48, 0x69, 0x0A, 0xFF, 0x58, 0x59, 0xFF, 0x4F, 0x4B, 0x0A, 0xFF}

func TestRunUsageWithoutArguments(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"only-input"}, nil, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Usage: olirtf") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}

func TestRunConvertsFile(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "letter.oli")
	out := filepath.Join(dir, "nested", "letter.rtf")
	if err := os.WriteFile(in, sampleDoc, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v", in, out}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := olirtf.Preamble() + "\n{\\pard \\qj Hi \\par}\n{\\pard \\qj OK \\par}\n}\n"
	if string(got) != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, string(got))
	}
	for _, line := range []string{"Input file: " + in, "Output file: " + out, "File header: Hi"} {
		if !strings.Contains(stderr.String(), line) {
			t.Fatalf("missing %q in stderr %q", line, stderr.String())
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.oli")
	var stdout, stderr bytes.Buffer
	if code := run([]string{missing, filepath.Join(dir, "out.rtf")}, nil, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), missing) {
		t.Fatalf("error does not name the input path: %q", stderr.String())
	}
}

func TestRunTextToStdout(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer
	stdin := bytes.NewReader([]byte("\x1b\x1bcitta` bella\n"))
	if code := run([]string{"--format", "text", "--dump-tokens", "-", "-"}, stdin, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if got, want := stdout.String(), "città bella\n"; got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
	if !strings.Contains(stderr.String(), "0\tFileHeader\n") {
		t.Fatalf("missing token dump in stderr %q", stderr.String())
	}
}

func TestRunWarnsOnPlainText(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader(strings.Repeat("just some text\n", 8))
	if code := run([]string{"-", "-"}, stdin, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "warning: -: "+olirtf.ErrLooksLikeText.Error()) {
		t.Fatalf("expected warning, got %q", stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), olirtf.Preamble()) {
		t.Fatalf("expected RTF output")
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--format", "pdf", "-", "-"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestReadInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.oli")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	buf, err := readInput(path, nil)
	if err != nil {
		t.Fatalf("readInput file: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	buf, err = readInput("file://"+path, nil)
	if err != nil {
		t.Fatalf("readInput file URL: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	buf, err = readInput(srv.URL, nil)
	if err != nil {
		t.Fatalf("readInput http: %v", err)
	}
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}

	buf, err = readInput("-", io.NopCloser(strings.NewReader("stdin")))
	if err != nil || string(buf) != "stdin" {
		t.Fatalf("readInput stdin: %q, %v", string(buf), err)
	}
	if _, err := readInput("  ", nil); err == nil {
		t.Fatalf("expected error for empty input argument")
	}
}

func TestResolveWidth(t *testing.T) {
	if got := resolveWidth(42, &bytes.Buffer{}); got != 42 {
		t.Fatalf("explicit width ignored: %d", got)
	}
	t.Setenv("COLUMNS", "100")
	if got := resolveWidth(0, &bytes.Buffer{}); got != 100 {
		t.Fatalf("COLUMNS ignored: %d", got)
	}
	t.Setenv("COLUMNS", "")
	if got := resolveWidth(0, &bytes.Buffer{}); got != defaultWidth {
		t.Fatalf("expected default width, got %d", got)
	}
}
