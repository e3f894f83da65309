package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const childEnv = "HEXMAC_CLI_CHILD"

// TestCLIChild runs main with the arguments passed by runProcess
func TestCLIChild(t *testing.T) {
	if os.Getenv(childEnv) == "" {
		t.Skip("only runs as a re-executed child")
	}

	args := []string{"hexmac"}
	if raw := os.Getenv(childEnv + "_ARGS"); raw != "" {
		args = append(args, strings.Split(raw, "\n")...)
	}
	os.Args = args
	main()
}

// runProcess re-executes the test binary as the CLI with stdout on a pipe
func runProcess(t *testing.T, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(os.Args[0], "-test.run=^TestCLIChild$")
	cmd.Env = append(os.Environ(),
		childEnv+"=1",
		childEnv+"_ARGS="+strings.Join(args, "\n"),
		"TERM=xterm-256color",
		"NO_COLOR=",
		"CLICOLOR_FORCE=",
	)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("failed to run child process: %v", err)
	}
	return stdout.String(), 0
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.hm")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	return path
}

func TestProcessContract(t *testing.T) {
	tests := []struct {
		args        []string
		stdout      string
		code        int
		description string
	}{
		{nil, "Error: Filename Wasnt provided\n", 1, "no filename"},
		{[]string{writeSource(t, "a = \"abc\" 0x1 \"def\"\nout = a\n")}, "abc\\x01def\n", 0, "success"},
		{[]string{writeSource(t, "a = \"x\"\n")}, "Error: Return variable out wasnt provided\n", 1, "missing out"},
	}

	for _, test := range tests {
		stdout, code := runProcess(t, test.args...)
		if code != test.code {
			t.Errorf("%s: expected exit code %d, got %d", test.description, test.code, code)
		}
		if stdout != test.stdout {
			t.Errorf("%s: expected stdout %q, got %q", test.description, test.stdout, stdout)
		}
	}
}

func TestRun(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")

	src := writeSource(t, "out = 0x1234")
	missing := filepath.Join(t.TempDir(), "missing.hm")

	tests := []struct {
		args        []string
		prefix      string
		code        int
		description string
	}{
		{[]string{src}, "\\x34\\x12\n", 0, "success"},
		{[]string{"-d", "4", src}, "\\x34\\x12\n", 0, "flags before file"},
		{nil, "Error: Filename Wasnt provided\n", 1, "no filename"},
		{[]string{missing}, "Error: could not read file " + missing + ": ", 1, "unreadable file"},
		{[]string{"-x", src}, "Error: flag provided but not defined: -x\n", 1, "unknown flag"},
		{[]string{"-program.hm"}, "Error: flag provided but not defined: -program.hm\n", 1, "path starting with dash"},
		{[]string{"-d", "deep", src}, "Error: invalid value \"deep\" for flag -d: ", 1, "invalid flag value"},
	}

	for _, test := range tests {
		var stdout, stderr bytes.Buffer
		code := run("hexmac", test.args, &stdout, &stderr)
		if code != test.code {
			t.Errorf("%s: expected exit code %d, got %d", test.description, test.code, code)
		}
		if !strings.HasPrefix(stdout.String(), test.prefix) {
			t.Errorf("%s: expected stdout starting with %q, got %q", test.description, test.prefix, stdout.String())
		}
		if test.code != 0 && strings.Count(stdout.String(), "\n") != 1 {
			t.Errorf("%s: expected a single error line, got %q", test.description, stdout.String())
		}
	}
}
