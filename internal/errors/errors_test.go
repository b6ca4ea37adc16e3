package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"simple error", errors.New("no plan for this week"), "Error: no plan for this week"},
		{"wrapped error", fmt.Errorf("loading catalog: %w", errors.New("bad yaml")), "Error: loading catalog: bad yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("pick %d is out of range", 4)
	if got != "Error: pick 4 is out of range" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestFatal(t *testing.T) {
	if os.Getenv("MEALWEEK_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "MEALWEEK_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Fatal() did not exit with an error: %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: test error") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestFatalNilError(t *testing.T) {
	if os.Getenv("MEALWEEK_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatalNilError$")
	cmd.Env = append(os.Environ(), "MEALWEEK_TEST_FATAL_NIL=1")
	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit: %v", err)
	}
}

func TestFatalf(t *testing.T) {
	if os.Getenv("MEALWEEK_TEST_FATALF") == "1" {
		Fatalf("failed to start %s: %v", "mealweek", errors.New("bad config"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatalf$")
	cmd.Env = append(os.Environ(), "MEALWEEK_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Fatalf() did not exit with an error: %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: failed to start mealweek: bad config") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
