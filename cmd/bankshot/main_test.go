package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDefault(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inputs.txt")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-default", "-input", path}, &stdout, &stderr); code != exitOK {
		t.Fatalf("cannot write default parameters: %d (%s)", code, stderr.String())
	}
	return path
}

func TestRunJSON(t *testing.T) {
	path := writeDefault(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", path, "-json"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("unexpected exit code %d (%s)", code, stderr.String())
	}

	var reports []methodReport
	if err := json.Unmarshal(stdout.Bytes(), &reports); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(reports) != 2 || reports[0].Method != "euler" || reports[1].Method != "rk4" {
		t.Fatalf("unexpected reports %+v", reports)
	}
	for _, r := range reports {
		if r.Status != "converged" || r.Iterations != len(r.ErrorTrace) {
			t.Errorf("%s: unexpected report %+v", r.Method, r)
		}
	}
}

func TestRunReport(t *testing.T) {
	path := writeDefault(t)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-input", path, "-method", "rk4"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("unexpected exit code %d (%s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "RK4") || !strings.Contains(out, "converged") {
		t.Errorf("unexpected report %q", out)
	}
}

func TestRunPlots(t *testing.T) {
	path := writeDefault(t)
	dir := filepath.Join(t.TempDir(), "plots")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-input", path, "-method", "rk4", "-plots", dir, "-json"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("unexpected exit code %d (%s)", code, stderr.String())
	}
	for _, name := range []string{"rk4_0001.png", "rk4_final.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s is not saved: %v", name, err)
		}
	}
}

func TestRunExitCodes(t *testing.T) {
	path := writeDefault(t)
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"not converged", []string{"-input", path, "-max-iterations", "2"}, exitNotConverged},
		{"unknown method", []string{"-input", path, "-method", "verlet"}, exitFailure},
		{"missing input", []string{"-input", filepath.Join(t.TempDir(), "none.txt")}, exitFailure},
		{"bad flag", []string{"-unknown"}, exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("exit code = %d, want %d (%s)", code, tt.code, stderr.String())
			}
		})
	}
}
