package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/utf8x/foundation/core/error"
	"github.com/msto63/utf8x/pkg/core/config"
)

// execute runs the command tree with isolated configuration lookup
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvConfigPath, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain", errors.New("unknown command"), 2},
		{"conversion", mdwerror.New("x").WithCode("UTF8X_CONVERSION_FAILED"), 3},
		{"config", mdwerror.New("x").WithCode("CONFIG_NOT_FOUND"), 4},
		{"usage", usageError("chr", "zz", "number"), 2},
		{"not found", mdwerror.New("x").WithCode(mdwerror.CodeNotFound), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"args joined", "", []string{"hello", "wörld"}, "hello wörld"},
		{"stdin", "iñtër\n", nil, "iñtër"},
		{"stdin crlf", "iñtër\r\n", nil, "iñtër"},
		{"stdin keeps inner newlines", "a\nb\n", nil, "a\nb"},
		{"empty stdin", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetIn(strings.NewReader(tt.stdin))
			got, err := readInput(cmd, tt.args)
			if err != nil {
				t.Fatalf("readInput() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readInput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCodepoint(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"8359", 8359, false},
		{"0x20A7", 0x20A7, false},
		{"U+1F618", 0x1F618, false},
		{"u+00e9", 0xE9, false},
		{"zz", 0, true},
		{"U+", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCodepoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCodepoint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseCodepoint() = %d, want %d", got, tt.want)
			}
			if tt.wantErr && exitCode(err) != 2 {
				t.Errorf("exitCode = %d, want 2", exitCode(err))
			}
		})
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utf8x.toml")
	if err := os.WriteFile(path, []byte("[capabilities]\nnormalization = false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "--config", path, "normalize", "e\u0301")
	if err != nil {
		t.Fatalf("normalize error = %v", err)
	}
	if out != "e\u0301\n" {
		t.Errorf("normalization disabled by config should pass through, got %q", out)
	}

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "len", "x")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if exitCode(err) != 4 {
		t.Errorf("exitCode = %d, want 4 (%v)", exitCode(err), err)
	}
}

func TestLogFlags(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "--log-format", "logfmt", "len", "abc")
	if err != nil {
		t.Fatalf("len error = %v", err)
	}
	for _, want := range []string{"level=debug", "logger=cli", `command="len"`, "correlation_id="} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %s:\n%s", want, stderr)
		}
	}

	_, _, err = execute(t, "", "--log-level", "loud", "len", "abc")
	if err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "", "frobnicate")
	if err == nil {
		t.Fatal("expected error")
	}
	if exitCode(err) != 2 {
		t.Errorf("exitCode = %d, want 2", exitCode(err))
	}
}
