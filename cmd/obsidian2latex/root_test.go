package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns the error.
func runCLI(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func writeNote(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertCommand(t *testing.T) {
	input := writeNote(t, "# Intro\n\nSome text.\n")
	output := filepath.Join(t.TempDir(), "sections", "out.tex")
	figures := filepath.Join(t.TempDir(), "figs")

	if err := runCLI(input, "-o", output, "-f", figures); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, `\section{Intro}`) {
		t.Errorf("output missing section command:\n%s", got)
	}
	if !strings.Contains(got, "% Source: note.md") {
		t.Errorf("output missing provenance comment:\n%s", got)
	}
}

func TestConvertCommandLevelAdjust(t *testing.T) {
	input := writeNote(t, "# Intro\n")
	output := filepath.Join(t.TempDir(), "out.tex")
	figures := filepath.Join(t.TempDir(), "figs")

	if err := runCLI(input, "-o", output, "-f", figures, "-l", "1"); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(output)
	if !strings.Contains(string(data), `\subsection{Intro}`) {
		t.Errorf("level adjustment not applied:\n%s", data)
	}
}

func TestConvertCommandMissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.tex")
	err := runCLI(filepath.Join(t.TempDir(), "absent.md"), "-o", output)
	if err == nil {
		t.Error("missing input file did not fail the command")
	}
}

func TestConvertCommandRequiresOutput(t *testing.T) {
	input := writeNote(t, "# T\n")
	if err := runCLI(input); err == nil {
		t.Error("missing --output did not fail the command")
	}
}

func TestConvertCommandInvalidOverwriteMode(t *testing.T) {
	input := writeNote(t, "# T\n")
	output := filepath.Join(t.TempDir(), "out.tex")
	if err := runCLI(input, "-o", output, "--overwrite", "append"); err == nil {
		t.Error("invalid overwrite mode did not fail the command")
	}
}

func TestConvertCommandConfigDefaults(t *testing.T) {
	input := writeNote(t, "# Intro\n")
	output := filepath.Join(t.TempDir(), "out.tex")
	figures := filepath.Join(t.TempDir(), "figs")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("levelAdjust: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI(input, "-o", output, "-f", figures, "--config", configPath); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(output)
	if !strings.Contains(string(data), `\subsection{Intro}`) {
		t.Errorf("config default not applied:\n%s", data)
	}
}

func TestConvertCommandFlagOverridesConfig(t *testing.T) {
	input := writeNote(t, "# Intro\n")
	output := filepath.Join(t.TempDir(), "out.tex")
	figures := filepath.Join(t.TempDir(), "figs")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("levelAdjust: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI(input, "-o", output, "-f", figures, "--config", configPath, "-l", "0"); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(output)
	if !strings.Contains(string(data), `\section{Intro}`) {
		t.Errorf("explicit flag did not override config:\n%s", data)
	}
}

func TestConvertCommandSkipMode(t *testing.T) {
	input := writeNote(t, "# New\n")
	output := filepath.Join(t.TempDir(), "out.tex")
	figures := filepath.Join(t.TempDir(), "figs")
	if err := os.WriteFile(output, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI(input, "-o", output, "-f", figures, "--overwrite", "skip"); err != nil {
		t.Errorf("skip mode must report success: %v", err)
	}

	data, _ := os.ReadFile(output)
	if string(data) != "existing" {
		t.Errorf("skip mode modified the existing file: %q", data)
	}
}
