package cli

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/moralwatch/internal/detect"
)

func TestInitCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MORALWATCH_HOME", dir)
	initMode = "user"
	initForce = false
	initChecksum = false

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "patterns.yaml"))
	if err != nil {
		t.Fatalf("expected patterns.yaml: %v", err)
	}
	var p detect.Patterns
	if err := yaml.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal patterns: %v", err)
	}
	if len(p.Perfection) == 0 || len(p.Circular) == 0 {
		t.Errorf("expected default patterns, got %+v", p)
	}

	if _, err := os.Stat(filepath.Join(dir, "lexicon.yaml")); err != nil {
		t.Errorf("expected lexicon.yaml: %v", err)
	}
}

func TestInitDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MORALWATCH_HOME", dir)
	initMode = "user"
	initForce = false
	initChecksum = false

	patternsPath := filepath.Join(dir, "patterns.yaml")
	if err := os.WriteFile(patternsPath, []byte("perfection:\n  - custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	data, _ := os.ReadFile(patternsPath)
	if string(data) != "perfection:\n  - custom\n" {
		t.Error("expected existing patterns.yaml to be preserved")
	}
}

func TestInitForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MORALWATCH_HOME", dir)
	initMode = "user"
	initForce = true
	initChecksum = false
	defer func() { initForce = false }()

	patternsPath := filepath.Join(dir, "patterns.yaml")
	if err := os.WriteFile(patternsPath, []byte("perfection:\n  - custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	data, _ := os.ReadFile(patternsPath)
	if string(data) == "perfection:\n  - custom\n" {
		t.Error("expected --force to overwrite patterns.yaml")
	}
}

func TestInitInvalidMode(t *testing.T) {
	initMode = "bogus"
	defer func() { initMode = "user" }()

	if err := runInit(initCmd, nil); err == nil {
		t.Fatal("expected error for invalid mode")
	}
}
