package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunValidation(t *testing.T) {
	var out bytes.Buffer
	if err := runValidation(context.Background(), &out); err != nil {
		t.Fatalf("validation failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "validation passed") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestValidateCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out.String(), "温度=25") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestResolveConfigFlagTags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[tags]\ninitial = [\"a\", \"b\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, tags, err := resolveConfig(&rootOptions{ConfigPath: path})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if strings.Join(tags, ",") != "a,b" {
		t.Fatalf("config tags = %v", tags)
	}

	_, tags, err = resolveConfig(&rootOptions{ConfigPath: path, Tags: " x, y ,x"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if strings.Join(tags, ",") != "x,y" {
		t.Fatalf("flag tags = %v", tags)
	}

	if _, _, err := resolveConfig(&rootOptions{ConfigPath: path, LogLevel: "loud"}); err == nil {
		t.Fatalf("expected bad log level to fail")
	}
}
