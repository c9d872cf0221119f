package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAbsPathsSurviveChdir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	config, script, none := "my.yaml", filepath.Join("input", "run.yaml"), ""

	if err := absPaths(&config, &script, &none); err != nil {
		t.Fatal(err)
	}
	t.Chdir(t.TempDir())

	if want := filepath.Join(wd, "my.yaml"); config != want {
		t.Errorf("config = %s, want %s", config, want)
	}
	if want := filepath.Join(wd, "input", "run.yaml"); script != want {
		t.Errorf("script = %s, want %s", script, want)
	}
	if none != "" {
		t.Errorf("empty path should stay empty, got %q", none)
	}
}
