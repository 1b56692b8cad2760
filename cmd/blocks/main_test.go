package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "blocks") || !strings.Contains(out, "Blocks") {
		t.Errorf("list output missing the blocks game:\n%s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "fixed")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}

	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("config output does not parse: %v\n%s", err, out)
	}
	if cfg.Difficulty.Progression {
		t.Error("fixed preset left progression enabled")
	}
}

func TestConfigCommandRejectsDifficulty(t *testing.T) {
	if _, err := execute(t, "config", "--difficulty", "insane"); err == nil {
		t.Error("unknown difficulty accepted")
	}
	flagShowDifficulty = ""
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "tetris")
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("play tetris error = %v, expected unknown game", err)
	}
}
