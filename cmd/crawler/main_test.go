package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// execute runs the root command in an empty home and working directory.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(logLevelEnv, "error")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("crawler %s failed: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestSimPrintsSnapshot(t *testing.T) {
	out := execute(t, "sim", "--keys", "hx", "--seed", "0")

	var report simReport
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}

	snap := report.Snapshot
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if snap.Presses != 2 || snap.Steps != 1 {
		t.Errorf("presses %d steps %d, expected 2 and 1", snap.Presses, snap.Steps)
	}
	if snap.Player.X != 28 || snap.Player.Y != 19 {
		t.Errorf("player = %+v, expected (28,19)", snap.Player)
	}
	if len(snap.Walls) != 19 {
		t.Errorf("walls = %d, expected 19", len(snap.Walls))
	}
	if report.Seed != 0 || report.Session == "" {
		t.Errorf("report header = %q/%d", report.Session, report.Seed)
	}
}

func TestSimRequiresKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagKeys = ""

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"sim", "--keys", ""})
	if err := rootCmd.Execute(); err == nil {
		t.Error("sim without keys should fail")
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	out := execute(t, "config")

	if !strings.HasPrefix(out, "# source: embedded\n") {
		t.Errorf("missing source header:\n%s", out)
	}
	for _, want := range []string{"width: 60", "height: 40", "batch_size: 20", "speed: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestListShowsCrawler(t *testing.T) {
	out := execute(t, "list")
	if !strings.Contains(out, "crawler") || !strings.Contains(out, "Dungeon Crawler") {
		t.Errorf("list output missing the crawler:\n%s", out)
	}
}
