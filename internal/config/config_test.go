package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bmpresize.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults (-want +got):\n%s", diff)
	}
	if _, err := Load(path, true); err == nil {
		t.Error("expected error for missing required config")
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, "mode: legacy\nworkers: 2\n"), true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Mode = "legacy"
	want.Workers = 2
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadRejects(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key":  "colour: red\n",
		"bad mode":     "mode: bicubic\n",
		"bad format":   "log_format: xml\n",
		"zero workers": "workers: 0\n",
		"not yaml":     "mode: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body), true); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
