package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	s, err := FromEnv(envMap(nil), 77)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if s.Seed != 77 || s.Frontend != FrontendGL || s.LogLevel != "info" || s.Mute || s.LogFile != "" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestFromEnv_Values(t *testing.T) {
	s, err := FromEnv(envMap(map[string]string{
		EnvSeed:     "12345",
		EnvFrontend: " TUI ",
		EnvLogLevel: "DEBUG",
		EnvLogFile:  "/tmp/lc.log",
		EnvMute:     "true",
	}), 1)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if s.Seed != 12345 || s.Frontend != FrontendTUI || s.LogLevel != "debug" || !s.Mute || s.LogFile != "/tmp/lc.log" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad seed", map[string]string{EnvSeed: "-3"}, EnvSeed},
		{"bad frontend", map[string]string{EnvFrontend: "vulkan"}, EnvFrontend},
		{"bad mute", map[string]string{EnvMute: "loud"}, EnvMute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env), 1)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name %s", err, tt.want)
			}
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	if _, ok := os.LookupEnv(EnvFrontend); ok {
		t.Skipf("%s already set in the environment", EnvFrontend)
	}
	t.Cleanup(func() { os.Unsetenv(EnvFrontend) })

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvFrontend+"=tui\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Frontend != FrontendTUI {
		t.Fatalf("frontend = %q, want tui", s.Frontend)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}
