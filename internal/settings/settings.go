// Package settings reads the launcher's environment: which frontend to open,
// the round seed and logging options. Game constants live in arena.DefaultConfig.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvSeed     = "LIGHTCYCLE_SEED"
	EnvFrontend = "LIGHTCYCLE_FRONTEND"
	EnvLogLevel = "LIGHTCYCLE_LOG_LEVEL"
	EnvLogFile  = "LIGHTCYCLE_LOG_FILE"
	EnvMute     = "LIGHTCYCLE_MUTE"
)

// Frontends.
const (
	FrontendGL  = "gl"
	FrontendTUI = "tui"
)

type Settings struct {
	Seed     uint64
	Frontend string
	LogLevel string
	LogFile  string // empty: stderr for gl, discarded for tui
	Mute     bool
}

// Load reads .env style files (".env" when none are given) into the process
// environment, then parses the LIGHTCYCLE_* variables. Missing files are fine.
// Variables already set in the environment win over file values.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv, uint64(time.Now().UnixNano()))
}

// FromEnv parses settings through getenv. fallbackSeed is used when no seed is set.
func FromEnv(getenv func(string) string, fallbackSeed uint64) (Settings, error) {
	s := Settings{
		Seed:     fallbackSeed,
		Frontend: FrontendGL,
		LogLevel: "info",
		LogFile:  strings.TrimSpace(getenv(EnvLogFile)),
	}

	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}

	if v := strings.ToLower(strings.TrimSpace(getenv(EnvFrontend))); v != "" {
		switch v {
		case FrontendGL, FrontendTUI:
			s.Frontend = v
		default:
			return Settings{}, fmt.Errorf("%s: unknown frontend %q (want %q or %q)", EnvFrontend, v, FrontendGL, FrontendTUI)
		}
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		s.LogLevel = strings.ToLower(v)
	}

	if v := strings.TrimSpace(getenv(EnvMute)); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvMute, err)
		}
		s.Mute = mute
	}
	return s, nil
}
