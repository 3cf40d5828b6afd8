package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/chrono/pkg/task"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		is := is.New(t)
		cfg, err := Parse("chrono", nil, io.Discard)
		is.NoErr(err)
		is.Equal(cfg, Config{})

		seed, err := cfg.Seed()
		is.NoErr(err)
		is.Equal(seed, task.DefaultSeed())
	})

	t.Run("flags", func(t *testing.T) {
		is := is.New(t)
		cfg, err := Parse("chrono", []string{"-log", "debug.log", "-empty"}, io.Discard)
		is.NoErr(err)
		is.Equal(cfg.LogFile, "debug.log")
		is.True(cfg.Empty)

		seed, err := cfg.Seed()
		is.NoErr(err)
		is.Equal(len(seed), 0)
	})

	t.Run("seed and empty conflict", func(t *testing.T) {
		is := is.New(t)
		_, err := Parse("chrono", []string{"-empty", "-seed", "tasks.yaml"}, io.Discard)
		is.Equal(err, ErrSeedConflict)
	})

	t.Run("unknown flag", func(t *testing.T) {
		is := is.New(t)
		_, err := Parse("chrono", []string{"-nope"}, io.Discard)
		is.True(err != nil)
	})
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()
	write := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("write seed: %v", err)
		}
		return path
	}

	t.Run("reads tasks in order", func(t *testing.T) {
		is := is.New(t)
		path := write(t, "ok.yaml", `
tasks:
  - id: "a"
    title: SYSTEM_BOOT
    hours: "2"
    minutes: "15"
  - title: CORE_SYNC
`)
		cfg := Config{SeedFile: path}
		seed, err := cfg.Seed()
		is.NoErr(err)
		is.Equal(len(seed), 2)
		is.Equal(seed[0], task.Record{ID: "a", Title: "SYSTEM_BOOT", Hours: "2", Minutes: "15"})
		is.Equal(seed[1].Title, "CORE_SYNC")
		is.True(seed[1].ID != "") // generated
	})

	t.Run("duplicate ids", func(t *testing.T) {
		is := is.New(t)
		path := write(t, "dup.yaml", `
tasks:
  - {id: "a", title: A}
  - {id: "a", title: B}
`)
		_, err := LoadSeed(path)
		is.True(errors.Is(err, task.ErrIDAlreadyExists))
	})

	t.Run("missing title", func(t *testing.T) {
		is := is.New(t)
		path := write(t, "notitle.yaml", "tasks:\n  - id: x\n")
		_, err := LoadSeed(path)
		is.True(errors.Is(err, task.ErrInvalidSeed))
	})

	t.Run("bad yaml", func(t *testing.T) {
		is := is.New(t)
		path := write(t, "bad.yaml", "tasks: [")
		_, err := LoadSeed(path)
		is.True(err != nil)
	})

	t.Run("missing file", func(t *testing.T) {
		is := is.New(t)
		_, err := LoadSeed(filepath.Join(dir, "nope.yaml"))
		is.True(errors.Is(err, os.ErrNotExist))
	})
}
