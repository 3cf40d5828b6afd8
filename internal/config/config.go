package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/td0m/chrono/pkg/task"
	"gopkg.in/yaml.v3"
)

var ErrSeedConflict = errors.New("-seed and -empty cannot be combined")

type Config struct {
	LogFile  string
	SeedFile string
	Empty    bool
}

// Parse reads the command line flags of the tui
func Parse(name string, args []string, output io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.LogFile, "log", "", "Path to a debug log file")
	fs.StringVar(&cfg.SeedFile, "seed", "", "Path to a YAML file with the initial tasks")
	fs.BoolVar(&cfg.Empty, "empty", false, "Start with an empty list")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Empty && cfg.SeedFile != "" {
		return Config{}, ErrSeedConflict
	}
	return cfg, nil
}

// Seed returns the records the list starts with
func (c Config) Seed() ([]task.Record, error) {
	switch {
	case c.Empty:
		return nil, nil
	case c.SeedFile != "":
		return LoadSeed(c.SeedFile)
	}
	return task.DefaultSeed(), nil
}

type seedFile struct {
	Tasks []seedEntry `yaml:"tasks"`
}

type seedEntry struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Hours   string `yaml:"hours"`
	Minutes string `yaml:"minutes"`
}

// LoadSeed reads and validates a YAML seed file. Entries without an id get a
// generated one.
func LoadSeed(path string) ([]task.Record, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return parseSeed(bs)
}

func parseSeed(bs []byte) ([]task.Record, error) {
	var f seedFile
	if err := yaml.Unmarshal(bs, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	records := make([]task.Record, len(f.Tasks))
	for i, e := range f.Tasks {
		id := task.ID(e.ID)
		if id == "" {
			id = task.NewID()
		}
		records[i] = task.Record{
			ID:      id,
			Title:   e.Title,
			Hours:   e.Hours,
			Minutes: e.Minutes,
		}
	}
	if err := task.Check(records); err != nil {
		return nil, fmt.Errorf("check seed: %w", err)
	}
	return records, nil
}
