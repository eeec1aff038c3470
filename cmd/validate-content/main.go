// validate-content loads every content vertical from its configured base
// directory and reports what loaded, what was skipped, and why. It is the
// pre-flight check run after editing content files: a bad entry shows up
// here as a logged diagnostic instead of a missing object at runtime.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/zork-content/internal/config"
	"github.com/cory-johannsen/zork-content/internal/content/item"
	"github.com/cory-johannsen/zork-content/internal/content/monster"
	"github.com/cory-johannsen/zork-content/internal/content/scene"
	"github.com/cory-johannsen/zork-content/internal/observability"
)

type verticalReport struct {
	Vertical string `yaml:"vertical"`
	Listed   int    `yaml:"listed"`
	Loaded   int    `yaml:"loaded"`
	Skipped  int    `yaml:"skipped"`
	Duration string `yaml:"duration"`
	Error    string `yaml:"error,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file (defaults + ZORK_ env overrides when empty)")
	format := flag.String("format", "text", "report format: text or yaml")
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	reports := []verticalReport{
		runItems(cfg.Content.ItemsPath, logger),
		runMonsters(cfg.Content.MonstersPath, logger),
		runScenes(cfg.Content.ScenesPath, logger),
	}

	failed := false
	switch *format {
	case "yaml":
		data, err := yaml.Marshal(reports)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	case "text":
		for _, r := range reports {
			if r.Error != "" {
				fmt.Printf("%-8s FAILED  %s\n", r.Vertical, r.Error)
				continue
			}
			fmt.Printf("%-8s %d/%d loaded (%d skipped) in %s\n",
				r.Vertical, r.Loaded, r.Listed, r.Skipped, r.Duration)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (supported: text, yaml)\n", *format)
		os.Exit(1)
	}

	for _, r := range reports {
		if r.Error != "" {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func runItems(basePath string, logger *zap.Logger) verticalReport {
	start := time.Now()
	r := verticalReport{Vertical: "items"}
	loader := item.NewLoader(basePath, logger)

	idx, err := loader.ReadIndex()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Listed = len(idx.Items)

	items, err := loader.LoadAll()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Loaded = len(items)
	r.Skipped = r.Listed - r.Loaded
	r.Duration = time.Since(start).Round(time.Millisecond).String()
	return r
}

func runMonsters(basePath string, logger *zap.Logger) verticalReport {
	start := time.Now()
	r := verticalReport{Vertical: "monsters"}
	loader := monster.NewLoader(basePath, logger)

	idx, err := loader.ReadIndex()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Listed = len(idx.Monsters)

	monsters, err := loader.LoadAll()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Loaded = len(monsters)
	r.Skipped = r.Listed - r.Loaded
	r.Duration = time.Since(start).Round(time.Millisecond).String()
	return r
}

func runScenes(basePath string, logger *zap.Logger) verticalReport {
	start := time.Now()
	r := verticalReport{Vertical: "scenes"}
	loader := scene.NewLoader(basePath, logger)

	idx, err := loader.ReadIndex()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Listed = len(idx.Scenes)

	scenes, err := loader.LoadAll()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Loaded = len(scenes)
	r.Skipped = r.Listed - r.Loaded
	r.Duration = time.Since(start).Round(time.Millisecond).String()
	return r
}
