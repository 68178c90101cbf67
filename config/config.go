package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/subtlepseudonym/skyframe"
	"github.com/subtlepseudonym/skyframe/solar"
)

const (
	EnvPrefix     = "SKYFRAME"
	DefaultListen = ":9000"

	debounce = 100 * time.Millisecond
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Listen   string            `json:"listen" mapstructure:"listen"`
	Location skyframe.Location `json:"location" mapstructure:"location"`
	EOP      solar.EOP         `json:"eop" mapstructure:"eop"`
	Jobs     []Job             `json:"jobs" mapstructure:"jobs"`
}

// Job records the sun's elevation on a schedule. Schedule is a standard
// cron expression or "@sunset"/"@sunrise" followed by an optional offset,
// e.g. "@sunset -30m".
type Job struct {
	Name     string `json:"name" mapstructure:"name"`
	Schedule string `json:"schedule" mapstructure:"schedule"`
}

// Load reads the config file at path, if any, over the built-in defaults.
// SKYFRAME_* environment variables override both, e.g.
// SKYFRAME_LOCATION_LATITUDE. The file format follows its extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("location.latitude", 0.0)
	v.SetDefault("location.longitude", 0.0)
	v.SetDefault("location.height", 0.0)
	v.SetDefault("eop.dut1", 0.0)
	v.SetDefault("eop.xp", 0.0)
	v.SetDefault("eop.yp", 0.0)
	v.SetDefault("eop.dtr", 0.0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	names := make(map[string]bool)
	for i, job := range c.Jobs {
		if job.Name == "" {
			return fmt.Errorf("%w: job %d has no name", ErrInvalid, i)
		}
		if names[job.Name] {
			return fmt.Errorf("%w: duplicate job %q", ErrInvalid, job.Name)
		}
		names[job.Name] = true

		if _, err := skyframe.ParseSchedule(job.Schedule, c.Location, c.EOP); err != nil {
			return fmt.Errorf("%w: job %q: %s", ErrInvalid, job.Name, err)
		}
	}

	return nil
}

// Watch calls onChange with the reloaded config each time the file at path
// is written, until ctx is done. Configs that fail to load or validate are
// logged and skipped.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}

	// editors replace the file, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()

		target := filepath.Clean(path)
		timer := time.NewTimer(debounce)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					timer.Reset(debounce)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("ERR: watch config: %s", err)
			case <-timer.C:
				config, err := Load(path)
				if err == nil {
					err = config.Validate()
				}
				if err != nil {
					log.Printf("ERR: reload config: %s", err)
					continue
				}
				log.Printf("reloaded config %s", path)
				onChange(config)
			}
		}
	}()

	return nil
}
