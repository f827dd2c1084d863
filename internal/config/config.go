// Package config loads the flowcanvas.toml configuration file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
	"github.com/flowcanvas/flowcanvas/pkg/store"
)

// Editor holds the diagram-surface tunables. Grid is the snapping pitch and
// Padding the fit-to-content margin, both in model units.
type Editor struct {
	Grid     float64 `toml:"grid"`
	ZoomStep float64 `toml:"zoom_step"`
	Padding  float64 `toml:"padding"`
}

// Server holds the HTTP API settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Store selects the persistence backend.
type Store struct {
	Backend   string `toml:"backend"` // file | redis | mongo | null
	Path      string `toml:"path"`
	RedisAddr string `toml:"redis_addr"`
	RedisKey  string `toml:"redis_key"`
	MongoURI  string `toml:"mongo_uri"`
	MongoDB   string `toml:"mongo_db"`
}

// Config is the full application configuration.
type Config struct {
	Editor Editor `toml:"editor"`
	Server Server `toml:"server"`
	Store  Store  `toml:"store"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Editor: Editor{
			Grid:     geom.GridSize,
			ZoomStep: geom.ZoomStep,
			Padding:  40,
		},
		Server: Server{Addr: ":8080"},
		Store: Store{
			Backend: store.BackendFile,
			Path:    "flowcanvas-state.json",
		},
	}
}

// Load reads a TOML file over the defaults. A missing file yields the
// defaults without error; a malformed file is an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}
	return cfg, cfg.validate()
}

// validate rejects values that would break the surface invariants.
func (c Config) validate() error {
	if c.Editor.Grid < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "editor.grid must not be negative")
	}
	if c.Editor.ZoomStep <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "editor.zoom_step must be positive")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}

// StoreOptions converts the store section for store.Open.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend:   c.Store.Backend,
		Path:      c.Store.Path,
		RedisAddr: c.Store.RedisAddr,
		RedisKey:  c.Store.RedisKey,
		MongoURI:  c.Store.MongoURI,
		MongoDB:   c.Store.MongoDB,
	}
}
