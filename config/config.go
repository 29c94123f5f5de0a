// Package config loads the server's infrastructure configuration: listen
// address, catalog CSV path, and default optimization preferences.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"timetable-optimizer/internal/preferences"
)

// AppConfigParams mirrors the teacher's addr-only app config section.
type AppConfigParams struct {
	Addr string `json:"addr"`
}

// CatalogConfigParams locates the lecture catalog CSV.
type CatalogConfigParams struct {
	Path string `json:"path"`
}

// Config is the server's top-level configuration.
type Config struct {
	App     AppConfigParams     `json:"app"`
	Catalog CatalogConfigParams `json:"catalog"`
	Default preferences.Preferences `json:"default_preferences"`
}

// CurrentConfig is the process-wide configuration, populated by LoadConfig
// (or its built-in defaults) at startup.
var CurrentConfig Config

func init() {
	CurrentConfig = Defaults()
	if err := LoadConfig(); err != nil {
		log.Warn().Err(err).Msg("config.json unavailable, using built-in defaults")
	}
}

// Defaults returns the configuration used when config.json is absent. The
// catalog CSV itself is mandatory data (§4.8), but its path being
// configurable is ambient infrastructure config, not that data — so unlike
// the catalog loader, a missing config.json must not fail startup.
func Defaults() Config {
	return Config{
		App:     AppConfigParams{Addr: ":8080"},
		Catalog: CatalogConfigParams{Path: "./data/lectures.csv"},
		Default: preferences.Default(),
	}
}

// LoadConfig reads ./config.json over the built-in defaults. A missing or
// unparsable file is reported but not fatal.
func LoadConfig() error {
	file, err := os.ReadFile("./config.json")
	if err != nil {
		return errors.Wrap(err, "reading config.json")
	}

	cfg := Defaults()
	if err := json.Unmarshal(file, &cfg); err != nil {
		return errors.Wrap(err, "parsing config.json")
	}

	CurrentConfig = cfg
	return nil
}
