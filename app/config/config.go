package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ProviderCfg struct {
	BaseURL   string `yaml:"base_url" json:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms" json:"timeout_ms"`
}

type SearchCfg struct {
	MaxResults int         `yaml:"max_results" json:"max_results"`
	Nominatim  ProviderCfg `yaml:"nominatim" json:"nominatim"`
	Photon     ProviderCfg `yaml:"photon" json:"photon"`
	MapBox     ProviderCfg `yaml:"mapbox" json:"mapbox"`
}

type CacheCfg struct {
	L1Size   int `yaml:"l1_size" json:"l1_size"`
	TTLHours int `yaml:"ttl_hours" json:"ttl_hours"`
}

type AppCfg struct {
	Search SearchCfg `yaml:"search" json:"search"`
	Cache  CacheCfg  `yaml:"cache" json:"cache"`
}

var C AppCfg

// Load reads the yaml tuning file into the package config. Missing file is
// the caller's call; absent fields fall back to Defaults.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return err
	}
	applyDefaults()
	// ENV overrides
	if url := os.Getenv("MAPBOX_BASE_URL"); url != "" {
		C.Search.MapBox.BaseURL = url
	}
	return nil
}

// Defaults fills C without a config file.
func Defaults() {
	C = AppCfg{}
	applyDefaults()
}

func applyDefaults() {
	if C.Search.MaxResults == 0 {
		C.Search.MaxResults = 12
	}
	if C.Cache.L1Size == 0 {
		C.Cache.L1Size = 1000
	}
	if C.Cache.TTLHours == 0 {
		C.Cache.TTLHours = 24
	}
}

func (p ProviderCfg) Timeout() time.Duration {
	if p.TimeoutMs <= 0 {
		return 5 * time.Second
	}
	return time.Duration(p.TimeoutMs) * time.Millisecond
}

func (c CacheCfg) TTL() time.Duration { return time.Duration(c.TTLHours) * time.Hour }
