package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the process-wide tunables of the statement pipeline. All
// fields have working defaults; a settings file only needs the keys it
// overrides.
type Settings struct {
	// HierarchyTolerance is the relative tolerance for section-total and
	// deficit cross-checks.
	HierarchyTolerance float64 `mapstructure:"hierarchy_tolerance"`
	// SignificanceThreshold is the minimum absolute change percent for the
	// significant-changes set.
	SignificanceThreshold float64 `mapstructure:"significance_threshold"`
	// WarningThreshold is the outlay-increase percent emitted as a warning
	// insight.
	WarningThreshold float64 `mapstructure:"warning_threshold"`
	// MaxInsights caps emitted insights per comparison.
	MaxInsights int `mapstructure:"max_insights"`
	// RankingSize is the top/bottom department slice length.
	RankingSize int `mapstructure:"ranking_size"`

	// AliasTablePath optionally points at a YAML alias table replacing the
	// compiled-in default.
	AliasTablePath string `mapstructure:"alias_table_path"`
	// DebtSeriesPath optionally points at the ini debt series file.
	DebtSeriesPath string `mapstructure:"debt_series_path"`

	// CacheSize and CacheTTLMinutes configure the period statement cache.
	CacheSize       int `mapstructure:"cache_size"`
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes"`
}

// DefaultSettings returns the defaults used when no settings file is given.
func DefaultSettings() Settings {
	return Settings{
		HierarchyTolerance:    0.005,
		SignificanceThreshold: 5,
		WarningThreshold:      20,
		MaxInsights:           10,
		RankingSize:           5,
		CacheSize:             64,
		CacheTTLMinutes:       60,
	}
}

// LoadSettings reads a settings file (any format viper understands, chosen
// by extension) over the defaults.
func LoadSettings(path string) (*Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("hierarchy_tolerance", defaults.HierarchyTolerance)
	v.SetDefault("significance_threshold", defaults.SignificanceThreshold)
	v.SetDefault("warning_threshold", defaults.WarningThreshold)
	v.SetDefault("max_insights", defaults.MaxInsights)
	v.SetDefault("ranking_size", defaults.RankingSize)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("cache_ttl_minutes", defaults.CacheTTLMinutes)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
