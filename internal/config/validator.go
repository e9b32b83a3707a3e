package config

import (
	"fmt"

	"github.com/tovald/bossraid/internal/domain"
)

// Validate checks required settings and fills unset tunables with their
// domain defaults.
func Validate(cfg *Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be in range 1-65535, got %d", cfg.Port)
	}

	if cfg.MaxTapBatch < 0 || cfg.TapEnergyCost < 0 || cfg.EnergyMax < 0 || cfg.EnergyRegenPerTick < 0 {
		return fmt.Errorf("raid tuning values must be non-negative")
	}

	if cfg.MaxTapBatch == 0 {
		cfg.MaxTapBatch = domain.DefaultMaxTapBatch
	}
	if cfg.TapEnergyCost == 0 {
		cfg.TapEnergyCost = domain.DefaultTapEnergyCost
	}
	if cfg.EnergyMax == 0 {
		cfg.EnergyMax = domain.DefaultEnergyMax
	}
	if cfg.EnergyRegenPerTick == 0 {
		cfg.EnergyRegenPerTick = domain.DefaultEnergyRegenPerTick
	}
	if cfg.RespawnDelay == 0 {
		cfg.RespawnDelay = domain.DefaultRespawnDelay
	}
	if cfg.BroadcastInterval == 0 {
		cfg.BroadcastInterval = domain.DefaultBroadcastInterval
	}
	if cfg.EnergyRegenInterval == 0 {
		cfg.EnergyRegenInterval = domain.DefaultEnergyRegenInterval
	}

	if cfg.EnergyMax < cfg.TapEnergyCost*cfg.MaxTapBatch {
		return fmt.Errorf("ENERGY_MAX (%d) cannot cover a full tap batch (%d taps at cost %d)",
			cfg.EnergyMax, cfg.MaxTapBatch, cfg.TapEnergyCost)
	}

	return nil
}
