// Package content loads static game content. Bosses are data, not code:
// the rotation lives in a JSON file so designers can retune without a
// deploy.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tovald/bossraid/internal/domain"
)

// RosterConfig is the on-disk shape of the boss rotation.
type RosterConfig struct {
	Bosses []domain.BossDefinition `json:"bosses"`
}

// RosterLoader loads and validates the boss rotation.
type RosterLoader struct{}

// NewRosterLoader creates a new RosterLoader
func NewRosterLoader() *RosterLoader {
	return &RosterLoader{}
}

// Load reads the roster file from disk.
func (l *RosterLoader) Load(path string) (*RosterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boss roster: %w", err)
	}

	var cfg RosterConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse boss roster: %w", err)
	}

	return &cfg, nil
}

// Validate checks the roster for content mistakes that would corrupt an
// encounter: empty rotation, duplicate ids, non-positive HP, negative
// defense.
func (l *RosterLoader) Validate(cfg *RosterConfig) error {
	if len(cfg.Bosses) == 0 {
		return fmt.Errorf("boss roster is empty")
	}

	seen := make(map[string]bool, len(cfg.Bosses))
	for i, b := range cfg.Bosses {
		if b.ID == "" {
			return fmt.Errorf("boss at index %d has no id", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate boss id %q", b.ID)
		}
		seen[b.ID] = true

		if b.Name == "" {
			return fmt.Errorf("boss %q has no name", b.ID)
		}
		if b.MaxHP < 1 {
			return fmt.Errorf("boss %q has invalid max hp %d", b.ID, b.MaxHP)
		}
		if b.Defense < 0 {
			return fmt.Errorf("boss %q has negative defense %d", b.ID, b.Defense)
		}
	}

	return nil
}
