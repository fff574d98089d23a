package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/focusnest/focusgate/internal/domain"
)

// TiersFile is the on-disk shape of a tier tuning override.
type TiersFile struct {
	Tiers []domain.TierConfig `yaml:"tiers" validate:"required,min=1,dive"`
}

// LoadTierConfigs reads a tier override file. An empty path means no
// override; callers fall back to the built-in ladder. The file must list
// every tier it wants to exist; completeness is checked where the set is
// assembled.
func LoadTierConfigs(path string) ([]domain.TierConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tiers config: %w", err)
	}

	var file TiersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tiers config: %w", err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid tiers config: %w", err)
	}
	return file.Tiers, nil
}
