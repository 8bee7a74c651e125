package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// ShieldConfig holds the tunable shield parameters loaded from data/shield.yaml.
type ShieldConfig struct {
	Duration         float64 `yaml:"duration"`
	CooldownDuration float64 `yaml:"cooldownDuration"`
	MaxCharges       int     `yaml:"maxCharges"`
	Width            int     `yaml:"width"`
	RadiusIncrease   int     `yaml:"radiusIncrease"`
	Color            []uint8 `yaml:"color"` // [r, g, b]
}

// DefaultShieldConfig возвращает конфигурацию, совпадающую с константами пакета.
func DefaultShieldConfig() *ShieldConfig {
	return &ShieldConfig{
		Duration:         ShieldDuration,
		CooldownDuration: ShieldCooldownDuration,
		MaxCharges:       ShieldMaxCharges,
		Width:            ShieldWidth,
		RadiusIncrease:   ShieldRadiusIncrease,
		Color:            []uint8{ShieldColor.R, ShieldColor.G, ShieldColor.B},
	}
}

// LoadShieldConfig reads and validates a shield config file.
// Fields missing from the file keep their default values.
func LoadShieldConfig(path string) (*ShieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shield config: %w", err)
	}
	// пустой файл молча вернул бы все значения по умолчанию
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("shield config %s is empty", path)
	}

	cfg := DefaultShieldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse shield config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shield config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadShieldConfigOrDefault загружает конфиг, а если файла нет — возвращает значения по умолчанию.
// Ошибка разбора или валидации возвращается как есть.
func LoadShieldConfigOrDefault(path string) (*ShieldConfig, error) {
	cfg, err := LoadShieldConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("shield config %s not found, using defaults", path)
		return DefaultShieldConfig(), nil
	}
	return cfg, err
}

// Validate checks that the config keeps the shield state machine well-formed.
func (c *ShieldConfig) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	if c.CooldownDuration <= 0 {
		return fmt.Errorf("cooldownDuration must be positive, got %v", c.CooldownDuration)
	}
	if c.MaxCharges < 1 {
		return fmt.Errorf("maxCharges must be at least 1, got %d", c.MaxCharges)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.RadiusIncrease < 0 {
		return fmt.Errorf("radiusIncrease must not be negative, got %d", c.RadiusIncrease)
	}
	if len(c.Color) != 3 {
		return fmt.Errorf("color must have 3 components, got %d", len(c.Color))
	}
	return nil
}

// RGBA returns the configured shield colour as an opaque color.RGBA.
func (c *ShieldConfig) RGBA() color.RGBA {
	return color.RGBA{c.Color[0], c.Color[1], c.Color[2], 255}
}
