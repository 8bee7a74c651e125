package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shield.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadShieldConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *ShieldConfig)
	}{
		{
			name: "full config",
			yamlContent: `
duration: 4
cooldownDuration: 8
maxCharges: 2
width: 4
radiusIncrease: 20
color: [10, 20, 30]
`,
			validate: func(t *testing.T, cfg *ShieldConfig) {
				if cfg.Duration != 4 || cfg.CooldownDuration != 8 || cfg.MaxCharges != 2 {
					t.Errorf("unexpected timings: %+v", cfg)
				}
				if cfg.Width != 4 || cfg.RadiusIncrease != 20 {
					t.Errorf("unexpected visuals: %+v", cfg)
				}
				if c := cfg.RGBA(); c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
					t.Errorf("unexpected color: %v", c)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "duration: 7\n",
			validate: func(t *testing.T, cfg *ShieldConfig) {
				if cfg.Duration != 7 {
					t.Errorf("expected duration 7, got %v", cfg.Duration)
				}
				if cfg.CooldownDuration != ShieldCooldownDuration || cfg.MaxCharges != ShieldMaxCharges {
					t.Errorf("expected defaults for missing fields, got %+v", cfg)
				}
			},
		},
		{
			name:        "zero duration",
			yamlContent: "duration: 0\n",
			wantErr:     true,
			errContains: "duration must be positive",
		},
		{
			name:        "negative cooldown",
			yamlContent: "cooldownDuration: -1\n",
			wantErr:     true,
			errContains: "cooldownDuration must be positive",
		},
		{
			name:        "no charges",
			yamlContent: "maxCharges: 0\n",
			wantErr:     true,
			errContains: "maxCharges must be at least 1",
		},
		{
			name:        "short color",
			yamlContent: "color: [1, 2]\n",
			wantErr:     true,
			errContains: "color must have 3 components",
		},
		{
			name:        "empty file",
			yamlContent: "",
			wantErr:     true,
			errContains: "is empty",
		},
		{
			name:        "whitespace only",
			yamlContent: "\n  \n",
			wantErr:     true,
			errContains: "is empty",
		},
		{
			name:        "malformed yaml",
			yamlContent: "duration: [oops\n",
			wantErr:     true,
			errContains: "failed to parse shield config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadShieldConfig(writeConfig(t, tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadShieldConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := LoadShieldConfig(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}

	cfg, err := LoadShieldConfigOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Duration != ShieldDuration || cfg.MaxCharges != ShieldMaxCharges {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadShieldConfigOrDefaultReportsBadFile(t *testing.T) {
	_, err := LoadShieldConfigOrDefault(writeConfig(t, "maxCharges: -2\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDefaultShieldConfigIsValid(t *testing.T) {
	if err := DefaultShieldConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestShippedShieldConfigLoads(t *testing.T) {
	cfg, err := LoadShieldConfig(filepath.Join("..", "..", ShieldConfigPath))
	if err != nil {
		t.Fatalf("failed to load shipped config: %v", err)
	}
	def := DefaultShieldConfig()
	if cfg.Duration != def.Duration || cfg.CooldownDuration != def.CooldownDuration || cfg.MaxCharges != def.MaxCharges {
		t.Errorf("shipped config %+v drifted from defaults %+v", cfg, def)
	}
	if cfg.RGBA() != ShieldColor {
		t.Errorf("shipped color %v, want %v", cfg.RGBA(), ShieldColor)
	}
}
