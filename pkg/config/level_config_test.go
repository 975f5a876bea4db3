package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevelConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *LevelConfig)
	}{
		{
			name: "full level",
			yamlContent: `
name: "Test"
spawn: [1, 2, 3]
platforms:
  - min: [-1, -1]
    max: [1, 1]
    height: 4
healthKits:
  - position: [0, 0, 5]
  - position: [1, 0, 5]
    heal: 50
screens:
  - position: [0, 1, 8]
    canBeInteracted: true
crouchAreas:
  - min: [0, 0, 0]
    max: [1, 1, 1]
`,
			validate: func(t *testing.T, cfg *LevelConfig) {
				if cfg.Spawn != (Vec3{1, 2, 3}) {
					t.Errorf("expected spawn [1 2 3], got %v", cfg.Spawn)
				}
				if len(cfg.Platforms) != 1 || cfg.Platforms[0].Height != 4 {
					t.Errorf("unexpected platforms: %+v", cfg.Platforms)
				}
				if len(cfg.HealthKits) != 2 || cfg.HealthKits[1].Heal != 50 {
					t.Errorf("unexpected health kits: %+v", cfg.HealthKits)
				}
				if len(cfg.Screens) != 1 || !cfg.Screens[0].CanBeInteracted || cfg.Screens[0].IsOn {
					t.Errorf("unexpected screens: %+v", cfg.Screens)
				}
				if len(cfg.CrouchAreas) != 1 || cfg.CrouchAreas[0].Max != (Vec3{1, 1, 1}) {
					t.Errorf("unexpected crouch areas: %+v", cfg.CrouchAreas)
				}
			},
		},
		{
			name:        "inverted crouch area",
			yamlContent: "crouchAreas:\n  - min: [0, 2, 0]\n    max: [1, 1, 1]\n",
			wantErr:     true,
			errContains: "crouch area 0",
		},
		{
			name:        "inverted platform",
			yamlContent: "platforms:\n  - min: [3, 0]\n    max: [1, 1]\n",
			wantErr:     true,
			errContains: "platform 0",
		},
		{
			name:        "negative heal",
			yamlContent: "healthKits:\n  - position: [0, 0, 0]\n    heal: -5\n",
			wantErr:     true,
			errContains: "health kit 0",
		},
		{
			name:        "wrong vector length",
			yamlContent: "spawn: [1, 2]\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseLevelConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestShippedLevelConfig(t *testing.T) {
	cfg, err := LoadLevelConfig(filepath.Join("..", "..", DefaultLevelConfigPath))
	if err != nil {
		t.Fatalf("failed to load shipped level config: %v", err)
	}
	if len(cfg.HealthKits) == 0 || len(cfg.Screens) == 0 || len(cfg.CrouchAreas) == 0 {
		t.Errorf("shipped level should contain every prop type, got %+v", cfg)
	}
}
