package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLevelConfigPath 默认场景配置文件路径
const DefaultLevelConfigPath = "data/level.yaml"

// Vec3 三维坐标，YAML 中写作 [x, y, z]
type Vec3 [3]float64

// Vec2 水平坐标，YAML 中写作 [x, z]
type Vec2 [2]float64

// LevelConfig 场景布局配置
// 定义出生点、平台、医疗包、屏幕和低矮区域
type LevelConfig struct {
	Name        string             `yaml:"name"`        // 场景名称
	Spawn       Vec3               `yaml:"spawn"`       // 玩家出生点
	Platforms   []PlatformConfig   `yaml:"platforms"`   // 平台（地面高度）
	HealthKits  []HealthKitConfig  `yaml:"healthKits"`  // 医疗包
	Screens     []ScreenConfig     `yaml:"screens"`     // 屏幕
	CrouchAreas []CrouchAreaConfig `yaml:"crouchAreas"` // 低矮区域
}

// PlatformConfig 水平平台
type PlatformConfig struct {
	Min    Vec2    `yaml:"min"`    // [minX, minZ]
	Max    Vec2    `yaml:"max"`    // [maxX, maxZ]
	Height float64 `yaml:"height"` // 顶面高度
}

// HealthKitConfig 医疗包
type HealthKitConfig struct {
	Position Vec3 `yaml:"position"`
	Heal     int  `yaml:"heal"` // 可选，0 表示使用玩家配置中的 interaction.healthKit
}

// ScreenConfig 屏幕
type ScreenConfig struct {
	Position        Vec3 `yaml:"position"`
	CanBeInteracted bool `yaml:"canBeInteracted"`
	IsOn            bool `yaml:"isOn"`
}

// CrouchAreaConfig 低矮区域（轴对齐包围盒）
type CrouchAreaConfig struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// LoadLevelConfig 从YAML文件加载场景配置
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}
	return ParseLevelConfig(data)
}

// ParseLevelConfig 从 YAML 数据解析场景配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	return &levelConfig, nil
}

// validateLevelConfig 验证场景配置
func validateLevelConfig(config *LevelConfig) error {
	for i, p := range config.Platforms {
		if p.Min[0] > p.Max[0] || p.Min[1] > p.Max[1] {
			return fmt.Errorf("platform %d: min %v must not exceed max %v", i, p.Min, p.Max)
		}
	}

	for i, kit := range config.HealthKits {
		if kit.Heal < 0 {
			return fmt.Errorf("health kit %d: heal must be >= 0, got %d", i, kit.Heal)
		}
	}

	for i, area := range config.CrouchAreas {
		for axis := 0; axis < 3; axis++ {
			if area.Min[axis] > area.Max[axis] {
				return fmt.Errorf("crouch area %d: min %v must not exceed max %v", i, area.Min, area.Max)
			}
		}
	}

	return nil
}
