package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPlayerConfigPath 默认玩家配置文件路径
const DefaultPlayerConfigPath = "data/player.yaml"

// PlayerConfig 玩家配置
//
// 配置文件位置: data/player.yaml
type PlayerConfig struct {
	// Initial 出生时的资源上限（同时填满）
	Initial InitialVitalsConfig `yaml:"initial"`

	// Stamina 耐力调节参数
	Stamina StaminaTuning `yaml:"stamina"`

	// Movement 移动参数
	Movement MovementConfig `yaml:"movement"`

	// Fall 坠落伤害参数
	Fall FallConfig `yaml:"fall"`

	// Interaction 交互参数
	Interaction InteractionConfig `yaml:"interaction"`
}

// InitialVitalsConfig 初始资源
type InitialVitalsConfig struct {
	Life    int `yaml:"life"`
	Stamina int `yaml:"stamina"`
	Mana    int `yaml:"mana"`
}

// StaminaTuning 耐力调节参数
// Drain / Regen 按每个 Interval 结算，不是每秒
type StaminaTuning struct {
	Interval       float64 `yaml:"interval"`       // 结算间隔（秒）
	Drain          int     `yaml:"drain"`          // 奔跑每间隔消耗
	Regen          int     `yaml:"regen"`          // 着地每间隔恢复
	ExhaustedPause float64 `yaml:"exhaustedPause"` // 耗尽锁定（秒）
	RunCooldown    float64 `yaml:"runCooldown"`    // 停跑冷却（秒）
}

// MovementConfig 移动参数
type MovementConfig struct {
	WalkSpeed       float64 `yaml:"walkSpeed"`
	RunSpeed        float64 `yaml:"runSpeed"`
	JumpHeight      float64 `yaml:"jumpHeight"`
	Gravity         float64 `yaml:"gravity"`
	JumpStaminaCost int     `yaml:"jumpStaminaCost"`
	CanRun          bool    `yaml:"canRun"`
	CanJump         bool    `yaml:"canJump"`
	CanCrouch       bool    `yaml:"canCrouch"`
}

// FallConfig 坠落伤害参数
type FallConfig struct {
	MinHeight    float64 `yaml:"minHeight"`    // 超过此高度才受伤（米）
	LifePerMeter int     `yaml:"lifePerMeter"` // 每米扣除生命
}

// InteractionConfig 交互参数
type InteractionConfig struct {
	CanInteract bool    `yaml:"canInteract"`
	Range       float64 `yaml:"range"`
	HealthKit   int     `yaml:"healthKit"` // 医疗包恢复量
}

// DefaultPlayerConfig 返回默认玩家配置
func DefaultPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		Initial: InitialVitalsConfig{
			Life:    1000,
			Stamina: 1000,
			Mana:    1000,
		},
		Stamina: StaminaTuning{
			Interval:       0.1,
			Drain:          4,
			Regen:          16,
			ExhaustedPause: 1.0,
			RunCooldown:    0.25,
		},
		Movement: MovementConfig{
			WalkSpeed:       1.5,
			RunSpeed:        5.0,
			JumpHeight:      1.0,
			Gravity:         -9.81,
			JumpStaminaCost: 10,
			CanRun:          true,
			CanJump:         true,
			CanCrouch:       true,
		},
		Fall: FallConfig{
			MinHeight:    5,
			LifePerMeter: 20,
		},
		Interaction: InteractionConfig{
			CanInteract: true,
			Range:       3.0,
			HealthKit:   100,
		},
	}
}

// LoadPlayerConfig 加载玩家配置
//
// 从指定路径加载 YAML 配置；未出现的字段保留默认值
//
// 参数:
//   - path: 配置文件路径（如 "data/player.yaml"）
//
// 返回:
//   - *PlayerConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadPlayerConfig(path string) (*PlayerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player config: %w", err)
	}
	return ParsePlayerConfig(data)
}

// ParsePlayerConfig 从 YAML 数据解析玩家配置
func ParsePlayerConfig(data []byte) (*PlayerConfig, error) {
	config := DefaultPlayerConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse player config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid player config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 资源上限超出范围不是错误（资源条会自动截断），
// 但计时参数和物理参数必须合理
func (c *PlayerConfig) Validate() error {
	if c.Stamina.Interval <= 0 {
		return fmt.Errorf("stamina interval must be > 0, got %.3f", c.Stamina.Interval)
	}
	if c.Stamina.Drain < 0 || c.Stamina.Regen < 0 {
		return fmt.Errorf("stamina drain/regen must be >= 0, got %d/%d", c.Stamina.Drain, c.Stamina.Regen)
	}
	// 暂停时长为 0 的 Pause 是无限暂停，调节器将无法恢复
	if c.Stamina.ExhaustedPause <= 0 || c.Stamina.RunCooldown <= 0 {
		return fmt.Errorf("stamina pauses must be > 0, got %.2f/%.2f",
			c.Stamina.ExhaustedPause, c.Stamina.RunCooldown)
	}

	if c.Movement.WalkSpeed < 0 || c.Movement.RunSpeed < 0 {
		return fmt.Errorf("speeds must be >= 0, got walk=%.2f run=%.2f", c.Movement.WalkSpeed, c.Movement.RunSpeed)
	}
	if c.Movement.Gravity >= 0 {
		return fmt.Errorf("gravity must be negative, got %.2f", c.Movement.Gravity)
	}
	if c.Movement.JumpHeight < 0 {
		return fmt.Errorf("jump height must be >= 0, got %.2f", c.Movement.JumpHeight)
	}

	if c.Fall.MinHeight < 0 || c.Fall.LifePerMeter < 0 {
		return fmt.Errorf("fall config must be >= 0, got minHeight=%.2f lifePerMeter=%d",
			c.Fall.MinHeight, c.Fall.LifePerMeter)
	}

	if c.Interaction.Range < 0 {
		return fmt.Errorf("interaction range must be >= 0, got %.2f", c.Interaction.Range)
	}

	return nil
}
