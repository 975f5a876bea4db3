package systems

import (
	"errors"
	"log"

	"github.com/decker502/fpsproto/pkg/timer"
)

var (
	// ErrNilMovementState 调节器缺少移动状态来源
	ErrNilMovementState = errors.New("stamina regulator: movement state is nil")
	// ErrNilStaminaPool 调节器缺少耐力资源
	ErrNilStaminaPool = errors.New("stamina regulator: stamina pool is nil")
	// ErrInvalidInterval 结算间隔必须大于 0
	ErrInvalidInterval = errors.New("stamina regulator: interval must be > 0")
	// ErrInvalidPause 耗尽锁定和停跑冷却必须大于 0（Pause(0) 不会自动恢复）
	ErrInvalidPause = errors.New("stamina regulator: exhausted pause and run cooldown must be > 0")
)

// MovementState 调节器需要的移动状态查询能力
type MovementState interface {
	IsMoving() bool
	IsRunning() bool
	IsGrounded() bool
}

// StaminaPool 调节器需要的耐力资源操作
// components.ResourceBar 实现此接口
type StaminaPool interface {
	Add(qty int)
	Subtract(qty int)
	IsEmpty() bool
}

// StaminaConfig 耐力调节参数
type StaminaConfig struct {
	Interval       float64 // 每次结算的间隔（秒）
	Drain          int     // 奔跑时每个间隔消耗
	Regen          int     // 着地静止/行走时每个间隔恢复
	ExhaustedPause float64 // 耐力耗尽后的锁定时间（秒）
	RunCooldown    float64 // 停止奔跑后开始恢复前的等待（秒）
}

// DefaultStaminaConfig 返回默认耐力参数
func DefaultStaminaConfig() StaminaConfig {
	return StaminaConfig{
		Interval:       0.1,
		Drain:          4,
		Regen:          16,
		ExhaustedPause: 1.0,
		RunCooldown:    0.25,
	}
}

// StaminaRegulator 耐力调节器
//
// 内部计时器每个 Interval 结算一次，按以下顺序（互斥，顺序敏感）：
//  1. 移动且奔跑：消耗 Drain，耗尽则暂停 ExhaustedPause
//  2. 上一次结算在奔跑：暂停 RunCooldown，本次不消耗也不恢复
//  3. 着地：恢复 Regen
//  4. 其他（空中且未奔跑）：不变
type StaminaRegulator struct {
	movement MovementState
	stamina  StaminaPool
	config   StaminaConfig
	timer    *timer.Timer

	previouslyRunning bool
}

// NewStaminaRegulator 创建耐力调节器
//
// 参数：
//   - movement: 移动状态来源，不能为 nil
//   - stamina: 被调节的耐力资源，不能为 nil
//   - config: 调节参数，Interval 必须大于 0
//
// 返回：
//   - *StaminaRegulator: 已开始计时的调节器
//   - error: 依赖缺失或间隔非法时返回对应的哨兵错误
func NewStaminaRegulator(movement MovementState, stamina StaminaPool, config StaminaConfig) (*StaminaRegulator, error) {
	if movement == nil {
		return nil, ErrNilMovementState
	}
	if stamina == nil {
		return nil, ErrNilStaminaPool
	}
	if config.Interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if config.ExhaustedPause <= 0 || config.RunCooldown <= 0 {
		return nil, ErrInvalidPause
	}

	r := &StaminaRegulator{
		movement: movement,
		stamina:  stamina,
		config:   config,
	}
	r.timer = timer.New(config.Interval, timer.Hooks{
		OnEnd:           r.onInterval,
		OnEndTimedPause: r.onResume,
	})

	return r, nil
}

// Update 推进内部计时器，每帧调用一次
func (r *StaminaRegulator) Update(deltaTime float64) {
	r.timer.Update(deltaTime)
}

// IsPlaying 调节器是否处于计时状态
// 耗尽锁定或停跑冷却期间返回 false，移动系统据此禁止奔跑
func (r *StaminaRegulator) IsPlaying() bool {
	return r.timer.IsPlaying()
}

// State 返回内部计时器状态
func (r *StaminaRegulator) State() timer.State {
	return r.timer.State()
}

// PauseRemaining 返回当前定时暂停剩余时间
func (r *StaminaRegulator) PauseRemaining() float64 {
	return r.timer.PauseRemaining()
}

// PauseDuration 返回当前定时暂停的总时长
func (r *StaminaRegulator) PauseDuration() float64 {
	return r.timer.PauseDuration()
}

// PreviouslyRunning 上一次结算时是否在奔跑
func (r *StaminaRegulator) PreviouslyRunning() bool {
	return r.previouslyRunning
}

// onInterval 每个间隔的结算
func (r *StaminaRegulator) onInterval(t *timer.Timer) {
	switch {
	case r.movement.IsMoving() && r.movement.IsRunning():
		r.previouslyRunning = true
		r.stamina.Subtract(r.config.Drain)

		if r.stamina.IsEmpty() {
			log.Printf("[StaminaRegulator] Stamina exhausted, locked for %.2fs", r.config.ExhaustedPause)
			t.Pause(r.config.ExhaustedPause)
		}

	case r.previouslyRunning:
		r.previouslyRunning = false
		t.Pause(r.config.RunCooldown)

	case r.movement.IsGrounded():
		r.stamina.Add(r.config.Regen)
	}
}

func (r *StaminaRegulator) onResume(*timer.Timer) {
	log.Printf("[StaminaRegulator] Stamina regulation resumed")
}
