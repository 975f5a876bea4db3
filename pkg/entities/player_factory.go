package entities

import (
	"fmt"
	"log"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/config"
	"github.com/decker502/fpsproto/pkg/ecs"
	"github.com/decker502/fpsproto/pkg/systems"
)

// NewPlayerEntity 创建玩家实体
//
// 玩家由以下组件组成：
//   - PlayerComponent: 记录初始资源上限
//   - VitalsComponent: 生命/耐力/法力三条资源条（出生时填满）
//   - PositionComponent: 出生坐标
//   - MovementComponent: 移动参数和状态
//   - CrouchComponent / InteractorComponent: 下蹲与交互能力
//   - StaminaComponent: 耐力调节器，由 MovementSystem 每帧推进
//
// 调节器直接持有 MovementComponent 和耐力资源条，不按名称查找
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩家配置，nil 时使用默认配置
//   - x, y, z: 出生坐标
//
// 返回:
//   - ecs.EntityID: 玩家实体ID，失败时返回 0
//   - error: 创建失败时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.PlayerConfig, x, y, z float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		cfg = config.DefaultPlayerConfig()
	}

	vitals := components.NewVitalsComponent(cfg.Initial.Life, cfg.Initial.Stamina, cfg.Initial.Mana)

	movement := &components.MovementComponent{
		CanRun:             cfg.Movement.CanRun,
		CanJump:            cfg.Movement.CanJump,
		WalkSpeed:          cfg.Movement.WalkSpeed,
		RunSpeed:           cfg.Movement.RunSpeed,
		JumpHeight:         cfg.Movement.JumpHeight,
		Gravity:            cfg.Movement.Gravity,
		JumpStaminaCost:    cfg.Movement.JumpStaminaCost,
		MinFallHeight:      cfg.Fall.MinHeight,
		LifePerMeter:       cfg.Fall.LifePerMeter,
		LastGroundedHeight: y,
	}

	regulator, err := systems.NewStaminaRegulator(movement, vitals.Stamina, systems.StaminaConfig{
		Interval:       cfg.Stamina.Interval,
		Drain:          cfg.Stamina.Drain,
		Regen:          cfg.Stamina.Regen,
		ExhaustedPause: cfg.Stamina.ExhaustedPause,
		RunCooldown:    cfg.Stamina.RunCooldown,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create stamina regulator: %w", err)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PlayerComponent{})
	em.AddComponent(entityID, vitals)
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y, Z: z})
	em.AddComponent(entityID, movement)
	em.AddComponent(entityID, &components.StaminaComponent{Regulator: regulator})
	em.AddComponent(entityID, components.NewCrouchComponent(cfg.Movement.CanCrouch))
	em.AddComponent(entityID, &components.InteractorComponent{
		CanInteract: cfg.Interaction.CanInteract,
		Range:       cfg.Interaction.Range,
		Cursor:      components.CursorBase,
	})

	log.Printf("[PlayerFactory] Created player %d at (%.2f, %.2f, %.2f) life=%d stamina=%d mana=%d",
		entityID, x, y, z, vitals.Life.Max(), vitals.Stamina.Max(), vitals.Mana.Max())

	return entityID, nil
}

// FindPlayer 返回第一个玩家实体，没有玩家时返回 0
func FindPlayer(em *ecs.EntityManager) ecs.EntityID {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	if len(players) == 0 {
		return 0
	}
	return players[0]
}
