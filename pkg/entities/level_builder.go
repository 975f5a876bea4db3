package entities

import (
	"fmt"
	"log"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/config"
	"github.com/decker502/fpsproto/pkg/ecs"
	"github.com/decker502/fpsproto/pkg/systems"
)

// BuildLevel 按场景配置创建玩家和全部道具
//
// 参数:
//   - em: 实体管理器
//   - level: 场景布局
//   - playerCfg: 玩家配置，nil 时使用默认配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - systems.PlatformGround: 场景的地面（平台）描述，交给 MovementSystem
//   - error: 任一实体创建失败时返回错误，已创建的实体会被删除
func BuildLevel(em *ecs.EntityManager, level *config.LevelConfig, playerCfg *config.PlayerConfig) (ecs.EntityID, systems.PlatformGround, error) {
	var ground systems.PlatformGround
	if level == nil {
		return 0, ground, fmt.Errorf("level config cannot be nil")
	}
	if playerCfg == nil {
		playerCfg = config.DefaultPlayerConfig()
	}

	for _, p := range level.Platforms {
		ground.Platforms = append(ground.Platforms, systems.Platform{
			MinX: p.Min[0], MinZ: p.Min[1],
			MaxX: p.Max[0], MaxZ: p.Max[1],
			Height: p.Height,
		})
	}

	playerID, err := NewPlayerEntity(em, playerCfg, level.Spawn[0], level.Spawn[1], level.Spawn[2])
	if err != nil {
		return 0, ground, fmt.Errorf("failed to create player: %w", err)
	}
	created := []ecs.EntityID{playerID}

	for i, kit := range level.HealthKits {
		heal := kit.Heal
		if heal == 0 {
			heal = playerCfg.Interaction.HealthKit
		}
		id, err := NewHealthKitEntity(em, heal, kit.Position[0], kit.Position[1], kit.Position[2])
		if err != nil {
			discardEntities(em, created)
			return 0, ground, fmt.Errorf("failed to create health kit %d: %w", i, err)
		}
		created = append(created, id)
	}

	for i, screen := range level.Screens {
		id, err := NewScreenEntity(em, screen.CanBeInteracted, screen.IsOn,
			screen.Position[0], screen.Position[1], screen.Position[2])
		if err != nil {
			discardEntities(em, created)
			return 0, ground, fmt.Errorf("failed to create screen %d: %w", i, err)
		}
		created = append(created, id)
	}

	for i, area := range level.CrouchAreas {
		minCorner := components.PositionComponent{X: area.Min[0], Y: area.Min[1], Z: area.Min[2]}
		maxCorner := components.PositionComponent{X: area.Max[0], Y: area.Max[1], Z: area.Max[2]}
		id, err := NewCrouchAreaEntity(em, minCorner, maxCorner)
		if err != nil {
			discardEntities(em, created)
			return 0, ground, fmt.Errorf("failed to create crouch area %d: %w", i, err)
		}
		created = append(created, id)
	}

	log.Printf("[LevelBuilder] Built level %q: %d platforms, %d health kits, %d screens, %d crouch areas",
		level.Name, len(level.Platforms), len(level.HealthKits), len(level.Screens), len(level.CrouchAreas))

	return playerID, ground, nil
}

// discardEntities 立即删除构建失败前已创建的实体
// 只在场景构建时调用，此时不存在其他待删除实体
func discardEntities(em *ecs.EntityManager, ids []ecs.EntityID) {
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	removed := em.RemoveMarkedEntities()
	log.Printf("[LevelBuilder] Build failed, discarded %d entities", removed)
}
