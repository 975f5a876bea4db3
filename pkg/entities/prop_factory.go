package entities

import (
	"fmt"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

// NewHealthKitEntity 创建医疗包
// 玩家生命未满时可拾取，拾取后恢复 heal 点生命并销毁
func NewHealthKitEntity(em *ecs.EntityManager, heal int, x, y, z float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if heal < 0 {
		return 0, fmt.Errorf("invalid heal amount %d, must be >= 0", heal)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.InteractableComponent{Name: "HealthKit"})
	em.AddComponent(entityID, &components.HealthKitComponent{Heal: heal})
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y, Z: z})

	return entityID, nil
}

// NewScreenEntity 创建可开关的屏幕
func NewScreenEntity(em *ecs.EntityManager, canBeInteracted, isOn bool, x, y, z float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	screen := &components.ScreenComponent{
		CanBeInteracted: canBeInteracted,
		IsOn:            isOn,
	}
	if isOn {
		screen.LightIntensity = components.ScreenOnIntensity
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.InteractableComponent{Name: "Screen"})
	em.AddComponent(entityID, screen)
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y, Z: z})

	return entityID, nil
}

// NewCrouchAreaEntity 创建低矮区域（轴对齐包围盒）
// minCorner 的每个分量必须不大于 maxCorner 的对应分量
func NewCrouchAreaEntity(em *ecs.EntityManager, minCorner, maxCorner components.PositionComponent) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if minCorner.X > maxCorner.X || minCorner.Y > maxCorner.Y || minCorner.Z > maxCorner.Z {
		return 0, fmt.Errorf("invalid crouch area bounds: min (%.2f, %.2f, %.2f) > max (%.2f, %.2f, %.2f)",
			minCorner.X, minCorner.Y, minCorner.Z, maxCorner.X, maxCorner.Y, maxCorner.Z)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.CrouchAreaComponent{
		MinX: minCorner.X, MinY: minCorner.Y, MinZ: minCorner.Z,
		MaxX: maxCorner.X, MaxY: maxCorner.Y, MaxZ: maxCorner.Z,
	})

	return entityID, nil
}
