package systems

import (
	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

// createTestWalker 创建测试用的可移动实体
// 这是一个测试辅助函数，被多个测试文件共享使用
//
// 默认状态：站在地面原点，资源全满（1000），参数与默认玩家配置一致
func createTestWalker(em *ecs.EntityManager) (ecs.EntityID, *components.MovementComponent, *components.PositionComponent, *components.VitalsComponent) {
	id := em.CreateEntity()

	mv := &components.MovementComponent{
		CanRun:          true,
		CanJump:         true,
		WalkSpeed:       1.5,
		RunSpeed:        5.0,
		JumpHeight:      1.0,
		Gravity:         -9.81,
		JumpStaminaCost: 10,
		MinFallHeight:   5,
		LifePerMeter:    20,
		Grounded:        true,
	}
	pos := &components.PositionComponent{}
	vitals := components.NewVitalsComponent(1000, 1000, 1000)

	em.AddComponent(id, mv)
	em.AddComponent(id, pos)
	em.AddComponent(id, vitals)

	return id, mv, pos, vitals
}

// createTestInteractor 创建测试用的交互者（玩家）
func createTestInteractor(em *ecs.EntityManager, x, y, z float64) (ecs.EntityID, *components.InteractorComponent, *components.VitalsComponent) {
	id := em.CreateEntity()

	interactor := &components.InteractorComponent{
		CanInteract: true,
		Range:       3.0,
	}
	vitals := components.NewVitalsComponent(1000, 1000, 1000)

	em.AddComponent(id, interactor)
	em.AddComponent(id, vitals)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y, Z: z})

	return id, interactor, vitals
}
