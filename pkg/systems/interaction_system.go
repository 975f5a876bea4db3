package systems

import (
	"log"
	"math"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

// InteractionSystem 交互系统
//
// 每帧为每个交互者（玩家）选择交互目标：
// 交互距离内最近的可交互实体。目标拒绝交互时显示禁止准星，且不作为目标。
//
// 交互键按下（边沿）且有目标 → Interact；
// 交互键松开且正在交互 → Uninteract；
// 交互中目标丢失 → 对上一个目标 Uninteract。
type InteractionSystem struct {
	entityManager *ecs.EntityManager
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(em *ecs.EntityManager) *InteractionSystem {
	return &InteractionSystem{entityManager: em}
}

// Update 更新所有交互者
func (s *InteractionSystem) Update(deltaTime float64) {
	interactors := ecs.GetEntitiesWith3[
		*components.InteractorComponent,
		*components.PositionComponent,
		*components.VitalsComponent,
	](s.entityManager)

	for _, id := range interactors {
		interactor, _ := ecs.GetComponent[*components.InteractorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vitals, _ := ecs.GetComponent[*components.VitalsComponent](s.entityManager, id)

		s.updateTarget(id, interactor, pos, vitals)
		s.handleInput(id, interactor, vitals)
	}
}

// updateTarget 重新选择目标并更新准星
func (s *InteractionSystem) updateTarget(id ecs.EntityID, interactor *components.InteractorComponent, pos *components.PositionComponent, vitals *components.VitalsComponent) {
	interactor.PreviousTarget = interactor.Target
	interactor.Target = 0
	interactor.Cursor = components.CursorBase

	if interactor.CanInteract {
		if candidate := s.findNearest(id, pos, interactor.Range); candidate != 0 {
			if s.canInteract(candidate, vitals) {
				interactor.Cursor = components.CursorInteract
				interactor.Target = candidate
			} else {
				interactor.Cursor = components.CursorForbidden
			}
		}
	}

	if interactor.PreviousTarget != 0 && interactor.Target == 0 && interactor.InInteraction {
		s.uninteract(id, interactor.PreviousTarget)
		interactor.InInteraction = false
	}
}

// handleInput 处理交互键的按下/松开边沿
func (s *InteractionSystem) handleInput(id ecs.EntityID, interactor *components.InteractorComponent, vitals *components.VitalsComponent) {
	pressed := interactor.InteractHeld && !interactor.PrevInteractHeld
	released := !interactor.InteractHeld && interactor.PrevInteractHeld
	interactor.PrevInteractHeld = interactor.InteractHeld

	switch {
	case pressed && !interactor.InInteraction && interactor.Target != 0:
		interactor.InInteraction = true
		s.interact(id, interactor.Target, vitals)

	case released && interactor.InInteraction:
		interactor.InInteraction = false
		if interactor.Target != 0 {
			s.uninteract(id, interactor.Target)
		}
	}
}

// findNearest 返回距离内最近的可交互实体，没有则返回 0
// 距离相同时取 ID 较小者；已标记删除的实体不参与
func (s *InteractionSystem) findNearest(self ecs.EntityID, pos *components.PositionComponent, maxRange float64) ecs.EntityID {
	candidates := ecs.GetEntitiesWith2[*components.InteractableComponent, *components.PositionComponent](s.entityManager)

	best := ecs.EntityID(0)
	bestDist := math.Inf(1)
	for _, candidate := range candidates {
		if candidate == self || s.entityManager.IsMarkedForDestroy(candidate) {
			continue
		}
		target, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, candidate)
		dist := math.Sqrt(
			(target.X-pos.X)*(target.X-pos.X) +
				(target.Y-pos.Y)*(target.Y-pos.Y) +
				(target.Z-pos.Z)*(target.Z-pos.Z))
		if dist <= maxRange && dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

// canInteract 目标当前是否接受交互
func (s *InteractionSystem) canInteract(target ecs.EntityID, vitals *components.VitalsComponent) bool {
	if _, ok := ecs.GetComponent[*components.HealthKitComponent](s.entityManager, target); ok {
		return !vitals.Life.IsFull()
	}
	if screen, ok := ecs.GetComponent[*components.ScreenComponent](s.entityManager, target); ok {
		return screen.CanBeInteracted
	}
	return true
}

// interact 执行目标的交互效果
func (s *InteractionSystem) interact(id, target ecs.EntityID, vitals *components.VitalsComponent) {
	name := ""
	if tag, ok := ecs.GetComponent[*components.InteractableComponent](s.entityManager, target); ok {
		name = tag.Name
	}

	if kit, ok := ecs.GetComponent[*components.HealthKitComponent](s.entityManager, target); ok {
		vitals.Life.Add(kit.Heal)
		s.entityManager.DestroyEntity(target)
		log.Printf("[InteractionSystem] Entity %d used %s (%d): +%d life (%d/%d)",
			id, name, target, kit.Heal, vitals.Life.Current(), vitals.Life.Max())
		return
	}

	if screen, ok := ecs.GetComponent[*components.ScreenComponent](s.entityManager, target); ok {
		if !screen.CanBeInteracted {
			return
		}
		screen.IsOn = !screen.IsOn
		if screen.IsOn {
			screen.LightIntensity = components.ScreenOnIntensity
		} else {
			screen.LightIntensity = 0
		}
		log.Printf("[InteractionSystem] Entity %d switched %s (%d) on=%v", id, name, target, screen.IsOn)
		return
	}

	log.Printf("[InteractionSystem] Entity %d interacted with %s (%d)", id, name, target)
}

// uninteract 结束交互；医疗包和屏幕都没有结束效果
func (s *InteractionSystem) uninteract(id, target ecs.EntityID) {
	log.Printf("[InteractionSystem] Entity %d stopped interacting with %d", id, target)
}
