package systems

import (
	"log"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

// CrouchAreaSystem 下蹲与低矮区域系统
//
// 职责：
//  1. 根据下蹲键更新 IsCrouched
//  2. 检测实体进入/离开低矮区域（轴对齐包围盒触发器）
//  3. 区域内禁止起身；离开最后一个区域时，若下蹲键已松开则自动起身
type CrouchAreaSystem struct {
	entityManager *ecs.EntityManager
}

// NewCrouchAreaSystem 创建下蹲区域系统
func NewCrouchAreaSystem(em *ecs.EntityManager) *CrouchAreaSystem {
	return &CrouchAreaSystem{entityManager: em}
}

// Update 更新所有可下蹲实体
func (s *CrouchAreaSystem) Update(deltaTime float64) {
	crouchers := ecs.GetEntitiesWith2[*components.CrouchComponent, *components.PositionComponent](s.entityManager)
	if len(crouchers) == 0 {
		return
	}
	areas := ecs.GetEntitiesWith1[*components.CrouchAreaComponent](s.entityManager)

	for _, id := range crouchers {
		crouch, _ := ecs.GetComponent[*components.CrouchComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		s.updateCrouchInput(crouch)
		s.updateAreas(id, crouch, pos, areas)
	}
}

// updateCrouchInput 下蹲键按下即下蹲；松开时只有允许起身才起身
func (s *CrouchAreaSystem) updateCrouchInput(crouch *components.CrouchComponent) {
	if !crouch.CanCrouch {
		return
	}
	if crouch.CrouchHeld {
		crouch.IsCrouched = true
		return
	}
	if crouch.CanUncrouch {
		crouch.Uncrouch()
	}
}

func (s *CrouchAreaSystem) updateAreas(id ecs.EntityID, crouch *components.CrouchComponent, pos *components.PositionComponent, areas []ecs.EntityID) {
	if crouch.InsideAreas == nil {
		crouch.InsideAreas = make(map[ecs.EntityID]bool)
	}

	current := make(map[ecs.EntityID]bool, len(areas))
	for _, areaID := range areas {
		area, _ := ecs.GetComponent[*components.CrouchAreaComponent](s.entityManager, areaID)
		if !area.Contains(pos.X, pos.Y, pos.Z) {
			continue
		}
		current[areaID] = true

		if !crouch.InsideAreas[areaID] {
			crouch.InsideAreas[areaID] = true
			crouch.CanUncrouch = false
			log.Printf("[CrouchAreaSystem] Entity %d entered crouch area %d", id, areaID)
		}
	}

	// 离开（包括区域实体被销毁）
	exited := false
	for areaID := range crouch.InsideAreas {
		if !current[areaID] {
			delete(crouch.InsideAreas, areaID)
			exited = true
			log.Printf("[CrouchAreaSystem] Entity %d left crouch area %d", id, areaID)
		}
	}

	if exited && len(crouch.InsideAreas) == 0 {
		crouch.CanUncrouch = true
		if !crouch.CrouchHeld {
			crouch.Uncrouch()
		}
	}
}
