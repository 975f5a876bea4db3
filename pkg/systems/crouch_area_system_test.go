package systems

import (
	"testing"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

func createTestCrouchArea(em *ecs.EntityManager, minX, maxX float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.CrouchAreaComponent{
		MinX: minX, MinY: 0, MinZ: -1,
		MaxX: maxX, MaxY: 2, MaxZ: 1,
	})
	return id
}

func createTestCroucher(em *ecs.EntityManager) (*components.CrouchComponent, *components.PositionComponent) {
	id := em.CreateEntity()
	crouch := components.NewCrouchComponent(true)
	pos := &components.PositionComponent{X: -5}
	em.AddComponent(id, crouch)
	em.AddComponent(id, pos)
	return crouch, pos
}

func TestCrouchHeldAndReleased(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCrouchAreaSystem(em)
	crouch, _ := createTestCroucher(em)

	crouch.CrouchHeld = true
	system.Update(0.016)
	if !crouch.IsCrouched {
		t.Fatal("Expected crouched while held")
	}

	crouch.CrouchHeld = false
	system.Update(0.016)
	if crouch.IsCrouched {
		t.Error("Expected standing after release outside areas")
	}
}

func TestCrouchDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCrouchAreaSystem(em)
	crouch, _ := createTestCroucher(em)
	crouch.CanCrouch = false

	crouch.CrouchHeld = true
	system.Update(0.016)
	if crouch.IsCrouched {
		t.Error("CanCrouch=false should ignore crouch input")
	}
}

func TestCrouchAreaBlocksUncrouch(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCrouchAreaSystem(em)
	createTestCrouchArea(em, 0, 4)
	crouch, pos := createTestCroucher(em)

	crouch.CrouchHeld = true
	pos.X = 1
	system.Update(0.016)
	if crouch.CanUncrouch {
		t.Fatal("CanUncrouch should be false inside area")
	}

	// 区域内松开下蹲键：保持下蹲
	crouch.CrouchHeld = false
	system.Update(0.016)
	if !crouch.IsCrouched {
		t.Fatal("Player should stay crouched inside area")
	}

	// 离开区域：自动起身
	pos.X = 6
	system.Update(0.016)
	if !crouch.CanUncrouch {
		t.Error("CanUncrouch should be true after leaving")
	}
	if crouch.IsCrouched {
		t.Error("Player should uncrouch when leaving with crouch released")
	}
}

func TestLeaveAreaWhileHoldingCrouch(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCrouchAreaSystem(em)
	createTestCrouchArea(em, 0, 4)
	crouch, pos := createTestCroucher(em)

	crouch.CrouchHeld = true
	pos.X = 1
	system.Update(0.016)

	pos.X = 6
	system.Update(0.016)
	if !crouch.IsCrouched {
		t.Error("Player holding crouch should stay crouched after leaving")
	}

	crouch.CrouchHeld = false
	system.Update(0.016)
	if crouch.IsCrouched {
		t.Error("Player should stand after releasing outside areas")
	}
}

func TestOverlappingCrouchAreas(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCrouchAreaSystem(em)
	createTestCrouchArea(em, 0, 4)
	createTestCrouchArea(em, 3, 8)
	crouch, pos := createTestCroucher(em)

	crouch.CrouchHeld = true
	pos.X = 3.5 // 同时在两个区域内
	system.Update(0.016)
	if len(crouch.InsideAreas) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(crouch.InsideAreas))
	}

	crouch.CrouchHeld = false
	pos.X = 6 // 离开第一个，仍在第二个内
	system.Update(0.016)
	if crouch.CanUncrouch {
		t.Error("CanUncrouch should stay false while inside another area")
	}
	if !crouch.IsCrouched {
		t.Error("Player should stay crouched inside the second area")
	}

	pos.X = 10
	system.Update(0.016)
	if !crouch.CanUncrouch || crouch.IsCrouched {
		t.Errorf("Expected standing after leaving all areas, canUncrouch=%v crouched=%v",
			crouch.CanUncrouch, crouch.IsCrouched)
	}
}

func TestDestroyedCrouchAreaCountsAsExit(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCrouchAreaSystem(em)
	areaID := createTestCrouchArea(em, 0, 4)
	crouch, pos := createTestCroucher(em)

	pos.X = 1
	system.Update(0.016)
	if crouch.CanUncrouch {
		t.Fatal("CanUncrouch should be false inside area")
	}

	em.DestroyEntity(areaID)
	em.RemoveMarkedEntities()
	system.Update(0.016)

	if !crouch.CanUncrouch {
		t.Error("Removing the area should release the player")
	}
}

func TestCrouchAreaContainsInclusive(t *testing.T) {
	area := &components.CrouchAreaComponent{MinX: 0, MinY: 0, MinZ: 0, MaxX: 1, MaxY: 1, MaxZ: 1}

	tests := []struct {
		name    string
		x, y, z float64
		want    bool
	}{
		{"center", 0.5, 0.5, 0.5, true},
		{"min corner", 0, 0, 0, true},
		{"max corner", 1, 1, 1, true},
		{"outside x", 1.01, 0.5, 0.5, false},
		{"below", 0.5, -0.1, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := area.Contains(tt.x, tt.y, tt.z); got != tt.want {
				t.Errorf("Contains(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
			}
		})
	}
}
