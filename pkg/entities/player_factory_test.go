package entities

import (
	"testing"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/config"
	"github.com/decker502/fpsproto/pkg/ecs"
	"github.com/decker502/fpsproto/pkg/systems"
)

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewPlayerEntity(em, nil, 1, 2, 3)
	if err != nil {
		t.Fatalf("NewPlayerEntity() error: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected valid entity ID")
	}

	vitals, ok := ecs.GetComponent[*components.VitalsComponent](em, id)
	if !ok {
		t.Fatal("Player should have VitalsComponent")
	}
	for name, bar := range map[string]*components.ResourceBar{
		"life": vitals.Life, "stamina": vitals.Stamina, "mana": vitals.Mana,
	} {
		if bar.Max() != 1000 || !bar.IsFull() {
			t.Errorf("Expected full %s bar of 1000, got %d/%d", name, bar.Current(), bar.Max())
		}
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 1 || pos.Y != 2 || pos.Z != 3 {
		t.Errorf("Expected position (1, 2, 3), got %+v", pos)
	}

	for name, has := range map[string]bool{
		"PlayerComponent":     ecs.HasComponent[*components.PlayerComponent](em, id),
		"MovementComponent":   ecs.HasComponent[*components.MovementComponent](em, id),
		"StaminaComponent":    ecs.HasComponent[*components.StaminaComponent](em, id),
		"CrouchComponent":     ecs.HasComponent[*components.CrouchComponent](em, id),
		"InteractorComponent": ecs.HasComponent[*components.InteractorComponent](em, id),
	} {
		if !has {
			t.Errorf("Player should have %s", name)
		}
	}

	if FindPlayer(em) != id {
		t.Errorf("FindPlayer() = %d, want %d", FindPlayer(em), id)
	}
}

func TestNewPlayerEntityNilManager(t *testing.T) {
	if _, err := NewPlayerEntity(nil, nil, 0, 0, 0); err == nil {
		t.Error("Expected error for nil entity manager")
	}
}

func TestNewPlayerEntityZeroCooldown(t *testing.T) {
	cfg := config.DefaultPlayerConfig()
	cfg.Stamina.RunCooldown = 0

	em := ecs.NewEntityManager()
	if _, err := NewPlayerEntity(em, cfg, 0, 0, 0); err == nil {
		t.Error("Expected error for zero run cooldown")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Failed creation should not leave entities, got %d", em.EntityCount())
	}
}

func TestNewPlayerEntityInvalidInterval(t *testing.T) {
	cfg := config.DefaultPlayerConfig()
	cfg.Stamina.Interval = 0

	em := ecs.NewEntityManager()
	if _, err := NewPlayerEntity(em, cfg, 0, 0, 0); err == nil {
		t.Error("Expected error for zero stamina interval")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Failed creation should not leave entities, got %d", em.EntityCount())
	}
}

func TestNewPlayerEntityClampsMax(t *testing.T) {
	cfg := config.DefaultPlayerConfig()
	cfg.Initial.Life = 99999

	em := ecs.NewEntityManager()
	id, err := NewPlayerEntity(em, cfg, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewPlayerEntity() error: %v", err)
	}

	vitals, _ := ecs.GetComponent[*components.VitalsComponent](em, id)
	if vitals.Life.Max() != components.MaxBarValue {
		t.Errorf("Expected max life clamped to %d, got %d", components.MaxBarValue, vitals.Life.Max())
	}
}

// 端到端：移动系统推进玩家的耐力调节器
func TestPlayerRegulatorWiredToMovement(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewPlayerEntity(em, nil, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewPlayerEntity() error: %v", err)
	}

	mv, _ := ecs.GetComponent[*components.MovementComponent](em, id)
	vitals, _ := ecs.GetComponent[*components.VitalsComponent](em, id)
	mv.Grounded = true
	mv.MoveForward = true
	mv.RunHeld = true

	system := systems.NewMovementSystem(em, nil)
	system.Update(0.1)

	if vitals.Stamina.Current() != 996 {
		t.Errorf("Expected one drain to 996, got %d", vitals.Stamina.Current())
	}
}
