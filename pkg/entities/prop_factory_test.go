package entities

import (
	"testing"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

func TestNewHealthKitEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewHealthKitEntity(em, 100, 1, 0, 1)
	if err != nil {
		t.Fatalf("NewHealthKitEntity() error: %v", err)
	}

	kit, ok := ecs.GetComponent[*components.HealthKitComponent](em, id)
	if !ok || kit.Heal != 100 {
		t.Errorf("Expected heal 100, got %+v", kit)
	}
	if !ecs.HasComponent[*components.InteractableComponent](em, id) {
		t.Error("Health kit should be interactable")
	}

	if _, err := NewHealthKitEntity(em, -1, 0, 0, 0); err == nil {
		t.Error("Expected error for negative heal")
	}
}

func TestNewScreenEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	tests := []struct {
		name          string
		isOn          bool
		wantIntensity float64
	}{
		{"on", true, components.ScreenOnIntensity},
		{"off", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewScreenEntity(em, true, tt.isOn, 0, 1, 0)
			if err != nil {
				t.Fatalf("NewScreenEntity() error: %v", err)
			}
			screen, _ := ecs.GetComponent[*components.ScreenComponent](em, id)
			if screen.IsOn != tt.isOn || screen.LightIntensity != tt.wantIntensity {
				t.Errorf("Expected on=%v intensity=%v, got on=%v intensity=%v",
					tt.isOn, tt.wantIntensity, screen.IsOn, screen.LightIntensity)
			}
		})
	}
}

func TestNewCrouchAreaEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewCrouchAreaEntity(em,
		components.PositionComponent{X: 0, Y: 0, Z: 0},
		components.PositionComponent{X: 2, Y: 1, Z: 2})
	if err != nil {
		t.Fatalf("NewCrouchAreaEntity() error: %v", err)
	}
	area, _ := ecs.GetComponent[*components.CrouchAreaComponent](em, id)
	if !area.Contains(1, 0.5, 1) {
		t.Error("Area should contain its center")
	}

	_, err = NewCrouchAreaEntity(em,
		components.PositionComponent{X: 3},
		components.PositionComponent{X: 2, Y: 1, Z: 1})
	if err == nil {
		t.Error("Expected error for inverted bounds")
	}
}
