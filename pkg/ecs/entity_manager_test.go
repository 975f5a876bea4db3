package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBarComponent struct {
	Current, Max int
}

type testPositionComponent struct {
	X, Y, Z float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID 从 1 开始，0 保留为无效 ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", id1, id2)
	}

	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBarComponent{Current: 10, Max: 100})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testBarComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	bar := comp.(*testBarComponent)
	if bar.Current != 10 || bar.Max != 100 {
		t.Errorf("Component data mismatch, got %d/%d", bar.Current, bar.Max)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testBarComponent{})

	if em.Exists(42) {
		t.Error("AddComponent should not create entities")
	}
}

func TestGenericAccessors(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 1, Y: 2, Z: 3})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent[T] should find the component")
	}
	if pos.Z != 3 {
		t.Errorf("Expected Z=3, got %f", pos.Z)
	}

	if _, ok := GetComponent[*testBarComponent](em, id); ok {
		t.Error("GetComponent[T] should not find a missing component")
	}

	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent[T] should be true")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBarComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Destroy list should be cleared")
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testBarComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testPositionComponent{})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testBarComponent, *testPositionComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("entity[%d]: got %d, want %d", i, got[i], ids[i])
		}
	}

	if n := len(GetEntitiesWith1[*testBarComponent](em)); n != 20 {
		t.Errorf("Expected 20 entities with bar, got %d", n)
	}
}
