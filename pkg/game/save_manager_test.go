package game

import (
	"errors"
	"testing"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

// createTestPlayer 创建只含存档相关组件的玩家实体
func createTestPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.VitalsComponent, *components.PositionComponent) {
	id := em.CreateEntity()
	vitals := components.NewVitalsComponent(1000, 1000, 1000)
	pos := &components.PositionComponent{}
	em.AddComponent(id, vitals)
	em.AddComponent(id, pos)
	return id, vitals, pos
}

func TestSaveManager_LoadWithoutSave(t *testing.T) {
	sm := NewSaveManager(createTestGdataManager(t, "fpsproto_test_nosave"))

	if sm.HasSave() {
		t.Error("Fresh storage should have no save")
	}
	if _, err := sm.Load(); !errors.Is(err, ErrNoSave) {
		t.Errorf("Expected ErrNoSave, got %v", err)
	}
}

func TestSaveManager_SaveAndLoad(t *testing.T) {
	sm := NewSaveManager(createTestGdataManager(t, "fpsproto_test_save"))
	if !sm.IsPersistent() {
		t.Fatal("SaveManager with gdata should be persistent")
	}

	em := ecs.NewEntityManager()
	id, vitals, pos := createTestPlayer(em)
	vitals.Life.SetMax(1200, false)
	vitals.Life.SetCurrent(640)
	vitals.Stamina.SetCurrent(12)
	vitals.Mana.SetMax(500, true)
	pos.X, pos.Y, pos.Z = 1.5, 2.5, -3.5

	data, err := CapturePlayer(em, id)
	if err != nil {
		t.Fatalf("CapturePlayer() error: %v", err)
	}
	if err := sm.Save(data); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !sm.HasSave() {
		t.Fatal("HasSave() should be true after Save()")
	}

	loaded, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.MaxLife != 1200 || loaded.Life != 640 {
		t.Errorf("Life: got %d/%d, want 640/1200", loaded.Life, loaded.MaxLife)
	}
	if loaded.MaxStamina != 1000 || loaded.Stamina != 12 {
		t.Errorf("Stamina: got %d/%d, want 12/1000", loaded.Stamina, loaded.MaxStamina)
	}
	if loaded.MaxMana != 500 || loaded.Mana != 500 {
		t.Errorf("Mana: got %d/%d, want 500/500", loaded.Mana, loaded.MaxMana)
	}
	if loaded.Position != [3]float64{1.5, 2.5, -3.5} {
		t.Errorf("Position: got %v, want [1.5 2.5 -3.5]", loaded.Position)
	}
}

func TestSaveManager_OverwritesPreviousSave(t *testing.T) {
	sm := NewSaveManager(createTestGdataManager(t, "fpsproto_test_overwrite"))

	first := &PlayerData{Version: PlayerSaveVersion, MaxLife: 100, Life: 10, MaxStamina: 1, MaxMana: 1}
	second := &PlayerData{Version: PlayerSaveVersion, MaxLife: 100, Life: 90, MaxStamina: 1, MaxMana: 1}

	if err := sm.Save(first); err != nil {
		t.Fatalf("Save(first) error: %v", err)
	}
	if err := sm.Save(second); err != nil {
		t.Fatalf("Save(second) error: %v", err)
	}

	loaded, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Life != 90 {
		t.Errorf("Expected latest save (life 90), got %d", loaded.Life)
	}
}

func TestSaveManager_CorruptedSave(t *testing.T) {
	gdataManager := createTestGdataManager(t, "fpsproto_test_corrupt")
	if err := gdataManager.SaveObjectProp(playerObject, playerProperty, []byte("not gob")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSaveManager(gdataManager)
	_, err := sm.Load()
	if err == nil {
		t.Fatal("Expected error for corrupted save")
	}
	if errors.Is(err, ErrNoSave) {
		t.Error("Corrupted save should not be reported as ErrNoSave")
	}
}

func TestSaveManager_VersionMismatch(t *testing.T) {
	gdataManager := createTestGdataManager(t, "fpsproto_test_version")

	raw, err := EncodePlayerData(&PlayerData{Version: PlayerSaveVersion + 1})
	if err != nil {
		t.Fatalf("EncodePlayerData() error: %v", err)
	}
	if err := gdataManager.SaveObjectProp(playerObject, playerProperty, raw); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	if _, err := NewSaveManager(gdataManager).Load(); err == nil {
		t.Error("Expected error for incompatible version")
	}
}

func TestSaveManager_DegradedMode(t *testing.T) {
	sm := NewSaveManager(nil)

	if sm.IsPersistent() {
		t.Error("Nil gdata manager should not be persistent")
	}
	if err := sm.Save(&PlayerData{Version: PlayerSaveVersion}); err != nil {
		t.Errorf("Save() in degraded mode should not fail, got %v", err)
	}
	if _, err := sm.Load(); !errors.Is(err, ErrNoSave) {
		t.Errorf("Load() in degraded mode should return ErrNoSave, got %v", err)
	}
}

func TestSaveManager_SaveNil(t *testing.T) {
	if err := NewSaveManager(nil).Save(nil); err == nil {
		t.Error("Expected error for nil player data")
	}
}
