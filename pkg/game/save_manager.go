package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// ErrNoSave 没有可读取的玩家存档
var ErrNoSave = errors.New("no player save found")

// 存储路径常量
const (
	playerObject   = "player"
	playerProperty = "save"
)

// SaveManager 玩家存档管理器
//
// 职责：
//   - 把 PlayerData（gob 编码）写入 gdata 对象 player/save
//   - 读取并校验存档
//
// gdataManager 为 nil 时处于降级模式：Save 只打印警告，Load 返回 ErrNoSave
type SaveManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，不持久化）
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	return &SaveManager{gdataManager: gdataManager}
}

// IsPersistent 存档是否真正写入磁盘
func (sm *SaveManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// HasSave 是否存在玩家存档
func (sm *SaveManager) HasSave() bool {
	if sm.gdataManager == nil {
		return false
	}
	return sm.gdataManager.ObjectPropExists(playerObject, playerProperty)
}

// Save 保存玩家快照
//
// 返回：
//   - error: 快照为空、编码失败或写入失败时返回错误；降级模式下返回 nil
func (sm *SaveManager) Save(data *PlayerData) error {
	raw, err := EncodePlayerData(data)
	if err != nil {
		return err
	}

	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		log.Printf("[SaveManager] Warning: storage unavailable, player save skipped")
		return nil
	}

	if err := sm.gdataManager.SaveObjectProp(playerObject, playerProperty, raw); err != nil {
		return fmt.Errorf("failed to save player data: %w", err)
	}

	log.Printf("[SaveManager] Saved player: life=%d/%d stamina=%d/%d mana=%d/%d pos=(%.2f, %.2f, %.2f)",
		data.Life, data.MaxLife, data.Stamina, data.MaxStamina, data.Mana, data.MaxMana,
		data.Position[0], data.Position[1], data.Position[2])
	return nil
}

// Load 读取玩家快照
//
// 返回：
//   - *PlayerData: 存档快照
//   - error: 没有存档时返回 ErrNoSave；读取或解码失败时返回包装后的错误
func (sm *SaveManager) Load() (*PlayerData, error) {
	if !sm.HasSave() {
		return nil, ErrNoSave
	}

	raw, err := sm.gdataManager.LoadObjectProp(playerObject, playerProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load player data: %w", err)
	}

	data, err := DecodePlayerData(raw)
	if err != nil {
		return nil, err
	}

	log.Printf("[SaveManager] Loaded player save from %s", data.SaveTime.Format("2006-01-02 15:04:05"))
	return data, nil
}
