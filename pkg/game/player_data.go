package game

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

// PlayerSaveVersion 存档格式版本号
// 修改 PlayerData 结构时递增
const PlayerSaveVersion = 1

// PlayerData 玩家存档快照
//
// 保存三条资源条的上限与当前值，以及世界坐标 [x, y, z]
type PlayerData struct {
	Version int

	MaxLife    int
	MaxStamina int
	MaxMana    int

	Life    int
	Stamina int
	Mana    int

	Position [3]float64

	SaveTime time.Time
}

// EncodePlayerData 将快照编码为 gob 二进制
func EncodePlayerData(data *PlayerData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("player data is nil")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("failed to encode player data: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodePlayerData 解码 gob 二进制快照并检查版本
func DecodePlayerData(raw []byte) (*PlayerData, error) {
	var data PlayerData
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode player data: %w", err)
	}

	if data.Version != PlayerSaveVersion {
		return nil, fmt.Errorf("incompatible save version: %d (expected %d)",
			data.Version, PlayerSaveVersion)
	}

	return &data, nil
}

// CapturePlayer 从实体读取存档快照
//
// 实体必须拥有 VitalsComponent 和 PositionComponent
func CapturePlayer(em *ecs.EntityManager, id ecs.EntityID) (*PlayerData, error) {
	if em == nil {
		return nil, fmt.Errorf("EntityManager is nil")
	}

	vitals, ok := ecs.GetComponent[*components.VitalsComponent](em, id)
	if !ok {
		return nil, fmt.Errorf("entity %d has no VitalsComponent", id)
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return nil, fmt.Errorf("entity %d has no PositionComponent", id)
	}

	return &PlayerData{
		Version:    PlayerSaveVersion,
		MaxLife:    vitals.Life.Max(),
		MaxStamina: vitals.Stamina.Max(),
		MaxMana:    vitals.Mana.Max(),
		Life:       vitals.Life.Current(),
		Stamina:    vitals.Stamina.Current(),
		Mana:       vitals.Mana.Current(),
		Position:   [3]float64{pos.X, pos.Y, pos.Z},
		SaveTime:   time.Now(),
	}, nil
}

// ApplyPlayer 把存档快照写回实体
//
// 顺序：先设置三条上限（不填满），再设置当前值，最后设置坐标。
// 超出范围的值由资源条截断
func ApplyPlayer(em *ecs.EntityManager, id ecs.EntityID, data *PlayerData) error {
	if em == nil {
		return fmt.Errorf("EntityManager is nil")
	}
	if data == nil {
		return fmt.Errorf("player data is nil")
	}

	vitals, ok := ecs.GetComponent[*components.VitalsComponent](em, id)
	if !ok {
		return fmt.Errorf("entity %d has no VitalsComponent", id)
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return fmt.Errorf("entity %d has no PositionComponent", id)
	}

	vitals.Life.SetMax(data.MaxLife, false)
	vitals.Stamina.SetMax(data.MaxStamina, false)
	vitals.Mana.SetMax(data.MaxMana, false)

	vitals.Life.SetCurrent(data.Life)
	vitals.Stamina.SetCurrent(data.Stamina)
	vitals.Mana.SetCurrent(data.Mana)

	pos.X, pos.Y, pos.Z = data.Position[0], data.Position[1], data.Position[2]

	// 坠落高度从读档坐标重新起算
	if mv, ok := ecs.GetComponent[*components.MovementComponent](em, id); ok {
		mv.LastGroundedHeight = pos.Y
		mv.VelocityY = 0
	}

	return nil
}
