package components

import "github.com/decker502/fpsproto/pkg/ecs"

// CursorType HUD 准星类型
type CursorType int

const (
	CursorNone CursorType = iota
	CursorBase
	CursorInteract
	CursorForbidden
)

// String 返回准星类型名称
func (c CursorType) String() string {
	switch c {
	case CursorNone:
		return "none"
	case CursorBase:
		return "base"
	case CursorInteract:
		return "interact"
	case CursorForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// InteractorComponent 可发起交互的实体（玩家）
type InteractorComponent struct {
	CanInteract      bool
	Range            float64 // 交互距离（米）
	InteractHeld     bool    // 交互键是否按下（宿主写入）
	PrevInteractHeld bool
	InInteraction    bool

	Target         ecs.EntityID // 0 表示没有目标
	PreviousTarget ecs.EntityID
	Cursor         CursorType
}

// InteractableComponent 可被交互的实体标记
type InteractableComponent struct {
	Name string
}

// HealthKitComponent 医疗包
// 生命未满时可拾取，拾取后恢复 Heal 点生命并销毁
type HealthKitComponent struct {
	Heal int
}

// ScreenComponent 可开关的屏幕
type ScreenComponent struct {
	CanBeInteracted bool
	IsOn            bool
	LightIntensity  float64 // 开启时为 ScreenOnIntensity，关闭时为 0
}

// ScreenOnIntensity 屏幕开启时的灯光强度
const ScreenOnIntensity = 3.0
