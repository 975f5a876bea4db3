package components

import "github.com/decker502/fpsproto/pkg/ecs"

// CrouchComponent 下蹲状态
type CrouchComponent struct {
	CanCrouch   bool
	CrouchHeld  bool // 下蹲键是否按下（宿主写入）
	IsCrouched  bool
	CanUncrouch bool // 在低矮区域内为 false

	// InsideAreas 当前所在的低矮区域，用于检测进入/离开
	InsideAreas map[ecs.EntityID]bool
}

// NewCrouchComponent 创建下蹲组件
func NewCrouchComponent(canCrouch bool) *CrouchComponent {
	return &CrouchComponent{
		CanCrouch:   canCrouch,
		CanUncrouch: true,
		InsideAreas: make(map[ecs.EntityID]bool),
	}
}

// Uncrouch 起身
func (c *CrouchComponent) Uncrouch() {
	c.IsCrouched = false
}

// CrouchAreaComponent 低矮区域（轴对齐包围盒）
// 玩家在区域内无法起身
type CrouchAreaComponent struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Contains 判断坐标是否在区域内（边界包含）
func (a *CrouchAreaComponent) Contains(x, y, z float64) bool {
	return x >= a.MinX && x <= a.MaxX &&
		y >= a.MinY && y <= a.MaxY &&
		z >= a.MinZ && z <= a.MaxZ
}
