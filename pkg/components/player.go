package components

// PlayerComponent 玩家标记组件
// 资源上限保存在 VitalsComponent 的资源条中，存档时写入资源条当前的 Max()
type PlayerComponent struct{}

// VitalsComponent 玩家的三条资源条
// 由工厂在创建实体时显式注入，系统通过它访问资源，不按名称查找
type VitalsComponent struct {
	Life    *ResourceBar
	Stamina *ResourceBar
	Mana    *ResourceBar
}

// NewVitalsComponent 创建并填满三条资源条
func NewVitalsComponent(life, stamina, mana int) *VitalsComponent {
	return &VitalsComponent{
		Life:    NewResourceBar(life),
		Stamina: NewResourceBar(stamina),
		Mana:    NewResourceBar(mana),
	}
}

// PositionComponent 世界坐标（米）
// Y 轴向上
type PositionComponent struct {
	X, Y, Z float64
}
