package components

// MaxBarValue 资源条最大值上限
// 任何 SetMax 都会被限制在 [1, MaxBarValue]
const MaxBarValue = 3000

// ResourceBar 资源条组件（生命、耐力、法力共用）
//
// 不变量：
//   - 1 <= max <= MaxBarValue
//   - 0 <= current <= max
//
// 所有输入都静默截断，不返回错误
type ResourceBar struct {
	current int
	max     int
}

// NewResourceBar 创建资源条并填满
func NewResourceBar(max int) *ResourceBar {
	b := &ResourceBar{}
	b.SetMax(max, true)
	return b
}

// SetMax 设置最大值
//
// 参数：
//   - value: 新最大值，被限制在 [1, MaxBarValue]
//   - fill: true 表示同时把当前值设为最大值
func (b *ResourceBar) SetMax(value int, fill bool) {
	b.max = clampInt(value, 1, MaxBarValue)

	if b.current > b.max {
		b.current = b.max
	}

	if fill {
		b.current = b.max
	}
}

// AddMax 增加最大值
func (b *ResourceBar) AddMax(qty int, fill bool) {
	b.SetMax(b.max+saturate(qty), fill)
}

// SubtractMax 减少最大值
func (b *ResourceBar) SubtractMax(qty int, fill bool) {
	b.SetMax(b.max-saturate(qty), fill)
}

// SetCurrent 设置当前值，限制在 [0, max]
func (b *ResourceBar) SetCurrent(value int) {
	// 零值资源条的 max 为 0，先修正
	if b.max < 1 {
		b.max = 1
	}
	b.current = clampInt(value, 0, b.max)
}

// Add 增加当前值
func (b *ResourceBar) Add(qty int) {
	b.SetCurrent(b.current + saturate(qty))
}

// Subtract 减少当前值
func (b *ResourceBar) Subtract(qty int) {
	b.SetCurrent(b.current - saturate(qty))
}

// Current 返回当前值
func (b *ResourceBar) Current() int {
	return b.current
}

// Max 返回最大值
func (b *ResourceBar) Max() int {
	return b.max
}

// IsEmpty 当前值是否为 0
func (b *ResourceBar) IsEmpty() bool {
	return b.current == 0
}

// IsFull 当前值是否达到最大值
func (b *ResourceBar) IsFull() bool {
	return b.current >= b.max
}

// Ratio 返回填充比例 [0, 1]，用于 HUD 绘制
func (b *ResourceBar) Ratio() float64 {
	if b.max <= 0 {
		return 0
	}
	return float64(b.current) / float64(b.max)
}

// WidthRatio 返回资源条相对 MaxBarValue 的宽度比例
// 最大值越大，HUD 上的条越长
func (b *ResourceBar) WidthRatio() float64 {
	return float64(b.max) / float64(MaxBarValue)
}

// saturate 把增量限制在 [-MaxBarValue, MaxBarValue]
// 任何超出此范围的增量效果相同，截断后加减不会溢出
func saturate(qty int) int {
	return clampInt(qty, -MaxBarValue, MaxBarValue)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
