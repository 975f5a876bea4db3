package config

// 布局配置常量
// 本文件定义了窗口尺寸和 HUD 元素的位置参数（屏幕像素）

// 窗口配置
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// DefaultTPS 默认逻辑帧率
	DefaultTPS = 60
)

// 资源条配置
const (
	// BarOriginX 第一条资源条左上角 X 坐标
	BarOriginX = 16.0

	// BarOriginY 第一条资源条左上角 Y 坐标
	BarOriginY = 16.0

	// BarFullWidth 上限为 MaxBarValue 的资源条宽度
	// 实际宽度按 WidthRatio 缩放，上限 1000 时为 1/3
	BarFullWidth = 600.0

	// BarHeight 资源条高度
	BarHeight = 14.0

	// BarSpacing 相邻资源条的垂直间距
	BarSpacing = 6.0

	// BarBorderWidth 资源条边框宽度
	BarBorderWidth = 1.0
)

// 准星与小地图配置
const (
	// CursorSize 准星半径
	CursorSize = 8.0

	// MinimapSize 俯视小地图边长
	MinimapSize = 160.0

	// MinimapMargin 小地图距屏幕右下角的边距
	MinimapMargin = 16.0

	// MinimapScale 小地图比例（像素/米）
	MinimapScale = 8.0
)

// BarRect 返回第 index 条资源条的背景矩形
// widthRatio 为资源条上限相对 MaxBarValue 的比例
func BarRect(index int, widthRatio float64) (x, y, w, h float64) {
	x = BarOriginX
	y = BarOriginY + float64(index)*(BarHeight+BarSpacing)
	w = BarFullWidth * widthRatio
	h = BarHeight
	return x, y, w, h
}

// MinimapOrigin 返回小地图左上角坐标
func MinimapOrigin() (x, y float64) {
	return GameWindowWidth - MinimapMargin - MinimapSize, GameWindowHeight - MinimapMargin - MinimapSize
}
