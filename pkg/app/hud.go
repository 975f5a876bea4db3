package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/config"
	"github.com/decker502/fpsproto/pkg/ecs"
	"github.com/decker502/fpsproto/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{24, 26, 32, 255}
	barBackground   = color.RGBA{40, 40, 40, 255}
	barBorder       = color.RGBA{200, 200, 200, 255}

	lifeColor    = color.RGBA{200, 40, 40, 255}
	staminaColor = color.RGBA{60, 180, 75, 255}
	manaColor    = color.RGBA{60, 100, 220, 255}

	cursorBaseColor      = color.RGBA{230, 230, 230, 255}
	cursorInteractColor  = color.RGBA{80, 220, 80, 255}
	cursorForbiddenColor = color.RGBA{220, 60, 60, 255}

	minimapBackground = color.RGBA{0, 0, 0, 160}
	platformColor     = color.RGBA{90, 90, 110, 255}
	crouchAreaColor   = color.RGBA{200, 160, 60, 255}
	healthKitColor    = color.RGBA{240, 80, 80, 255}
	screenOnColor     = color.RGBA{120, 200, 255, 255}
	screenOffColor    = color.RGBA{70, 90, 110, 255}
	playerColor       = color.RGBA{255, 255, 255, 255}
)

// barFillWidth 资源条填充宽度
func barFillWidth(bar *components.ResourceBar, bgWidth float64) float64 {
	return bgWidth * bar.Ratio()
}

// withOpacity 按 HUD 不透明度缩放颜色（预乘 alpha）
func withOpacity(c color.RGBA, opacity float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float64(v) * opacity) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), scale(c.A)}
}

// cursorColor 准星类型对应的颜色，CursorNone 返回 false
func cursorColor(cursor components.CursorType) (color.RGBA, bool) {
	switch cursor {
	case components.CursorBase:
		return cursorBaseColor, true
	case components.CursorInteract:
		return cursorInteractColor, true
	case components.CursorForbidden:
		return cursorForbiddenColor, true
	default:
		return color.RGBA{}, false
	}
}

// worldToMinimap 把世界坐标 (x, z) 转换为以玩家为中心的小地图屏幕坐标
// 返回 false 表示超出小地图范围
func worldToMinimap(playerX, playerZ, x, z float64) (float64, float64, bool) {
	originX, originY := config.MinimapOrigin()
	half := config.MinimapSize / 2
	dx := (x - playerX) * config.MinimapScale
	// 世界 +Z 朝前，对应屏幕向上
	dy := -(z - playerZ) * config.MinimapScale
	if dx < -half || dx > half || dy < -half || dy > half {
		return 0, 0, false
	}
	return originX + half + dx, originY + half + dy, true
}

// drawBars 绘制生命、耐力、魔力三条资源条
func (a *App) drawBars(screen *ebiten.Image) {
	vitals, ok := ecs.GetComponent[*components.VitalsComponent](a.entityManager, a.playerID)
	if !ok {
		return
	}
	opacity := a.settingsManager.GetSettings().HUDOpacity

	bars := []struct {
		bar   *components.ResourceBar
		color color.RGBA
	}{
		{vitals.Life, lifeColor},
		{vitals.Stamina, staminaColor},
		{vitals.Mana, manaColor},
	}
	for i, b := range bars {
		x, y, w, h := config.BarRect(i, b.bar.WidthRatio())
		if w <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), withOpacity(barBackground, opacity), false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(barFillWidth(b.bar, w)), float32(h), withOpacity(b.color, opacity), false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), config.BarBorderWidth, withOpacity(barBorder, opacity), false)
	}
}

// drawCursor 在屏幕中心绘制准星
func (a *App) drawCursor(screen *ebiten.Image) {
	interactor, ok := ecs.GetComponent[*components.InteractorComponent](a.entityManager, a.playerID)
	if !ok {
		return
	}
	clr, visible := cursorColor(interactor.Cursor)
	if !visible {
		return
	}

	cx := float32(config.GameWindowWidth) / 2
	cy := float32(config.GameWindowHeight) / 2
	size := float32(config.CursorSize)

	switch interactor.Cursor {
	case components.CursorForbidden:
		vector.StrokeLine(screen, cx-size, cy-size, cx+size, cy+size, 2, clr, true)
		vector.StrokeLine(screen, cx-size, cy+size, cx+size, cy-size, 2, clr, true)
	case components.CursorInteract:
		vector.StrokeCircle(screen, cx, cy, size, 2, clr, true)
	default:
		vector.StrokeLine(screen, cx-size, cy, cx+size, cy, 1, clr, false)
		vector.StrokeLine(screen, cx, cy-size, cx, cy+size, 1, clr, false)
	}
}

// drawMinimap 绘制以玩家为中心的俯视小地图
func (a *App) drawMinimap(screen *ebiten.Image) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](a.entityManager, a.playerID)
	if !ok {
		return
	}
	originX, originY := config.MinimapOrigin()
	vector.DrawFilledRect(screen, float32(originX), float32(originY), config.MinimapSize, config.MinimapSize, minimapBackground, false)

	for _, p := range a.ground.Platforms {
		x0, y0, ok0 := worldToMinimap(pos.X, pos.Z, p.MinX, p.MaxZ)
		x1, y1, ok1 := worldToMinimap(pos.X, pos.Z, p.MaxX, p.MinZ)
		if ok0 && ok1 {
			vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, platformColor, false)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.CrouchAreaComponent](a.entityManager) {
		area, _ := ecs.GetComponent[*components.CrouchAreaComponent](a.entityManager, id)
		x0, y0, ok0 := worldToMinimap(pos.X, pos.Z, area.MinX, area.MaxZ)
		x1, y1, ok1 := worldToMinimap(pos.X, pos.Z, area.MaxX, area.MinZ)
		if ok0 && ok1 {
			vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, crouchAreaColor, false)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.HealthKitComponent, *components.PositionComponent](a.entityManager) {
		kitPos, _ := ecs.GetComponent[*components.PositionComponent](a.entityManager, id)
		if x, y, ok := worldToMinimap(pos.X, pos.Z, kitPos.X, kitPos.Z); ok {
			vector.DrawFilledRect(screen, float32(x)-2, float32(y)-2, 4, 4, healthKitColor, false)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ScreenComponent, *components.PositionComponent](a.entityManager) {
		screenComp, _ := ecs.GetComponent[*components.ScreenComponent](a.entityManager, id)
		screenPos, _ := ecs.GetComponent[*components.PositionComponent](a.entityManager, id)
		clr := screenOffColor
		if screenComp.IsOn {
			clr = screenOnColor
		}
		if x, y, ok := worldToMinimap(pos.X, pos.Z, screenPos.X, screenPos.Z); ok {
			vector.DrawFilledRect(screen, float32(x)-3, float32(y)-1, 6, 2, clr, false)
		}
	}

	cx, cy, _ := worldToMinimap(pos.X, pos.Z, pos.X, pos.Z)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 3, playerColor, true)
}

// drawText 绘制状态提示和调试信息
func (a *App) drawText(screen *ebiten.Image) {
	if a.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, a.statusMessage, config.GameWindowWidth/2-40, config.GameWindowHeight/2+24)
	}

	if !a.settingsManager.GetSettings().ShowDebug {
		ebitenutil.DebugPrintAt(screen, "WASD move  Shift run  Space jump  C crouch  E interact  F5/F9 save/load  F3 debug", 10, config.GameWindowHeight-20)
		return
	}

	_, barsY, _, _ := config.BarRect(3, 0)
	for i, line := range a.debugLines() {
		ebitenutil.DebugPrintAt(screen, line, 16, int(barsY)+i*16)
	}
}

// debugLines 调试面板文本
func (a *App) debugLines() []string {
	var lines []string
	em := a.entityManager

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, a.playerID); ok {
		lines = append(lines, fmt.Sprintf("Pos: %.2f, %.2f, %.2f  Ground: %.2f",
			pos.X, pos.Y, pos.Z, a.ground.GroundHeight(pos.X, pos.Z)))
	}
	if vitals, ok := ecs.GetComponent[*components.VitalsComponent](em, a.playerID); ok {
		lines = append(lines, fmt.Sprintf("Life %d/%d  Stamina %d/%d  Mana %d/%d",
			vitals.Life.Current(), vitals.Life.Max(),
			vitals.Stamina.Current(), vitals.Stamina.Max(),
			vitals.Mana.Current(), vitals.Mana.Max()))
	}
	if mv, ok := ecs.GetComponent[*components.MovementComponent](em, a.playerID); ok {
		lines = append(lines, fmt.Sprintf("Grounded: %v  Running: %v  Speed: %.1f  VelY: %.2f",
			mv.Grounded, mv.Running, mv.Speed, mv.VelocityY))
	}
	if stamina, ok := ecs.GetComponent[*components.StaminaComponent](em, a.playerID); ok {
		if regulator, ok := stamina.Regulator.(*systems.StaminaRegulator); ok {
			lines = append(lines, fmt.Sprintf("Regulator: %s  Pause: %.2f/%.2f",
				regulator.State(), regulator.PauseRemaining(), regulator.PauseDuration()))
		}
	}
	if crouch, ok := ecs.GetComponent[*components.CrouchComponent](em, a.playerID); ok {
		lines = append(lines, fmt.Sprintf("Crouched: %v  CanUncrouch: %v", crouch.IsCrouched, crouch.CanUncrouch))
	}
	if interactor, ok := ecs.GetComponent[*components.InteractorComponent](em, a.playerID); ok {
		lines = append(lines, fmt.Sprintf("Cursor: %s  Target: %d", interactor.Cursor, interactor.Target))
	}
	lines = append(lines, fmt.Sprintf("Level: %s  Persistent saves: %v", a.level.Name, a.saveManager.IsPersistent()))

	return lines
}
