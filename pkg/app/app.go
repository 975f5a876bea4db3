// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：
// 加载配置、打开存储、搭建场景，并实现 ebiten.Game 接口。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/fpsproto/pkg/config"
	"github.com/decker502/fpsproto/pkg/ecs"
	"github.com/decker502/fpsproto/pkg/embedded"
	"github.com/decker502/fpsproto/pkg/entities"
	"github.com/decker502/fpsproto/pkg/game"
	"github.com/decker502/fpsproto/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "fpsproto"

// statusDuration 状态提示显示时长（秒）
const statusDuration = 2.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// PlayerConfigPath 玩家配置文件路径，为空则使用内嵌的 data/player.yaml
	PlayerConfigPath string
	// LevelConfigPath 场景配置文件路径，为空则使用内嵌的 data/level.yaml
	LevelConfigPath string
	// TPS 逻辑帧率，<= 0 时使用 config.DefaultTPS
	TPS int
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager     *ecs.EntityManager
	movementSystem    *systems.MovementSystem
	crouchAreaSystem  *systems.CrouchAreaSystem
	interactionSystem *systems.InteractionSystem

	saveManager     *game.SaveManager
	settingsManager *game.SettingsManager

	playerID ecs.EntityID
	level    *config.LevelConfig
	ground   systems.PlatformGround
	tps      int

	statusMessage string
	statusTimer   float64

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 未指定配置文件路径时从嵌入资源加载，调用前必须先调用 embedded.Init()。
// 存储打开失败不是致命错误，存档和设置退化为仅内存
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	playerCfg, err := loadPlayerConfig(cfg.PlayerConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load player config: %w", err)
	}
	level, err := loadLevelConfig(cfg.LevelConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load level config: %w", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (saves will not persist)", err)
		gdataManager = nil
	}

	a, err := newApp(playerCfg, level, game.NewSaveManager(gdataManager), game.NewSettingsManager(gdataManager), cfg.TPS)
	if err != nil {
		return nil, err
	}
	a.verbose = cfg.Verbose

	if a.settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

// newApp 按已加载的配置搭建场景和系统
func newApp(playerCfg *config.PlayerConfig, level *config.LevelConfig, saveManager *game.SaveManager, settingsManager *game.SettingsManager, tps int) (*App, error) {
	if tps <= 0 {
		tps = config.DefaultTPS
	}

	em := ecs.NewEntityManager()
	playerID, ground, err := entities.BuildLevel(em, level, playerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}

	log.Printf("[App] Level %q ready, player entity %d, %d TPS", level.Name, playerID, tps)

	return &App{
		entityManager:     em,
		movementSystem:    systems.NewMovementSystem(em, ground),
		crouchAreaSystem:  systems.NewCrouchAreaSystem(em),
		interactionSystem: systems.NewInteractionSystem(em),
		saveManager:       saveManager,
		settingsManager:   settingsManager,
		playerID:          playerID,
		level:             level,
		ground:            ground,
		tps:               tps,
	}, nil
}

// loadPlayerConfig 从文件或内嵌资源加载玩家配置
func loadPlayerConfig(path string) (*config.PlayerConfig, error) {
	if path != "" {
		return config.LoadPlayerConfig(path)
	}
	data, err := embedded.ReadFile(config.DefaultPlayerConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParsePlayerConfig(data)
}

// loadLevelConfig 从文件或内嵌资源加载场景配置
func loadLevelConfig(path string) (*config.LevelConfig, error) {
	if path != "" {
		return config.LoadLevelConfig(path)
	}
	data, err := embedded.ReadFile(config.DefaultLevelConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseLevelConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	in := readKeyboard()
	if in.ToggleFullscreen {
		a.toggleFullscreen()
	}

	a.step(in, 1.0/float64(a.tps))
	return nil
}

// step 推进一帧
//
// 顺序：写入输入 → 移动（含耐力调节）→ 低矮区域 → 交互 → 清理销毁的实体 → 存档/读档/调试开关
func (a *App) step(in InputState, deltaTime float64) {
	applyInput(a.entityManager, a.playerID, in)

	a.movementSystem.Update(deltaTime)
	a.crouchAreaSystem.Update(deltaTime)
	a.interactionSystem.Update(deltaTime)
	a.entityManager.RemoveMarkedEntities()

	if in.Save {
		a.SaveGame()
	}
	if in.Load {
		a.LoadGame()
	}
	if in.ToggleDebug {
		a.toggleDebug()
	}

	if a.statusTimer > 0 {
		a.statusTimer -= deltaTime
		if a.statusTimer <= 0 {
			a.statusMessage = ""
		}
	}
}

// SaveGame 保存玩家资源和坐标
func (a *App) SaveGame() {
	data, err := game.CapturePlayer(a.entityManager, a.playerID)
	if err != nil {
		log.Printf("[App] Failed to capture player: %v", err)
		a.setStatus("Save failed")
		return
	}
	if err := a.saveManager.Save(data); err != nil {
		log.Printf("[App] Failed to save player: %v", err)
		a.setStatus("Save failed")
		return
	}
	if !a.saveManager.IsPersistent() {
		a.setStatus("Saved (not persistent)")
		return
	}
	a.setStatus("Game saved")
}

// LoadGame 读取存档并写回玩家实体
func (a *App) LoadGame() {
	data, err := a.saveManager.Load()
	if errors.Is(err, game.ErrNoSave) {
		a.setStatus("No save found")
		return
	}
	if err != nil {
		log.Printf("[App] Failed to load player: %v", err)
		a.setStatus("Load failed")
		return
	}
	if err := game.ApplyPlayer(a.entityManager, a.playerID, data); err != nil {
		log.Printf("[App] Failed to apply player save: %v", err)
		a.setStatus("Load failed")
		return
	}
	a.setStatus("Game loaded")
}

// setStatus 显示一条短暂的状态提示
func (a *App) setStatus(message string) {
	a.statusMessage = message
	a.statusTimer = statusDuration
	log.Printf("[App] %s", message)
}

// toggleDebug 切换调试信息并保存设置
func (a *App) toggleDebug() {
	a.settingsManager.SetShowDebug(!a.settingsManager.GetSettings().ShowDebug)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.drawMinimap(screen)
	a.drawBars(screen)
	a.drawCursor(screen)
	a.drawText(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// PlayerID 返回玩家实体ID
func (a *App) PlayerID() ecs.EntityID {
	return a.playerID
}

// EntityManager 返回实体管理器
func (a *App) EntityManager() *ecs.EntityManager {
	return a.entityManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
