package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/fpsproto/pkg/app"
	"github.com/decker502/fpsproto/pkg/config"
	"github.com/decker502/fpsproto/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	playerPath  = flag.String("config", "", "玩家配置文件路径（默认使用内嵌的 data/player.yaml）")
	levelPath   = flag.String("level", "", "场景配置文件路径（默认使用内嵌的 data/level.yaml）")
	ticksPerSec = flag.Int("tps", config.DefaultTPS, "逻辑帧率")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据，必须在加载配置之前
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		PlayerConfigPath: *playerPath,
		LevelConfigPath:  *levelPath,
		TPS:              *ticksPerSec,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，直接写 stderr
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	if *ticksPerSec > 0 {
		ebiten.SetTPS(*ticksPerSec)
	}
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("FPS Prototype")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
