// simulate_stamina 无窗口运行玩家移动，打印耐力调节过程
//
// 用法：
//
//	go run ./cmd/simulate_stamina -seconds 12 -run 8
//
// 前 run 秒按住奔跑向前移动，之后松开并站立，每隔 step 秒打印一次状态
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/config"
	"github.com/decker502/fpsproto/pkg/ecs"
	"github.com/decker502/fpsproto/pkg/entities"
	"github.com/decker502/fpsproto/pkg/systems"
)

var (
	verbose    = flag.Bool("verbose", false, "显示系统日志")
	configPath = flag.String("config", "", "玩家配置文件路径（默认使用内置默认值）")
	seconds    = flag.Float64("seconds", 12, "模拟总时长（秒）")
	runFor     = flag.Float64("run", 8, "按住奔跑的时长（秒）")
	step       = flag.Float64("step", 0.5, "打印间隔（秒）")
	tps        = flag.Int("tps", config.DefaultTPS, "模拟帧率")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultPlayerConfig()
	if *configPath != "" {
		loaded, err := config.LoadPlayerConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	em := ecs.NewEntityManager()
	playerID, err := entities.NewPlayerEntity(em, cfg, 0, 0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	movementSystem := systems.NewMovementSystem(em, systems.FlatGround{})

	mv, _ := ecs.GetComponent[*components.MovementComponent](em, playerID)
	vitals, _ := ecs.GetComponent[*components.VitalsComponent](em, playerID)
	stamina, _ := ecs.GetComponent[*components.StaminaComponent](em, playerID)
	regulator, _ := stamina.Regulator.(*systems.StaminaRegulator)

	dt := 1.0 / float64(*tps)
	frames := int(*seconds / dt)
	printEvery := max(1, int(*step/dt))

	fmt.Printf("%7s  %7s  %7s  %7s  %9s  %s\n", "time", "stamina", "running", "speed", "z", "regulator")
	for frame := 0; frame <= frames; frame++ {
		elapsed := float64(frame) * dt
		held := elapsed < *runFor
		mv.MoveForward = held
		mv.RunHeld = held

		movementSystem.Update(dt)

		if frame%printEvery == 0 {
			state := "-"
			if regulator != nil {
				state = regulator.State().String()
			}
			fmt.Printf("%7.2f  %7d  %7v  %7.2f  %9.2f  %s\n",
				elapsed, vitals.Stamina.Current(), mv.Running, mv.Speed, mustPosition(em, playerID).Z, state)
		}
	}
}

func mustPosition(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: player has no position")
		os.Exit(1)
	}
	return pos
}
