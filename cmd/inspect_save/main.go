// inspect_save 打印 gdata 中保存的玩家存档
//
// 用法：
//
//	go run ./cmd/inspect_save [-app fpsproto]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/fpsproto/pkg/app"
	"github.com/decker502/fpsproto/pkg/game"
	"github.com/quasilyte/gdata/v2"
)

var (
	appName = flag.String("app", app.AppName, "gdata 应用名")
	verbose = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	manager, err := gdata.Open(gdata.Config{AppName: *appName})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open gdata storage: %v\n", err)
		os.Exit(1)
	}

	data, err := game.NewSaveManager(manager).Load()
	if errors.Is(err, game.ErrNoSave) {
		fmt.Println("No player save found")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Version:  %d\n", data.Version)
	fmt.Printf("Saved at: %s\n", data.SaveTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("Life:     %d/%d\n", data.Life, data.MaxLife)
	fmt.Printf("Stamina:  %d/%d\n", data.Stamina, data.MaxStamina)
	fmt.Printf("Mana:     %d/%d\n", data.Mana, data.MaxMana)
	fmt.Printf("Position: %.2f, %.2f, %.2f\n", data.Position[0], data.Position[1], data.Position[2])
}
