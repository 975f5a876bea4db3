package app

import (
	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 一帧的玩家输入快照
//
// 与 ebiten 解耦，测试可以直接构造输入驱动 App
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Run      bool // 按住
	Jump     bool // 刚按下
	Crouch   bool // 按住
	Interact bool // 按住

	Save             bool
	Load             bool
	ToggleDebug      bool
	ToggleFullscreen bool
}

// readKeyboard 从 ebiten 读取当前帧的键盘输入
func readKeyboard() InputState {
	return InputState{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Run:      ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Jump:     inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Crouch:   ebiten.IsKeyPressed(ebiten.KeyC) || ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		Interact: ebiten.IsKeyPressed(ebiten.KeyE),

		Save:             inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Load:             inpututil.IsKeyJustPressed(ebiten.KeyF9),
		ToggleDebug:      inpututil.IsKeyJustPressed(ebiten.KeyF3),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
	}
}

// applyInput 把输入写入玩家实体的意图字段
// 跳跃只置位不清除，由 MovementSystem 消费
func applyInput(em *ecs.EntityManager, playerID ecs.EntityID, in InputState) {
	if mv, ok := ecs.GetComponent[*components.MovementComponent](em, playerID); ok {
		mv.MoveForward = in.Forward
		mv.MoveBackward = in.Backward
		mv.MoveLeft = in.Left
		mv.MoveRight = in.Right
		mv.RunHeld = in.Run
		if in.Jump {
			mv.JumpPressed = true
		}
	}

	if crouch, ok := ecs.GetComponent[*components.CrouchComponent](em, playerID); ok {
		crouch.CrouchHeld = in.Crouch
	}

	if interactor, ok := ecs.GetComponent[*components.InteractorComponent](em, playerID); ok {
		interactor.InteractHeld = in.Interact
	}
}
