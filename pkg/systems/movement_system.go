package systems

import (
	"log"
	"math"

	"github.com/decker502/fpsproto/pkg/components"
	"github.com/decker502/fpsproto/pkg/ecs"
)

// GroundDistance 离地面多近视为着地（米）
const GroundDistance = 0.1

// groundedVelocityY 着地时的竖直速度，让角色贴住地面
const groundedVelocityY = -2.0

// GroundProbe 地面高度查询
// 物理碰撞不在本项目范围内，宿主提供地面高度即可
type GroundProbe interface {
	GroundHeight(x, z float64) float64
}

// FlatGround 固定高度的平坦地面
type FlatGround struct {
	Height float64
}

// GroundHeight 实现 GroundProbe
func (g FlatGround) GroundHeight(x, z float64) float64 {
	return g.Height
}

// MovementSystem 第一人称移动系统
//
// 每帧按顺序执行：着地检测（含坠落伤害）→ 跳跃 → 水平移动 → 重力 → 耐力调节器
type MovementSystem struct {
	entityManager *ecs.EntityManager
	ground        GroundProbe
}

// NewMovementSystem 创建移动系统
// ground 为 nil 时使用高度 0 的平坦地面
func NewMovementSystem(em *ecs.EntityManager, ground GroundProbe) *MovementSystem {
	if ground == nil {
		ground = FlatGround{}
	}
	return &MovementSystem{
		entityManager: em,
		ground:        ground,
	}
}

// Update 更新所有可移动实体
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.MovementComponent,
		*components.PositionComponent,
		*components.VitalsComponent,
	](s.entityManager)

	for _, id := range entities {
		mv, _ := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vitals, _ := ecs.GetComponent[*components.VitalsComponent](s.entityManager, id)

		var regulator components.StaminaTicker
		if st, ok := ecs.GetComponent[*components.StaminaComponent](s.entityManager, id); ok {
			regulator = st.Regulator
		}

		s.checkGrounded(id, mv, pos, vitals)
		s.jump(mv, vitals)
		s.move(mv, pos, vitals, regulator, deltaTime)
		s.fall(mv, pos, deltaTime)

		if regulator != nil {
			regulator.Update(deltaTime)
		}
	}
}

// checkGrounded 着地检测
// 从空中落地时按下落高度计算伤害
func (s *MovementSystem) checkGrounded(id ecs.EntityID, mv *components.MovementComponent, pos *components.PositionComponent, vitals *components.VitalsComponent) {
	groundHeight := s.ground.GroundHeight(pos.X, pos.Z)
	grounded := pos.Y-groundHeight <= GroundDistance

	if !mv.Grounded && grounded {
		fallingHeight := mv.LastGroundedHeight - pos.Y
		if fallingHeight > mv.MinFallHeight {
			damage := int(fallingHeight * float64(mv.LifePerMeter))
			vitals.Life.Subtract(damage)
			log.Printf("[MovementSystem] Entity %d fell %.2fm, lost %d life (%d/%d)",
				id, fallingHeight, damage, vitals.Life.Current(), vitals.Life.Max())
		}
	}

	mv.Grounded = grounded

	if mv.Grounded {
		mv.LastGroundedHeight = pos.Y
		if mv.VelocityY < 0 {
			mv.VelocityY = groundedVelocityY
		}
	}
}

// jump 处理跳跃请求
func (s *MovementSystem) jump(mv *components.MovementComponent, vitals *components.VitalsComponent) {
	if !mv.JumpPressed {
		return
	}
	mv.JumpPressed = false

	if !mv.CanJump || !mv.Grounded {
		return
	}

	mv.VelocityY = math.Sqrt(mv.JumpHeight * -2 * mv.Gravity)
	vitals.Stamina.Subtract(mv.JumpStaminaCost)
}

// move 水平移动
// 前优先于后，左优先于右
func (s *MovementSystem) move(mv *components.MovementComponent, pos *components.PositionComponent, vitals *components.VitalsComponent, regulator components.StaminaTicker, deltaTime float64) {
	forwardBackward := 0.0
	leftRight := 0.0

	if mv.MoveForward {
		forwardBackward = 1
	} else if mv.MoveBackward {
		forwardBackward = -1
	}

	if mv.MoveLeft {
		leftRight = -1
	} else if mv.MoveRight {
		leftRight = 1
	}

	// 奔跑请求只在按下瞬间置位；一旦因耐力不足被清除，需要重新按键
	if mv.RunHeld && !mv.PrevRunHeld && mv.CanRun {
		mv.RunRequested = true
	}
	if !mv.RunHeld {
		mv.RunRequested = false
	}
	mv.PrevRunHeld = mv.RunHeld

	regulatorPlaying := regulator == nil || regulator.IsPlaying()
	mv.RunRequested = mv.RunRequested && !vitals.Stamina.IsEmpty() && regulatorPlaying
	mv.Running = mv.RunRequested

	if mv.Running {
		mv.Speed = mv.RunSpeed
	} else {
		mv.Speed = mv.WalkSpeed
	}

	// 前方为 +Z，右方为 +X
	dx, dz := leftRight, forwardBackward
	length := math.Hypot(dx, dz)
	if length == 0 {
		mv.Moving = false
		return
	}

	step := deltaTime * mv.Speed / length
	dx *= step
	dz *= step

	pos.X += dx
	pos.Z += dz
	mv.Moving = math.Hypot(dx, dz) > 0
}

// fall 重力积分，落到地面以下时贴回地面
func (s *MovementSystem) fall(mv *components.MovementComponent, pos *components.PositionComponent, deltaTime float64) {
	mv.VelocityY += mv.Gravity * deltaTime
	pos.Y += mv.VelocityY * deltaTime

	if groundHeight := s.ground.GroundHeight(pos.X, pos.Z); pos.Y < groundHeight {
		pos.Y = groundHeight
	}
}

// Platform 水平矩形平台（X/Z 范围，顶面高度）
type Platform struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Height     float64
}

// PlatformGround 平坦地面加若干平台
// 某点的地面高度取基础高度与覆盖该点的平台顶面中的最大值
type PlatformGround struct {
	Base      float64
	Platforms []Platform
}

// GroundHeight 实现 GroundProbe
func (g PlatformGround) GroundHeight(x, z float64) float64 {
	height := g.Base
	for _, p := range g.Platforms {
		if x >= p.MinX && x <= p.MaxX && z >= p.MinZ && z <= p.MaxZ && p.Height > height {
			height = p.Height
		}
	}
	return height
}
