package components

// MovementComponent 第一人称移动状态
//
// 输入意图字段由宿主（App 或测试）每帧写入；
// Running / Moving / Grounded 由 MovementSystem 计算。
// 实现 systems.MovementState 接口，供耐力调节器查询
type MovementComponent struct {
	// 输入意图
	MoveForward  bool
	MoveBackward bool
	MoveLeft     bool
	MoveRight    bool
	RunHeld      bool
	JumpPressed  bool // 单次触发，MovementSystem 处理后清除

	// 能力开关
	CanRun  bool
	CanJump bool

	// 参数（来自 PlayerConfig）
	WalkSpeed       float64 // 米/秒
	RunSpeed        float64 // 米/秒
	JumpHeight      float64 // 米
	Gravity         float64 // 米/秒²，负值
	JumpStaminaCost int
	MinFallHeight   float64 // 超过此高度的坠落才扣血（米）
	LifePerMeter    int     // 每米坠落扣除的生命值

	// 计算状态
	RunRequested       bool // 奔跑请求锁存：按下时置位，耐力不足时清除，需重新按键
	PrevRunHeld        bool
	Running            bool
	Moving             bool
	Grounded           bool
	Speed              float64
	VelocityY          float64
	LastGroundedHeight float64
}

// IsMoving 本帧是否有水平位移
func (m *MovementComponent) IsMoving() bool {
	return m.Moving
}

// IsRunning 本帧是否处于奔跑状态
func (m *MovementComponent) IsRunning() bool {
	return m.Running
}

// IsGrounded 是否接触地面
func (m *MovementComponent) IsGrounded() bool {
	return m.Grounded
}

// StaminaTicker 耐力调节器的最小接口
// 由 systems.StaminaRegulator 实现
type StaminaTicker interface {
	Update(deltaTime float64)
	IsPlaying() bool
}

// StaminaComponent 持有玩家的耐力调节器
type StaminaComponent struct {
	Regulator StaminaTicker
}
