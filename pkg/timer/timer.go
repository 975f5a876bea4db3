// Package timer 提供由外部逐帧驱动的通用计时器
//
// 计时器本身不读取系统时钟，宿主游戏循环每帧调用 Update(deltaTime)。
// 支持循环、无限暂停和定时暂停（暂停指定秒数后自动恢复）。
//
// 扩展点通过 Hooks 中的函数值注入，不使用继承。
package timer

import "fmt"

// State 计时器状态
type State int

const (
	// StateStopped 已停止：不计时，时间归零
	StateStopped State = iota
	// StatePlaying 计时中
	StatePlaying
	// StatePaused 无限暂停：保留已计时间，不会自动恢复
	StatePaused
	// StateTimedPause 定时暂停：暂停时钟走到期限后自动 Start()
	StateTimedPause
)

// String 返回状态名称（用于日志）
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateTimedPause:
		return "timed_pause"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Hook 计时器事件回调，参数为触发事件的计时器
type Hook func(t *Timer)

// Hooks 计时器事件回调集合
// 任意字段可为 nil
type Hooks struct {
	OnStart  Hook
	OnPause  Hook
	OnStop   Hook
	OnReset  Hook
	OnEnd    Hook // 计时到达 endTime

	// OnEndTimedPause 定时暂停到期，在自动 Start() 之前调用
	OnEndTimedPause Hook

	OnUpdate           Hook // 每次 Update 最后调用，无论状态
	OnUpdatePlaying    Hook
	OnUpdateNotPlaying Hook // 无限暂停或已停止
	OnUpdateTimedPause Hook
}

// Timer 可暂停、可循环的倒计时器
//
// 已知限制：单次 Update 最多触发一次 OnEnd。
// 如果 deltaTime 跨越多个周期（低帧率），多出的周期被丢弃，time 直接归零。
type Timer struct {
	endTime float64
	loop    bool
	hooks   Hooks

	time    float64
	inPlay  bool
	stopped bool

	pauseTime    float64
	pauseEndTime float64

	autostart bool
}

// Option 计时器构造选项
type Option func(*Timer)

// WithLoop 设置是否循环（默认循环）
func WithLoop(loop bool) Option {
	return func(t *Timer) {
		t.loop = loop
	}
}

// WithAutostart 设置是否创建后立即开始（默认立即开始）
func WithAutostart(autostart bool) Option {
	return func(t *Timer) {
		t.autostart = autostart
	}
}

// New 创建计时器
//
// endTime <= 0 属于编程错误，直接 panic。
// 自动开始时会触发一次 OnStart。
func New(endTime float64, hooks Hooks, opts ...Option) *Timer {
	if endTime <= 0 {
		panic(fmt.Sprintf("timer: endTime must be > 0, got %v", endTime))
	}

	t := &Timer{
		endTime:   endTime,
		loop:      true,
		hooks:     hooks,
		autostart: true,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.autostart {
		t.Start()
	} else {
		t.stopped = true
	}
	return t
}

// Start 从当前时间继续计时，清除暂停计数
func (t *Timer) Start() {
	t.inPlay = true
	t.stopped = false
	t.pauseTime = 0
	t.pauseEndTime = 0

	t.fire(t.hooks.OnStart)
}

// Pause 暂停计时（保留已计时间）
//
// duration == 0 为无限暂停；duration > 0 为定时暂停，到期后自动恢复。
// 负值按无限暂停处理。
func (t *Timer) Pause(duration float64) {
	if duration < 0 {
		duration = 0
	}

	t.inPlay = false
	t.stopped = false
	t.pauseTime = 0
	t.pauseEndTime = duration

	t.fire(t.hooks.OnPause)
}

// Stop 停止计时并将时间归零
func (t *Timer) Stop() {
	t.inPlay = false
	t.stopped = true
	t.time = 0
	t.pauseTime = 0
	t.pauseEndTime = 0

	t.fire(t.hooks.OnStop)
}

// Reset 时间归零，保持当前播放/暂停状态
func (t *Timer) Reset() {
	t.time = 0

	t.fire(t.hooks.OnReset)
}

// Update 推进计时器
//
// 参数：
//   - deltaTime: 距上一帧经过的时间（秒）
func (t *Timer) Update(deltaTime float64) {
	if t.inPlay {
		t.time += deltaTime

		if t.time >= t.endTime {
			t.time = 0

			// 先离开播放状态再回调，OnEnd 中可以重新 Start()
			if !t.loop {
				t.inPlay = false
				t.stopped = true
			}

			t.fire(t.hooks.OnEnd)
		}

		t.fire(t.hooks.OnUpdatePlaying)
	} else if t.pauseEndTime > 0 {
		t.pauseTime += deltaTime

		if t.pauseTime > t.pauseEndTime {
			// 先清除期限，保证回调中重入 Update 不会重复触发
			t.pauseEndTime = 0
			t.fire(t.hooks.OnEndTimedPause)
			t.Start()
		}

		t.fire(t.hooks.OnUpdateTimedPause)
	} else {
		t.fire(t.hooks.OnUpdateNotPlaying)
	}

	t.fire(t.hooks.OnUpdate)
}

// State 返回当前状态
func (t *Timer) State() State {
	switch {
	case t.inPlay:
		return StatePlaying
	case t.pauseEndTime > 0:
		return StateTimedPause
	case t.stopped:
		return StateStopped
	default:
		return StatePaused
	}
}

// Time 返回当前周期已计时间
func (t *Timer) Time() float64 {
	return t.time
}

// EndTime 返回周期长度
func (t *Timer) EndTime() float64 {
	return t.endTime
}

// IsPlaying 是否在计时
func (t *Timer) IsPlaying() bool {
	return t.inPlay
}

// IsLoop 是否循环
func (t *Timer) IsLoop() bool {
	return t.loop
}

// PauseRemaining 返回定时暂停的剩余时间，非定时暂停返回 0
func (t *Timer) PauseRemaining() float64 {
	if t.inPlay || t.pauseEndTime <= 0 {
		return 0
	}
	remaining := t.pauseEndTime - t.pauseTime
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PauseDuration 返回定时暂停的总期限，非定时暂停返回 0
func (t *Timer) PauseDuration() float64 {
	if t.inPlay {
		return 0
	}
	return t.pauseEndTime
}

func (t *Timer) fire(h Hook) {
	if h != nil {
		h(t)
	}
}
