/*
 * @Description: 把连续的数据变更通知收敛为一次重载
 * @Author: 安知鱼
 * @Date: 2025-09-05 09:30:42
 * @LastEditTime: 2025-09-17 11:26:50
 * @LastEditors: 安知鱼
 */
package refresh

import (
	"sync"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
)

// Coalescer 为单个订阅方收敛变更通知。
// 第一条通知武装去抖计时器，窗口内的后续通知不再重置它，
// 窗口到期时执行一次 onReload，持续的变更流也不会饿死重载；
// onNotice 面向用户提示，受冷却时间限制，即便重载发生多次也不会刷屏。
//
// 提示判定先于计时器重置，两者使用各自独立的时间窗口。
type Coalescer struct {
	mu           sync.Mutex
	debounce     time.Duration
	cooldown     time.Duration
	onReload     func()
	onNotice     func()
	timer        *time.Timer
	lastNoticeAt time.Time
	stopped      bool
}

// Option 调整 Coalescer 的时间窗口，主要供测试使用。
type Option func(*Coalescer)

// WithWindows 覆盖默认的去抖与冷却窗口。
func WithWindows(debounce, cooldown time.Duration) Option {
	return func(c *Coalescer) {
		c.debounce = debounce
		c.cooldown = cooldown
	}
}

// NewCoalescer 是 Coalescer 的构造函数。
// onReload 在去抖窗口静默后触发，onNotice 可以为 nil。
func NewCoalescer(onReload, onNotice func(), opts ...Option) *Coalescer {
	c := &Coalescer{
		debounce: constant.RefreshDebounce,
		cooldown: constant.NoticeCooldown,
		onReload: onReload,
		onNotice: onNotice,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify 报告一次数据变更。
func (c *Coalescer) Notify() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}

	var notice func()
	now := time.Now()
	if c.onNotice != nil && now.Sub(c.lastNoticeAt) >= c.cooldown {
		c.lastNoticeAt = now
		notice = c.onNotice
	}

	// 已有武装中的计时器则不再重置，窗口结束时统一重载
	if c.timer == nil {
		c.timer = time.AfterFunc(c.debounce, c.fire)
	}
	c.mu.Unlock()

	if notice != nil {
		notice()
	}
}

// fire 去抖窗口到期后执行重载，并解除武装以便下一轮通知重新计时。
func (c *Coalescer) fire() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	reload := c.onReload
	c.mu.Unlock()

	if reload != nil {
		reload()
	}
}

// Stop 停止收敛器并取消未触发的重载。Stop 之后的 Notify 是空操作。
func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
