package refresh

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNotifyCoalescesBurst(t *testing.T) {
	var reloads, notices atomic.Int32
	c := NewCoalescer(
		func() { reloads.Add(1) },
		func() { notices.Add(1) },
		WithWindows(50*time.Millisecond, time.Second),
	)
	defer c.Stop()

	// 去抖窗口内的一串通知只应触发一次重载
	for i := 0; i < 10; i++ {
		c.Notify()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := reloads.Load(); got != 1 {
		t.Errorf("突发通知后 onReload 触发 %d 次, want 1", got)
	}
	if got := notices.Load(); got != 1 {
		t.Errorf("冷却窗口内 onNotice 触发 %d 次, want 1", got)
	}
}

func TestEachQuietPeriodReloads(t *testing.T) {
	var reloads atomic.Int32
	c := NewCoalescer(
		func() { reloads.Add(1) },
		nil,
		WithWindows(30*time.Millisecond, time.Second),
	)
	defer c.Stop()

	c.Notify()
	time.Sleep(100 * time.Millisecond)
	c.Notify()
	time.Sleep(100 * time.Millisecond)

	if got := reloads.Load(); got != 2 {
		t.Errorf("两段独立的静默期应各触发一次重载, 实际 %d 次", got)
	}
}

func TestNoticeCooldownExpires(t *testing.T) {
	var notices atomic.Int32
	c := NewCoalescer(
		func() {},
		func() { notices.Add(1) },
		WithWindows(10*time.Millisecond, 80*time.Millisecond),
	)
	defer c.Stop()

	c.Notify()
	// 冷却窗口内的通知不再提示
	c.Notify()
	time.Sleep(120 * time.Millisecond)
	// 冷却过期后再次提示
	c.Notify()
	time.Sleep(50 * time.Millisecond)

	if got := notices.Load(); got != 2 {
		t.Errorf("冷却过期前后共应提示 2 次, 实际 %d 次", got)
	}
}

func TestNilNoticeCallback(t *testing.T) {
	var reloads atomic.Int32
	c := NewCoalescer(
		func() { reloads.Add(1) },
		nil,
		WithWindows(20*time.Millisecond, time.Second),
	)
	defer c.Stop()

	c.Notify()
	time.Sleep(80 * time.Millisecond)

	if got := reloads.Load(); got != 1 {
		t.Errorf("onNotice 为 nil 不应影响重载, 实际触发 %d 次", got)
	}
}

func TestStopCancelsPendingReload(t *testing.T) {
	var reloads atomic.Int32
	c := NewCoalescer(
		func() { reloads.Add(1) },
		nil,
		WithWindows(50*time.Millisecond, time.Second),
	)

	c.Notify()
	c.Stop()
	time.Sleep(120 * time.Millisecond)

	if got := reloads.Load(); got != 0 {
		t.Errorf("Stop 后待触发的重载应被取消, 实际触发 %d 次", got)
	}

	// Stop 之后的 Notify 是空操作
	c.Notify()
	time.Sleep(120 * time.Millisecond)
	if got := reloads.Load(); got != 0 {
		t.Errorf("Stop 后的 Notify 不应触发重载, 实际触发 %d 次", got)
	}
}
