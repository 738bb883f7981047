package sim

import "sync"

// Timer is a simulated 32-bit countdown timer.
//
// While enabled, the counter decreases by the configured step on every poll
// of Elapsed or LoadCounter. On reaching zero the timeout event becomes
// pending and, in periodic mode, the counter is reloaded.
type Timer struct {
	mu       sync.Mutex
	step     uint32
	enabled  bool
	reload   uint32
	counter  uint32
	evEnable bool
	pending  bool
	loads    []uint32
	polls    int
}

// NewTimer returns a disabled Timer counting down step ticks per poll.
func NewTimer(step uint32) *Timer {
	if step == 0 {
		step = 1
	}
	return &Timer{step: step}
}

func (t *Timer) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = true
}

func (t *Timer) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = false
}

func (t *Timer) SetReload(v uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reload = v
}

func (t *Timer) SetCounter(v uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counter = v
	t.loads = append(t.loads, v)
}

func (t *Timer) LoadCounter() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tick()
	return t.counter
}

func (t *Timer) Elapsed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.polls++
	if t.tick() {
		return true
	}
	return t.counter == 0
}

func (t *Timer) SetEventEnable(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.evEnable = on
}

func (t *Timer) EventPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

func (t *Timer) ClearEventPending() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = false
}

// Loads returns every value written to the counter register.
func (t *Timer) Loads() []uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]uint32(nil), t.loads...)
}

// Polls returns the number of Elapsed reads.
func (t *Timer) Polls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.polls
}

// tick advances the countdown by one step and reports whether it reached
// zero during this step.
func (t *Timer) tick() bool {
	if !t.enabled || t.counter == 0 {
		return false
	}
	t.counter -= min(t.step, t.counter)
	if t.counter != 0 {
		return false
	}
	if t.evEnable {
		t.pending = true
	}
	t.counter = t.reload
	return true
}
