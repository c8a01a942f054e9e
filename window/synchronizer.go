package window

import "time"

// FramePacer keeps a loop running at a fixed frame rate. Each frame has a
// deadline; when one is missed the pacer reports by how much and starts
// counting again from the present instead of trying to catch up.
type FramePacer struct {
	frame    time.Duration
	deadline time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

func NewFramePacer(targetFPS int) *FramePacer {
	return newFramePacer(targetFPS, time.Now, time.Sleep)
}

func newFramePacer(targetFPS int, now func() time.Time, sleep func(time.Duration)) *FramePacer {
	frame := time.Second / time.Duration(targetFPS)
	return &FramePacer{
		frame:    frame,
		deadline: now().Add(frame),
		now:      now,
		sleep:    sleep,
	}
}

func (p *FramePacer) Frame() time.Duration {
	return p.frame
}

// Until returns the time left before the current deadline. It is zero or
// negative once the deadline has passed.
func (p *FramePacer) Until() time.Duration {
	return p.deadline.Sub(p.now())
}

// Advance moves on to the next frame and returns how late the current one
// finished, or zero if it was on time.
func (p *FramePacer) Advance() time.Duration {
	now := p.now()
	if now.After(p.deadline) {
		overshoot := now.Sub(p.deadline)
		p.deadline = now.Add(p.frame)
		return overshoot
	}
	p.deadline = p.deadline.Add(p.frame)
	return 0
}

// MaySleep sleeps until the current deadline, if it has not passed yet, and
// advances to the next frame.
func (p *FramePacer) MaySleep() time.Duration {
	if d := p.Until(); d > 0 {
		p.sleep(d)
	}
	return p.Advance()
}
