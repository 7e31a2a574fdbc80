package session

import "time"

// DefaultInterval is the time between steps of a running game.
const DefaultInterval = 300 * time.Millisecond

// Ticker is the part of time.Ticker the scheduler uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// NewTimeTicker returns a Ticker backed by time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Scheduler fires on a fixed interval while running. Stopping it drops the
// current ticker, so a later Start always begins a fresh interval and ticks
// from an old ticker can never be observed.
type Scheduler struct {
	Interval  time.Duration
	NewTicker func(time.Duration) Ticker

	ticker Ticker
}

// NewScheduler returns a stopped scheduler firing every interval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		Interval:  interval,
		NewTicker: NewTimeTicker,
	}
}

// Start begins a fresh interval, replacing any running ticker.
func (s *Scheduler) Start() {
	s.Stop()
	s.ticker = s.NewTicker(s.Interval)
}

// Stop cancels the pending tick.
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// Running reports whether a ticker is active.
func (s *Scheduler) Running() bool { return s.ticker != nil }

// C returns the tick channel of the active ticker. It is nil while stopped,
// which blocks forever in a select.
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C()
}
