package input

import (
	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

// Target is what the adapter drives: the game direction and the step
// scheduler.
type Target interface {
	SetDirection(rules.Direction)
	Paused() bool
	Pause()
	Resume()
}

// Adapter applies key presses to a Target.
type Adapter struct {
	Target Target
	Logger log.FieldLogger
}

// NewAdapter returns an adapter driving t.
func NewAdapter(t Target) *Adapter {
	return &Adapter{Target: t, Logger: log.StandardLogger()}
}

func (a *Adapter) logger() log.FieldLogger {
	if a.Logger == nil {
		return log.StandardLogger()
	}
	return a.Logger
}

// HandleKey applies the key code and reports whether it was recognised.
//
// Arrow keys change direction and resume a paused game. Space pauses a
// running game and resumes a paused one. Everything else is ignored.
func (a *Adapter) HandleKey(code string) bool {
	cmd, ok := Parse(code)
	if !ok {
		return false
	}

	paused := a.Target.Paused()
	if cmd.Toggle && !paused {
		a.logger().WithField("Key", code).Debug("pause")
		a.Target.Pause()
		return true
	}

	if cmd.Direction != "" {
		a.logger().WithFields(log.Fields{
			"Key":       code,
			"Direction": cmd.Direction,
		}).Debug("direction")
		a.Target.SetDirection(cmd.Direction)
	}

	if paused {
		a.logger().WithField("Key", code).Debug("resume")
		a.Target.Resume()
	}
	return true
}
