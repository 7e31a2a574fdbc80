// Package session runs a single game: it connects the game state to the view,
// feeds key presses through the input adapter and steps the game on a
// cancellable schedule. Everything happens on the goroutine calling Run.
package session

import (
	"context"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	statusPaused  = "Paused. Arrows or Space to play, Esc to quit."
	statusRunning = "Arrows steer, Space pauses, Esc quits."
)

// Session is the controller of one game.
type Session struct {
	ID        string
	State     *rules.GameState
	View      *render.View
	Scheduler *Scheduler
	Logger    log.FieldLogger

	input  *input.Adapter
	paused bool
	steps  int
}

// New connects gs to view, renders the initial frame and returns a paused
// session.
func New(gs *rules.GameState, view *render.View, scheduler *Scheduler) (*Session, error) {
	id := uuid.NewV4().String()
	s := &Session{
		ID:        id,
		State:     gs,
		View:      view,
		Scheduler: scheduler,
		Logger:    log.WithField("SessionID", id),
		paused:    true,
	}
	s.input = &input.Adapter{Target: s, Logger: s.Logger}

	view.Attach(gs)
	view.SetStatus(statusPaused)
	if err := view.Draw(); err != nil {
		return nil, errors.Wrap(err, "initial render failed")
	}

	s.Logger.WithFields(log.Fields{
		"Width":    gs.Width(),
		"Height":   gs.Height(),
		"Interval": scheduler.Interval,
	}).Info("session created")
	return s, nil
}

// Paused reports whether the game is paused.
func (s *Session) Paused() bool { return s.paused }

// Steps returns how many steps the game has taken.
func (s *Session) Steps() int { return s.steps }

// SetDirection changes the snake direction.
func (s *Session) SetDirection(d rules.Direction) {
	s.State.SetDirection(d)
}

// Pause cancels the pending step.
func (s *Session) Pause() {
	s.paused = true
	s.Scheduler.Stop()
	s.View.SetStatus(statusPaused)
	s.Logger.WithField("Steps", s.steps).Info("paused")
}

// Resume steps once straight away and then on every interval.
func (s *Session) Resume() {
	s.paused = false
	s.View.SetStatus(statusRunning)
	s.step()
	s.Scheduler.Start()
	s.Logger.WithField("Steps", s.steps).Info("resumed")
}

// HandleKey applies a key code and reports whether the session should quit.
func (s *Session) HandleKey(code string) (quit bool, handled bool) {
	if code == input.KeyEscape {
		return true, true
	}
	return false, s.input.HandleKey(code)
}

// Tick runs a scheduled step. Ticks arriving while paused are dropped.
func (s *Session) Tick() {
	if s.paused {
		return
	}
	s.step()
}

func (s *Session) step() {
	s.State.Step()
	s.steps++
}

// Run processes keys and scheduled steps until Escape is pressed, keys is
// closed or ctx is done. The view is redrawn after every reaction.
func (s *Session) Run(ctx context.Context, keys <-chan string) error {
	defer s.Scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case code, ok := <-keys:
			if !ok {
				return nil
			}
			quit, handled := s.HandleKey(code)
			if quit {
				s.Logger.WithField("Steps", s.steps).Info("quit")
				return nil
			}
			if !handled {
				continue
			}

		case <-s.Scheduler.C():
			s.Tick()
		}

		if err := s.View.Draw(); err != nil {
			return errors.Wrap(err, "render failed")
		}
	}
}
