package commands

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/metrics"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/session"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logFile string

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while playing")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal",
	RunE: func(*cobra.Command, []string) error {
		return play(context.Background())
	},
}

func play(ctx context.Context) error {
	// termbox owns the terminal, logs go to a file or nowhere.
	closeLog, err := redirectLogs(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := game.Validate(); err != nil {
		return err
	}
	opts, err := game.Options()
	if err != nil {
		return err
	}

	gs, err := rules.New(int32(game.Width), int32(game.Height), opts...)
	if err != nil {
		return err
	}
	metrics.Instrument(gs)

	surface, closeTerm, err := render.OpenTermbox()
	if err != nil {
		return err
	}
	defer closeTerm()

	s, err := session.New(gs, render.NewView(surface, game.Width, game.Height), session.NewScheduler(game.Interval()))
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)

	return s.Run(ctx, input.PollEvents(stop))
}

func redirectLogs(path string) (func(), error) {
	if path == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", path)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error while closing log file")
		}
	}, nil
}
