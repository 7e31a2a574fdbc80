package commands

import (
	"context"
	"math/rand"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/metrics"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	ticks     int
	turnEvery int
	seed      int64
	rps       = float64(config.SimRate)
	burst     = config.SimBurst
)

func init() {
	simulateCmd.Flags().IntVarP(&ticks, "ticks", "n", 1000, "number of steps to run")
	simulateCmd.Flags().IntVar(&turnEvery, "turn-every", 5, "pick a random direction every n steps, 0 never turns")
	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 uses the clock")
	simulateCmd.Flags().Float64Var(&rps, "rps", rps, "steps per second, 0 runs unthrottled")
	simulateCmd.Flags().IntVar(&burst, "burst", burst, "steps allowed in a burst")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "run a headless game with random turns, logging every meal",
	Args: func(c *cobra.Command, args []string) error {
		if ticks < 0 {
			return errors.New("ticks must not be negative")
		}
		if turnEvery < 0 {
			return errors.New("turn-every must not be negative")
		}
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		_, err := simulate(context.Background())
		return err
	},
}

type simulation struct {
	Steps  int
	Meals  int
	Length int
}

func simulate(ctx context.Context) (*simulation, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	if err := game.Validate(); err != nil {
		return nil, err
	}

	opts, err := game.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, rules.WithRand(r))
	gs, err := rules.New(int32(game.Width), int32(game.Height), opts...)
	if err != nil {
		return nil, err
	}
	metrics.Instrument(gs)

	view := render.NewView(render.NewMemorySurface(), game.Width, game.Height)
	view.Attach(gs)

	result := &simulation{}
	gs.OnFoodGenerated(func(food rules.Point) {
		result.Meals++
		log.WithFields(log.Fields{
			"Step":   result.Steps,
			"Length": len(gs.Snake()),
			"Food":   food,
		}).Info("snake ate")
	})

	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	limiter := rate.NewLimiter(limit, burst)

	start := time.Now()
	for result.Steps < ticks {
		if err := limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "simulation interrupted")
		}
		if turnEvery > 0 && result.Steps%turnEvery == 0 {
			gs.SetDirection(rules.Directions[r.Intn(len(rules.Directions))])
		}
		result.Steps++
		gs.Step()
	}

	if err := view.Draw(); err != nil {
		return nil, errors.Wrap(err, "final render failed")
	}

	result.Length = len(gs.Snake())
	log.WithFields(log.Fields{
		"Seed":    seed,
		"Steps":   result.Steps,
		"Meals":   result.Meals,
		"Length":  result.Length,
		"Elapsed": time.Since(start),
	}).Info("simulation complete")
	return result, nil
}
