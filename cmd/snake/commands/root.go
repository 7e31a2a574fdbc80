package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/metrics"
	"github.com/battlesnakeio/snake/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	game       = config.Defaults()
	logLevel   = config.LogLevel
	promEnable = false
	promListen = ":9000"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is a grid snake game for the terminal",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
		log.SetLevel(lvl)

		if err := game.Validate(); err != nil {
			return err
		}
		prometheus()
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&game.Width, "width", game.Width, "board width in cells")
	flags.IntVar(&game.Height, "height", game.Height, "board height in cells")
	flags.IntVar(&game.TickMS, "tick-ms", game.TickMS, "milliseconds between steps")
	flags.StringVar(&game.FoodPolicy, "food-policy", game.FoodPolicy, "food placement policy: row-column or cell")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level")
	flags.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	flags.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}
	metrics.Serve(promListen)
}
