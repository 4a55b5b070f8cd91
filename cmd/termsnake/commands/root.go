package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/controller"
	"github.com/battlesnakeio/termsnake/render"
	"github.com/battlesnakeio/termsnake/terminal"
	"github.com/battlesnakeio/termsnake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// device is what the game needs from the terminal.
type device interface {
	controller.KeyPoller
	render.Screen
	Close()
}

var openDevice = func() (device, error) {
	return terminal.Open()
}

var rootCmd = &cobra.Command{
	Use:           "termsnake",
	Short:         "termsnake is a snake game for the terminal, steer with w/a/s/d and quit with esc",
	Args:          cobra.NoArgs,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)
		go func() {
			select {
			case s := <-sigs:
				log.WithField("signal", s).Debug("received signal")
				cancel()
			case <-ctx.Done():
			}
		}()

		return play(ctx)
	},
}

func play(ctx context.Context) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	game, err := controller.New(controller.Options{
		Input:  dev,
		Screen: dev,
	})
	if err != nil {
		return err
	}
	return game.Run(ctx)
}

func setupLogging() {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithError(err).Warn("invalid log level, using warn")
		level = log.WarnLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
}

// Execute runs the root command
func Execute() {
	setupLogging()

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("termsnake failed")
		os.Exit(1)
	}
}
