// Package controller runs a game of snake. It owns the grid, the snake and the
// food spawner, and steps them forward one tick at a time.
package controller

import (
	"context"
	"math/rand"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/render"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// State is where the game is in its lifecycle.
type State string

// Game states.
const (
	StatePlaying  State = "playing"
	StateGameOver State = "game-over"
	StateExited   State = "exited"
)

// Options configure a new Controller. Zero values fall back to the defaults
// in the config package.
type Options struct {
	Width       int
	Height      int
	SnakeLength int
	Seed        int64
	TickRate    rate.Limit
	Input       KeyPoller
	Screen      render.Screen
}

// Controller drives a single game.
type Controller struct {
	ID string

	grid    *rules.Grid
	snake   *rules.Snake
	food    *rules.FoodSpawner
	input   KeyPoller
	screen  render.Screen
	limiter *rate.Limiter

	state       State
	turn        int
	eaten       int
	lastOutcome rules.Outcome
	deathCause  string
	hud         render.HUD
}

// New sets up the board, lays the snake in the middle heading right and puts
// down the first piece of food.
func New(opts Options) (*Controller, error) {
	if opts.Width == 0 {
		opts.Width = config.BoardWidth
	}
	if opts.Height == 0 {
		opts.Height = config.BoardHeight
	}
	if opts.SnakeLength == 0 {
		opts.SnakeLength = config.SnakeLength
	}
	if opts.Seed == 0 {
		opts.Seed = config.SeedOrNow()
	}
	if opts.TickRate == 0 {
		opts.TickRate = config.TickRate
	}
	if opts.Input == nil {
		opts.Input = NoInput{}
	}

	c := &Controller{
		ID:      uuid.NewV4().String(),
		grid:    rules.NewGrid(opts.Width, opts.Height),
		food:    rules.NewFoodSpawner(rand.New(rand.NewSource(opts.Seed))),
		input:   opts.Input,
		screen:  opts.Screen,
		limiter: rate.NewLimiter(opts.TickRate, config.TickBurst),
		state:   StatePlaying,
	}

	start := rules.Position{X: opts.Width / 2, Y: opts.Height / 2}
	snake, err := rules.NewSnake(c.grid, start, opts.SnakeLength, rules.Right)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to place snake at %s", start)
	}
	c.snake = snake

	if _, err := c.food.Spawn(c.grid); err != nil {
		return nil, errors.Wrap(err, "unable to place initial food")
	}

	log.WithFields(log.Fields{
		"GameID": c.ID,
		"Width":  opts.Width,
		"Height": opts.Height,
		"Seed":   opts.Seed,
	}).Debug("game created")
	return c, nil
}

// State returns the current game state.
func (c *Controller) State() State { return c.state }

// Score is the number of food items eaten. While there is room for food this
// is the spawn count minus the item placed before play started.
func (c *Controller) Score() int { return c.eaten }

// Turn is the number of ticks processed.
func (c *Controller) Turn() int { return c.turn }

// LastOutcome is what happened to the snake on the most recent tick.
func (c *Controller) LastOutcome() rules.Outcome { return c.lastOutcome }

// DeathCause says what the snake ran into, once the game is over.
func (c *Controller) DeathCause() string { return c.deathCause }

// Grid exposes the playfield.
func (c *Controller) Grid() *rules.Grid { return c.grid }

// Snake exposes the player.
func (c *Controller) Snake() *rules.Snake { return c.snake }

// HUD returns the overlay state shown under the board.
func (c *Controller) HUD() render.HUD { return c.hud }

// Tick reads at most one pending key, advances the snake and resolves what it
// ran into.
func (c *Controller) Tick() error {
	if c.state != StatePlaying {
		return nil
	}

	in, ok, err := c.input.PollKey()
	if err != nil {
		return errors.Wrap(err, "unable to read input")
	}
	if ok {
		if in.Quit {
			log.WithField("GameID", c.ID).Debug("quit requested")
			c.state = StateExited
			return nil
		}
		if d, ok := directionFor(in.Ch); ok {
			c.snake.SetDesiredDirection(d)
		}
	}

	c.turn++
	cause := rules.DeathCause(c.grid, c.snake)
	outcome, err := c.snake.Advance(c.grid)
	if err != nil {
		return errors.Wrapf(err, "turn %d: unable to advance snake", c.turn)
	}
	c.lastOutcome = outcome

	fields := log.Fields{
		"GameID":  c.ID,
		"Turn":    c.turn,
		"Head":    c.snake.Head(),
		"Outcome": outcome,
	}

	switch outcome {
	case rules.Collided:
		c.deathCause = cause
		fields["Cause"] = cause
		log.WithFields(fields).Info("snake died")
		c.hud.GameOver = true
		c.state = StateGameOver
		return nil
	case rules.Ate:
		c.eaten++
		_, err := c.food.Spawn(c.grid)
		if errors.Cause(err) == rules.ErrBoardFull {
			// nowhere left to go, the player has won
			log.WithFields(fields).Info("board full")
			c.hud.Score = c.Score()
			c.hud.ShowScore = true
			c.hud.GameOver = true
			c.state = StateGameOver
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "turn %d: unable to place food", c.turn)
		}
		fields["Food"] = c.food.Last()
		log.WithFields(fields).Debug("snake ate")
	default:
		log.WithFields(fields).Debug("snake moved")
	}

	c.hud.Score = c.Score()
	c.hud.ShowScore = true
	return nil
}

// Frame returns the current frame as text.
func (c *Controller) Frame() []string {
	return render.Frame(c.grid, c.snake.Head(), c.hud)
}

// Render draws the current frame on the screen.
func (c *Controller) Render() error {
	if c.screen == nil {
		return nil
	}
	return errors.Wrap(render.Draw(c.screen, c.Frame()), "unable to draw frame")
}

// Run renders the initial frame, then ticks and renders until the snake dies,
// the player quits or ctx is cancelled. Ticks are paced by the controller's
// rate limiter.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Render(); err != nil {
		return err
	}
	// Drop the initial burst token so the first tick waits a full delay.
	c.limiter.Allow()

	for c.state == StatePlaying {
		if err := c.limiter.Wait(ctx); err != nil {
			log.WithError(err).WithField("GameID", c.ID).Debug("game interrupted")
			c.state = StateExited
			break
		}
		if err := c.Tick(); err != nil {
			return err
		}
		if err := c.Render(); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"GameID": c.ID,
		"Turn":   c.turn,
		"Score":  c.Score(),
		"State":  c.state,
	}).Info("game ended")
	return nil
}
