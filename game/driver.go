// Package game runs a seeded board for a fixed number of generations and
// hands every frame to a renderer.
package game

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/message"

	"github.com/sheikhrachel/gol-patterns/i18n"
	"github.com/sheikhrachel/gol-patterns/model"
	"github.com/sheikhrachel/gol-patterns/patterns"
	"github.com/sheikhrachel/gol-patterns/utils"
)

var ErrInvalidGenerations = errors.New("generations must be positive")

// Renderer observes the board before every advance
type Renderer interface {
	Clear() error
	Display(b *model.Board, status string) error
}

// Result describes a finished or interrupted run
type Result struct {
	Pattern     patterns.ID
	Generations int
	Final       *model.Board
	Stats       utils.Stats
}

// Driver owns the board buffers for one run at a time
type Driver struct {
	renderer Renderer
	delay    time.Duration
	printer  *message.Printer
	pool     *model.BoardPool
}

// NewDriver creates a driver. A nil pool allocates fresh boards per run.
func NewDriver(renderer Renderer, config utils.Config, pool *model.BoardPool) *Driver {
	tag, _ := i18n.ResolveTag(config.Language)
	return &Driver{
		renderer: renderer,
		delay:    config.FrameDelay,
		printer:  i18n.Printer(tag),
		pool:     pool,
	}
}

// Run seeds a board with id and renders then advances it generations times.
// Cancelling ctx stops the run between generations; the partial result is
// returned together with the context error.
func (d *Driver) Run(ctx context.Context, id patterns.ID, generations int) (Result, error) {
	result := Result{Pattern: id}
	if generations <= 0 {
		return result, errors.Wrapf(ErrInvalidGenerations, "[Run] got %d", generations)
	}

	current := d.pool.Get(model.Rows, model.Columns)
	next := d.pool.Get(model.Rows, model.Columns)
	defer model.BoardToPool(current, d.pool)
	defer model.BoardToPool(next, d.pool)

	if err := patterns.Seed(current, id); err != nil {
		return result, errors.Wrapf(err, "[Run] failed to seed %s", id)
	}

	stats := utils.NewStats()
	population := current.CountLiving()
	stats.Observe(population)

	var err error
	for i := range generations {
		if err = ctx.Err(); err != nil {
			break
		}

		frameStart := time.Now()
		if err = d.renderer.Clear(); err != nil {
			err = errors.Wrapf(err, "[Run] generation %d", i)
			break
		}
		status := d.printer.Sprintf(i18n.StatusKey, PatternName(d.printer, id), i+1, generations, population)
		if err = d.renderer.Display(current, status); err != nil {
			err = errors.Wrapf(err, "[Run] generation %d", i)
			break
		}

		if err = pause(ctx, d.delay); err != nil {
			break
		}

		summary := current.Advance(next)
		population = summary.Population
		stats.Update(summary.Births, summary.Deaths, population, time.Since(frameStart))
	}

	result.Generations = stats.Generations
	result.Final = current.Clone()
	result.Stats = *stats
	return result, err
}

// pause waits for d or until ctx is done
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var patternKeys = map[patterns.ID]string{
	patterns.Pulsar:    i18n.PatternPulsarKey,
	patterns.Gliders:   i18n.PatternGlidersKey,
	patterns.GliderGun: i18n.PatternGunKey,
	patterns.QueenBee:  i18n.PatternQueenBeeKey,
}

// PatternName returns the localized menu name of id
func PatternName(p *message.Printer, id patterns.ID) string {
	key, ok := patternKeys[id]
	if !ok {
		return id.String()
	}
	return p.Sprintf(key)
}
