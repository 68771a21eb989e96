package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"

	"github.com/sheikhrachel/gol-patterns/game"
	"github.com/sheikhrachel/gol-patterns/i18n"
	"github.com/sheikhrachel/gol-patterns/patterns"
	"github.com/sheikhrachel/gol-patterns/utils"
)

type selectionKind int

const (
	selectionInvalid selectionKind = iota
	selectionQuit
	selectionRun
)

// parseSelection maps a menu line to a pattern. Anything that is not an
// integer in [0, len(patterns.All())] is invalid.
func parseSelection(line string) (patterns.ID, selectionKind) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, selectionInvalid
	}
	if n == 0 {
		return 0, selectionQuit
	}
	id := patterns.ID(n)
	if !id.Valid() {
		return 0, selectionInvalid
	}
	return id, selectionRun
}

// readLines feeds stdin lines into a channel that is closed at EOF or on
// the first read error. Read errors are logged, not returned.
func readLines(r io.Reader, logger *log.Logger) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logger.Printf("read input: %v", err)
		}
	}()
	return lines
}

type runner interface {
	Run(ctx context.Context, id patterns.ID, generations int) (game.Result, error)
}

// session is the menu loop around the driver
type session struct {
	driver  runner
	config  utils.Config
	out     io.Writer
	logger  *log.Logger
	printer *message.Printer

	// lines typed while a run was in progress, replayed at the next prompt
	pending []string
	runs    int
}

func newSession(driver runner, config utils.Config, out io.Writer, logger *log.Logger) *session {
	tag, ok := i18n.ResolveTag(config.Language)
	if !ok {
		logger.Printf("unknown language %q, using %s", config.Language, tag)
	}
	return &session{
		driver:  driver,
		config:  config,
		out:     out,
		logger:  logger,
		printer: i18n.Printer(tag),
	}
}

// printMenu shows the pattern choices
func (s *session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.printer.Sprintf(i18n.MenuTitleKey))
	for _, id := range patterns.All() {
		fmt.Fprintln(s.out, s.printer.Sprintf(i18n.MenuOptionKey, int(id), game.PatternName(s.printer, id)))
	}
	fmt.Fprintln(s.out, s.printer.Sprintf(i18n.MenuQuitKey))
}

// nextLine returns buffered input first, then waits on lines. ok is false
// once input is exhausted.
func (s *session) nextLine(ctx context.Context, lines <-chan string) (string, bool, error) {
	if len(s.pending) > 0 {
		line := s.pending[0]
		s.pending = s.pending[1:]
		return line, true, nil
	}
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-lines:
		return line, ok, nil
	}
}

// loop prompts until the user quits, input ends or ctx is cancelled
func (s *session) loop(ctx context.Context, lines <-chan string) error {
	for {
		s.printMenu()

		line, ok, err := s.nextLine(ctx, lines)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		id, kind := parseSelection(line)
		switch kind {
		case selectionQuit:
			return nil
		case selectionInvalid:
			fmt.Fprintln(s.out, s.printer.Sprintf(i18n.InvalidChoiceKey, strings.TrimSpace(line), len(patterns.All())))
			continue
		}

		if err = s.runPattern(ctx, id, lines); err != nil {
			return err
		}
	}
}

// runPattern runs one pattern while watching input. A blank line stops the
// run early; other lines are kept for the next prompt.
func (s *session) runPattern(ctx context.Context, id patterns.ID, lines <-chan string) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	var (
		result      game.Result
		interrupted bool
	)

	g.Go(func() error {
		defer cancel()
		var err error
		result, err = s.driver.Run(gctx, id, s.config.Generations)
		return err
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				if strings.TrimSpace(line) == "" {
					interrupted = true
					cancel()
					return nil
				}
				s.pending = append(s.pending, line)
			}
		}
	})

	err := g.Wait()
	s.runs++
	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case interrupted && errors.Is(err, context.Canceled):
		s.logger.Print(s.printer.Sprintf(i18n.RunInterruptedKey, game.PatternName(s.printer, id), result.Generations))
		return nil
	case err != nil:
		return errors.Wrapf(err, "[runPattern] %s", id)
	}

	st := result.Stats
	s.logger.Print(s.printer.Sprintf(i18n.RunSummaryKey,
		game.PatternName(s.printer, id), st.Generations, st.Births, st.Deaths, st.PeakPopulation))
	if result.Final != nil {
		s.logger.Printf("%s: final board %s after %s", id, result.Final.Hash(), st.Runtime().Round(time.Millisecond))
	}
	return nil
}
