package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-patterns/game"
	"github.com/sheikhrachel/gol-patterns/i18n"
	"github.com/sheikhrachel/gol-patterns/model"
	"github.com/sheikhrachel/gol-patterns/utils"
)

const defaultConfigFile = "config.json"

// languageList is the -lang help text, e.g. "en, pt-BR"
func languageList() string {
	var names []string
	for _, tag := range i18n.Supported() {
		names = append(names, tag.String())
	}
	return strings.Join(names, ", ")
}

// parseConfig layers defaults, the JSON config file, GOL_* environment
// variables and finally command-line flags.
func parseConfig(fs *flag.FlagSet, args []string) (utils.Config, error) {
	var (
		configFile  = fs.String("config", defaultConfigFile, "path to a JSON config file")
		generations = fs.Int("generations", 0, "generations per run")
		delay       = fs.Duration("delay", 0, "pause between frames")
		lang        = fs.String("lang", "", "menu language ("+languageList()+")")
		noClear     = fs.Bool("no-clear", false, "do not clear the screen between frames")
	)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		// Only an explicitly requested file has to exist
		if set["config"] || !errors.Is(err, os.ErrNotExist) {
			return utils.Config{}, err
		}
		config = utils.DefaultConfig()
	}

	if err = config.ApplyEnv(); err != nil {
		return utils.Config{}, err
	}

	if set["generations"] {
		config.Generations = *generations
	}
	if set["delay"] {
		config.FrameDelay = *delay
	}
	if set["lang"] {
		config.Language = *lang
	}
	if set["no-clear"] {
		config.ClearScreen = !*noClear
	}

	if err = config.Validate(); err != nil {
		return utils.Config{}, err
	}
	return config, nil
}

func main() {
	log.SetPrefix("[GOL] ")

	config, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := model.NewTerminalRenderer()
	renderer.AliveGlyph = config.AliveGlyph
	renderer.DeadGlyph = config.DeadGlyph
	renderer.Margin = config.Margin
	renderer.ClearScreen = config.ClearScreen
	driver := game.NewDriver(renderer, config, model.NewBoardPool())
	s := newSession(driver, config, os.Stdout, log.Default())

	start := time.Now()
	err = s.loop(ctx, readLines(os.Stdin, log.Default()))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("game stopped: %v", err)
	}
	if ctx.Err() != nil {
		fmt.Println()
	}
	log.Printf("played %d runs in %.1fs", s.runs, time.Since(start).Seconds())
}
