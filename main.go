package main

import (
	"fmt"
	"os"
	"time"

	"git.lost.host/meutraa/beatxr/internal/assets"
	"git.lost.host/meutraa/beatxr/internal/audio"
	"git.lost.host/meutraa/beatxr/internal/config"
	"git.lost.host/meutraa/beatxr/internal/input"
	"git.lost.host/meutraa/beatxr/internal/parser"
	"git.lost.host/meutraa/beatxr/internal/render"
	"git.lost.host/meutraa/beatxr/internal/score"
	"git.lost.host/meutraa/beatxr/internal/theme"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		fmt.Fprintf(os.Stderr, "beatxr: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := config.Parse(args)
	if nil != err {
		return err
	}

	tuning, err := config.LoadTuning(opts.TuningFile)
	if nil != err {
		return err
	}
	if opts.LogLevel != "" {
		tuning.Logging.Level = opts.LogLevel
	}

	log, err := config.NewLogger(tuning.Logging, opts.LogFile)
	if nil != err {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	defer log.Sync()

	for _, key := range tuning.Unknown {
		log.Warn("unknown tuning key", zap.String("key", key))
	}

	registry, err := assets.Load(opts.Manifest)
	if nil != err {
		log.Warn("using default asset manifest", zap.Error(err))
		registry = assets.Default()
	}
	for _, err := range registry.Verify() {
		log.Warn("asset file missing", zap.Error(err))
	}

	scorer := &score.DefaultScorer{Path: opts.Database, Log: log.Named("score")}
	if err := scorer.Init(); nil != err {
		return err
	}
	defer scorer.Deinit()

	p := &Program{
		Options: opts,
		Tuning:  tuning,
		Log:     log,
		Parser:  &parser.DefaultParser{Log: log.Named("parser")},
		Scorer:  scorer,
	}

	if opts.Mute {
		p.Player = &audio.Recorder{}
	} else {
		player, err := audio.NewBeepPlayer(log.Named("audio"))
		if nil != err {
			return err
		}
		p.Player = player
	}
	defer p.Player.Close()

	if opts.Headless {
		p.Renderer = &render.NullRenderer{}
	} else {
		keys, closeKeys, err := input.Open()
		if nil != err {
			return fmt.Errorf("unable to open keyboard: %w", err)
		}
		defer func() {
			if err := closeKeys(); nil != err {
				log.Warn("unable to close keyboard", zap.Error(err))
			}
		}()
		p.Keys = keys
		p.Renderer = &render.TerminalRenderer{
			Theme:  &theme.DefaultTheme{},
			Assets: registry,
			Log:    log.Named("render"),
			Near:   tuning.Motion.NoteRemoveZ,
			Far:    tuning.Motion.HideBeyondZ,
		}
	}

	if err := p.Init(); nil != err {
		return err
	}

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	time.Sleep(opts.Delay)
	p.Run()
	if err := p.Renderer.Deinit(); nil != err {
		log.Warn("unable to restore terminal", zap.Error(err))
	}

	histories, err := p.Finish()
	if nil != err {
		return err
	}
	printHistory(p.Session(), histories)
	return nil
}

func printHistory(current score.Session, histories []score.History) {
	fmt.Printf("notes %v  mines %v  obstacles %v\n", current.Notes, current.Mines, current.Obstacles)
	for i, h := range histories {
		if i == 5 {
			break
		}
		fmt.Printf("%2v) %v  %-10v notes %5v  mines %5v  obstacles %5v\n",
			i, h.PlayedAt.Format("2006-01-02 15:04"), h.Difficulty, h.Notes, h.Mines, h.Obstacles)
	}
}
