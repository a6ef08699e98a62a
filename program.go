package main

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/beatxr/internal/audio"
	"git.lost.host/meutraa/beatxr/internal/config"
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/effect"
	"git.lost.host/meutraa/beatxr/internal/game"
	"git.lost.host/meutraa/beatxr/internal/input"
	"git.lost.host/meutraa/beatxr/internal/parser"
	"git.lost.host/meutraa/beatxr/internal/placement"
	"git.lost.host/meutraa/beatxr/internal/render"
	"git.lost.host/meutraa/beatxr/internal/score"
	"git.lost.host/meutraa/beatxr/internal/system"
	"github.com/eiannone/keyboard"
	"go.uber.org/zap"
)

// Grace period after the last entity left before the loop ends.
const endGrace = 2 * time.Second

// Program owns the state of one song and drives the tick:
// input, motion, cleanup, audio, render.
type Program struct {
	Options  *config.Options
	Tuning   *config.Tuning
	Log      *zap.Logger
	Parser   parser.Parser
	Scorer   score.Scorer
	Player   audio.Player
	Renderer render.Renderer
	Clock    system.Clock
	Keys     <-chan keyboard.KeyEvent

	world    *ecs.World
	removals *ecs.RemovalSet
	effects  *effect.Queue
	runner   *system.Runner
	motion   *system.MotionSystem
	keys     *input.KeySystem

	chart     *game.Chart
	chartFile string
	chartSum  string
	session   score.Session

	startTime    time.Time
	frameCounter uint64
	emptySince   time.Time
}

func (p *Program) Init() error {
	if nil == p.Clock {
		p.Clock = system.SystemClock{}
	}

	p.chartFile = parser.ChartPath(p.Options.SongsDir, p.Options.Song, p.Options.Difficulty)
	chart, err := p.Parser.Parse(p.chartFile)
	if nil != err {
		return err
	}
	p.chart = chart

	if nil != p.Scorer {
		if p.chartSum, err = score.HashFile(p.chartFile); nil != err {
			return fmt.Errorf("unable to hash chart %s: %w", p.chartFile, err)
		}
	}

	p.world = ecs.NewWorld()
	p.removals = ecs.NewRemovalSet()
	p.effects = effect.NewQueue()

	loader := placement.Loader{
		Layout:     p.Tuning.Layout,
		SongHandle: p.Tuning.Motion.SongHandle,
		Log:        p.Log.Named("loader"),
	}
	loader.Load(p.world, p.effects, p.chart, p.Options.SongDir())

	p.motion = system.NewMotionSystem(p.world, p.removals, p.effects, p.Clock, p.Tuning.Motion, p.Log.Named("motion"))
	p.keys = input.NewKeySystem(p.Keys, p.effects, p.motion, p.Tuning.Motion.SongHandle)

	p.runner = system.NewRunner()
	p.runner.Register(
		p.keys,
		p.motion,
		system.NewCleanupSystem(p.world, p.removals, &p.session),
		system.NewAudioSystem(p.effects, p.Player, p.Log.Named("audio")),
		system.NewRenderSystem(p.world, p.Renderer, p.status, p.Log.Named("render")),
	)
	return nil
}

// Tick runs one frame.
func (p *Program) Tick() {
	p.frameCounter++
	p.runner.Tick()
}

// Done reports whether the loop should stop: the player quit, or the chart
// has been played out.
func (p *Program) Done() bool {
	if p.keys.Quit() {
		return true
	}
	if p.world.Notes.Len()+p.world.Obstacles.Len() > 0 || p.motion.Paused() {
		p.emptySince = time.Time{}
		return false
	}
	now := p.Clock.Now()
	if p.emptySince.IsZero() {
		p.emptySince = now
	}
	return now.Sub(p.emptySince) >= endGrace
}

// Run ticks until Done, sleeping out the rest of each frame period.
func (p *Program) Run() {
	p.startTime = time.Now()
	for !p.Done() {
		now := time.Now()
		deadline := now.Add(p.Options.FramePeriod)

		p.Tick()

		time.Sleep(time.Until(deadline))
	}
	p.Log.Info("song finished",
		zap.Uint64("frames", p.frameCounter),
		zap.Duration("elapsed", time.Since(p.startTime)),
	)
}

// Finish stores the session and returns the previous sessions of this chart.
func (p *Program) Finish() ([]score.History, error) {
	if nil == p.Scorer {
		return nil, nil
	}
	if err := p.Scorer.Save(p.chartSum, p.chart.Difficulty.Name, p.session); nil != err {
		return nil, err
	}
	return p.Scorer.Load(p.chartSum)
}

func (p *Program) Session() score.Session {
	return p.session
}

func (p *Program) status() []string {
	notes, mines := p.chart.NoteCount()
	lines := []string{
		fmt.Sprintf("       Song:  %v (%v)", p.Options.Song, p.chart.Difficulty.Name),
		fmt.Sprintf("        BPM:  %6.1f", p.chart.Bpm),
		fmt.Sprintf("   Entities:  %6v", p.world.Len()),
		fmt.Sprintf("      Notes:  %6v / %v", p.session.Notes, notes),
		fmt.Sprintf("      Mines:  %6v / %v", p.session.Mines, mines),
		fmt.Sprintf("  Obstacles:  %6v / %v", p.session.Obstacles, len(p.chart.Obstacles)),
	}
	if p.motion.Paused() {
		lines = append(lines, "     PAUSED   space to resume")
	}
	return lines
}
