// Package dodge implements the falling-obstacle avoidance game: the player
// slides left and right along the bottom of the playfield while obstacles
// rain down faster and more often as the score grows.
package dodge

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/particles"
)

// ID is the game identifier used for score storage.
const ID = "dodge"

// ErrInvalidTransition is returned when Start or Restart is called from a
// phase that does not allow it.
var ErrInvalidTransition = errors.New("dodge: invalid phase transition")

// Options wires the game to its collaborators. Nil fields get no-op or
// in-memory stand-ins.
type Options struct {
	Audio  core.AudioCue
	Store  core.KeyValueStore
	HUD    core.HUD
	Logger *log.Logger
	Seed   int64
}

// Game owns the whole simulation state of one session.
type Game struct {
	cfg    config.DodgeConfig
	phase  core.Phase
	player Player
	moving bool // Player had a direction held last update (tilt animation)

	obstacles []Obstacle
	spawner   *Spawner

	particles   *particles.Engine
	particlesOn bool
	hitBurst    particles.Burst
	hitColor    core.Color
	scoreBurst  particles.Burst
	scoreColor  core.Color

	score        float64
	level        int
	highScore    int
	newHighScore bool

	seed int64
	runs int // Number of starts, mixed into the seed so restarts differ

	audio  core.AudioCue
	store  core.KeyValueStore
	hud    core.HUD
	logger *log.Logger
}

// New creates a game in the Idle phase.
func New(cfg config.DodgeConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dodge: invalid config: %w", err)
	}

	hit, hitColor, err := particles.BurstFromConfig(cfg.Particles.Hit)
	if err != nil {
		return nil, fmt.Errorf("dodge: hit burst: %w", err)
	}
	scored, scoreColor, err := particles.BurstFromConfig(cfg.Particles.Score)
	if err != nil {
		return nil, fmt.Errorf("dodge: score burst: %w", err)
	}

	g := &Game{
		cfg:         cfg,
		phase:       core.PhaseIdle,
		obstacles:   make([]Obstacle, 0, 16),
		spawner:     NewSpawner(opts.Seed, cfg.Obstacles, cfg.Spawn),
		particles:   particles.NewEngineFromConfig(opts.Seed, cfg.Particles),
		particlesOn: cfg.Particles.Enabled,
		hitBurst:    hit,
		hitColor:    hitColor,
		scoreBurst:  scored,
		scoreColor:  scoreColor,
		seed:        opts.Seed,
		audio:       opts.Audio,
		store:       opts.Store,
		hud:         opts.HUD,
		logger:      opts.Logger,
	}
	if g.audio == nil {
		g.audio = core.NopAudio{}
	}
	if g.store == nil {
		g.store = core.NewMemoryStore()
	}
	if g.hud == nil {
		g.hud = core.NopHUD{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.resetState()
	return g, nil
}

// Start leaves the Idle phase and begins the first run.
func (g *Game) Start() error {
	if g.phase != core.PhaseIdle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, g.phase)
	}
	g.begin()
	return nil
}

// Restart begins a new run after a game over.
func (g *Game) Restart() error {
	if g.phase != core.PhaseGameOver {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, g.phase)
	}
	g.begin()
	return nil
}

// begin resets the simulation and enters the Running phase.
func (g *Game) begin() {
	g.runs++
	seed := g.seed + int64(g.runs)
	g.spawner.Reset(seed)
	g.particles.Reseed(seed)
	g.resetState()
	g.phase = core.PhaseRunning

	g.logger.Debug("run started", "run", g.runs, "high_score", g.highScore)
	g.publish()
}

// resetState puts every simulation field back to its starting value and
// reloads the persisted high score.
func (g *Game) resetState() {
	pc := g.cfg.Player
	fw, fh := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	g.player = NewPlayer(fw, fh, pc.Width, pc.Height, pc.Speed, pc.BottomOffset)
	g.moving = false
	g.obstacles = g.obstacles[:0]
	g.particles.Clear()
	g.score = 0
	g.level = 1
	g.newHighScore = false
	g.highScore = int(math.Floor(g.store.GetNumber(g.cfg.Scoring.HighScoreKey, 0)))
	if g.highScore < 0 {
		g.highScore = 0
	}
}

// Update advances the simulation by dt seconds. It does nothing unless the
// game is running.
func (g *Game) Update(dt float64, in core.Intent) {
	if g.phase != core.PhaseRunning {
		return
	}

	fw, fh := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	// Player movement
	g.moving = in.Moving()
	g.player.Move(in.Direction(), dt, fw, g.cfg.Player.EdgeMargin)

	// Spawning
	if g.spawner.Advance(dt * 1000) {
		g.obstacles = append(g.obstacles, g.spawner.Spawn(g.level, g.score, fw))
	}

	// Obstacles, back to front so removal does not skip anything.
	// A collision ends the run but the rest of this frame's batch is still
	// processed; the high score is committed once the batch is done.
	changed := false
	hit := false
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		g.obstacles[i].Fall(dt)
		ob := g.obstacles[i]

		if !hit && core.Overlaps(ob.Box, g.player.Box, g.cfg.Collision.Margin) {
			hit = true
			changed = true
			g.collide()
		}

		if ob.Y > fh+g.cfg.Obstacles.ExitMargin {
			g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
			g.scoreObstacle(ob)
			changed = true
		}
	}
	if hit {
		g.commitHighScore()
	}

	if g.particlesOn {
		g.particles.Update(dt)
	}

	if changed {
		g.publish()
	}
}

// collide ends the run with a burst at the player's center.
func (g *Game) collide() {
	g.phase = core.PhaseGameOver
	g.audio.Play(core.CueHit)
	if g.particlesOn {
		cx, cy := g.player.Center()
		g.particles.Spawn(cx, cy, g.hitColor, g.hitBurst)
	}
	g.logger.Debug("collision", "score", int(g.score), "level", g.level)
}

// commitHighScore stores the floored score if it beats the record. The store
// is read again first since other sessions may share it and have raised the
// record since this run started.
func (g *Game) commitHighScore() {
	if stored := int(math.Floor(g.store.GetNumber(g.cfg.Scoring.HighScoreKey, 0))); stored > g.highScore {
		g.highScore = stored
	}

	final := int(math.Floor(g.score))
	if final <= g.highScore {
		return
	}
	g.highScore = final
	g.newHighScore = true
	g.store.SetNumber(g.cfg.Scoring.HighScoreKey, float64(final))
	g.logger.Info("new high score", "score", final)
}

// scoreObstacle awards points for an obstacle that fell past the bottom.
func (g *Game) scoreObstacle(ob Obstacle) {
	g.score += g.cfg.Scoring.PointsPerObstacle
	g.audio.Play(core.CueScore)
	if g.particlesOn {
		cx, _ := ob.Center()
		g.particles.Spawn(cx, g.cfg.Playfield.Height-10, g.scoreColor, g.scoreBurst)
	}

	if lvl := int(math.Floor(g.score/g.cfg.Scoring.PointsPerLevel)) + 1; lvl > g.level {
		g.level = lvl
		g.logger.Debug("level up", "level", lvl)
	}
}

// publish hands the current presentation state to the HUD.
func (g *Game) publish() {
	g.hud.Publish(g.HUD())
}

// Draw renders the playfield through the renderer.
func (g *Game) Draw(r core.Renderer) {
	r.Clear()

	p := g.player
	r.DrawSprite(p.Kind, p.X, p.Y, p.W, p.H, core.SpriteOptions{
		Tilt:   g.moving && g.phase == core.PhaseRunning,
		Bounce: true,
	})

	for _, ob := range g.obstacles {
		r.DrawSprite(ob.Kind, ob.X, ob.Y, ob.W, ob.H, core.SpriteOptions{Bounce: true})
	}

	for _, pt := range g.particles.Particles() {
		r.DrawSprite(pt.Kind.Sprite(), pt.X-pt.Size/2, pt.Y-pt.Size/2, pt.Size, pt.Size, core.SpriteOptions{
			Rotation: pt.Rotation,
			Alpha:    pt.Alpha(),
			Color:    pt.Color,
		})
	}

	if g.phase == core.PhaseGameOver {
		r.FillOverlay(core.ColorGray)
	}
}

// HUD returns the current presentation state.
func (g *Game) HUD() core.HUDState {
	return core.HUDState{
		Score:        int(math.Floor(g.score)),
		Level:        g.level,
		HighScore:    g.highScore,
		NewHighScore: g.newHighScore,
		GameOver:     g.phase == core.PhaseGameOver,
		Phase:        g.phase,
	}
}

// SetParticlesEnabled turns the particle effects on or off. Disabling also
// drops any live particles.
func (g *Game) SetParticlesEnabled(on bool) {
	g.particlesOn = on
	if !on {
		g.particles.Clear()
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Score returns the raw score.
func (g *Game) Score() float64 { return g.score }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// HighScore returns the best score known to this session.
func (g *Game) HighScore() int { return g.highScore }

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (g *Game) Obstacles() []Obstacle { return g.obstacles }

// Particles returns the live particles.
func (g *Game) Particles() []particles.Particle { return g.particles.Particles() }

// SpawnInterval returns the spawner's current cooldown in milliseconds.
func (g *Game) SpawnInterval() float64 { return g.spawner.Interval() }

// Config returns the tuning the game runs with.
func (g *Game) Config() config.DodgeConfig { return g.cfg }
