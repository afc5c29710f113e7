package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// ErrNoDevice is returned by Init when the speaker cannot be opened.
var ErrNoDevice = errors.New("audio: no output device")

// Player plays cues through the shared speaker. It implements core.AudioCue
// and never blocks the caller: cues are mixed on the speaker's own goroutine.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	master      float64
	mixer       *beep.Mixer
	initialized bool
	unavailable bool // Init failed; every cue is dropped
	silent      bool // Never touches the speaker
	muted       bool
	played      map[core.Cue]int
	logger      *log.Logger
}

// NewPlayer creates a player from config. Call Init before the first cue.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		rate:   beep.SampleRate(rate),
		master: cfg.MasterVolume,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
		played: make(map[core.Cue]int),
		logger: logger,
	}
}

// NewSilent creates a player that only counts cues. Used for remote
// sessions, where the server's speaker is not the player's.
func NewSilent() *Player {
	p := NewPlayer(config.AudioConfig{Enabled: true}, nil)
	p.silent = true
	return p
}

// Init opens the speaker. A failure leaves the player usable but mute.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.silent {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.unavailable = true
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(p.rate))
	return nil
}

// Play implements core.AudioCue.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[cue]++
	if p.muted || p.silent || p.unavailable || !p.initialized {
		return
	}

	tone, ok := Tones[cue]
	if !ok {
		p.logger.Debug("unknown audio cue", "cue", cue)
		return
	}

	speaker.Lock()
	p.mixer.Add(tone.Streamer(p.rate, p.master))
	speaker.Unlock()
}

// SetMuted turns sound output off or on.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many times a cue was requested, audible or not.
func (p *Player) Played(cue core.Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[cue]
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
