// Package playback plays the sound bank on the local audio device.
package playback

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/destroyds/internal/audio"
)

const (
	musicVolume = 0.1
	shootVolume = 0.5
	// dieCutoff limits the explosion before the lose jingle is queued.
	dieCutoff = 1200 * time.Millisecond
)

// deck mixes effects and one music track. Callers serialize access.
type deck struct {
	bank  *audio.Bank
	mixer *beep.Mixer
	music *fader
}

func newDeck(bank *audio.Bank) *deck {
	return &deck{bank: bank, mixer: &beep.Mixer{}}
}

func (d *deck) play(name string) error {
	s, err := d.bank.Sound(name)
	if err != nil {
		return err
	}
	var out beep.Streamer = s
	if name == audio.Shoot {
		out = volume(s, shootVolume)
	}
	d.mixer.Add(out)
	return nil
}

func (d *deck) playSequence(names ...string) error {
	parts := make([]beep.Streamer, 0, len(names))
	for i, name := range names {
		s, err := d.bank.Sound(name)
		if err != nil {
			return err
		}
		var part beep.Streamer = s
		if name == audio.ShipDie && i < len(names)-1 {
			part = beep.Take(audio.SampleRate.N(dieCutoff), s)
		}
		parts = append(parts, part)
	}
	d.mixer.Add(beep.Seq(parts...))
	return nil
}

func (d *deck) playMusic(name string, loop bool) error {
	s, err := d.bank.Sound(name)
	if err != nil {
		return err
	}
	if d.music != nil {
		d.music.stop()
	}
	var track beep.Streamer = s
	if loop {
		track = beep.Loop(-1, s)
	}
	d.music = &fader{Streamer: volume(track, musicVolume), gain: 1}
	d.mixer.Add(d.music)
	return nil
}

func (d *deck) fadeOutMusic(dur time.Duration) {
	if d.music == nil {
		return
	}
	d.music.fadeOut(audio.SampleRate.N(dur))
	d.music = nil
}

func volume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// fader lowers the gain of a stream to zero over a number of samples and then
// ends it.
type fader struct {
	beep.Streamer
	gain   float64
	step   float64
	fading bool
	done   bool
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.done {
		return 0, false
	}
	n, ok := f.Streamer.Stream(samples)
	if !f.fading {
		return n, ok
	}
	for i := range samples[:n] {
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
		f.gain -= f.step
		if f.gain <= 0 {
			f.done = true
			return i + 1, true
		}
	}
	return n, ok
}

func (f *fader) fadeOut(samples int) {
	if samples <= 0 {
		f.stop()
		return
	}
	f.fading = true
	f.step = f.gain / float64(samples)
}

func (f *fader) stop() {
	f.done = true
}

// Player plays sounds on the default audio device.
type Player struct {
	mu     sync.Mutex
	deck   *deck
	logger *log.Logger
}

// NewPlayer opens the audio device and starts mixing. Errors from the device
// are returned so callers can fall back to audio.Silent.
func NewPlayer(bank *audio.Bank, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &Player{deck: newDeck(bank), logger: logger}
	speaker.Play(p.deck.mixer)
	return p, nil
}

func (p *Player) locked(fn func() error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	err := fn()
	speaker.Unlock()
	if err != nil {
		p.logger.Warn("audio", "err", err)
	}
}

// PlaySound starts the named effect.
func (p *Player) PlaySound(name string) {
	p.locked(func() error { return p.deck.play(name) })
}

// PlaySequence plays the named sounds back to back.
func (p *Player) PlaySequence(names ...string) {
	p.locked(func() error { return p.deck.playSequence(names...) })
}

// PlayMusic replaces the current music track.
func (p *Player) PlayMusic(name string, loop bool) {
	p.locked(func() error { return p.deck.playMusic(name, loop) })
}

// FadeOutMusic fades the current music track to silence over d.
func (p *Player) FadeOutMusic(d time.Duration) {
	p.locked(func() error {
		p.deck.fadeOutMusic(d)
		return nil
	})
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Clear()
	speaker.Close()
}
