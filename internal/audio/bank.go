// Package audio synthesizes and names the game's sound effects and music.
// Playing them on a device lives in the playback subpackage.
package audio

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// ErrUnknownSound is returned when a sound name is not in the bank.
var ErrUnknownSound = errors.New("unknown sound")

// SampleRate is the rate every sound in a bank is stored at.
const SampleRate = beep.SampleRate(44100)

// Sound names.
const (
	Shoot           = "shoot"
	AsteroidImpact  = "ast_impact"
	AsteroidImpact2 = "ast_impact2"
	ShieldExplosion = "shield_explosion"
	PowerUp         = "powerup"
	WinSound        = "win_sound"
	ShipDie         = "spaceship_die"
	LoseSound1      = "l_sound1"
	LoseSound2      = "l_sound2"
	LoseSound3      = "l_sound3"
	BackgroundMusic = "Background_music"
)

var (
	// ImpactSounds are played at random when an asteroid breaks.
	ImpactSounds = []string{AsteroidImpact, AsteroidImpact2}
	// LoseSounds are played at random after the ship explodes.
	LoseSounds = []string{LoseSound1, LoseSound2, LoseSound3}
)

// Bank holds decoded sounds by name.
type Bank struct {
	format  beep.Format
	buffers map[string]*beep.Buffer
}

// NewBank returns a bank with every game sound synthesized.
func NewBank() (*Bank, error) {
	b := &Bank{
		format:  beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2},
		buffers: make(map[string]*beep.Buffer),
	}
	rng := rand.New(rand.NewSource(1))
	for _, r := range recipes {
		s, err := r.build(rng)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", r.name, err)
		}
		b.store(r.name, s)
	}
	return b, nil
}

// LoadBank builds the synthesized bank and applies the overrides in dir, if
// any. A corrupt override is an error: the game does not start with a sound
// set the player did not ask for.
func LoadBank(dir string) (*Bank, error) {
	b, err := NewBank()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return b, nil
	}
	if _, err := b.LoadDir(dir); err != nil {
		return nil, fmt.Errorf("load sounds from %s: %w", dir, err)
	}
	return b, nil
}

// LoadDir replaces synthesized sounds with <name>.wav files found in dir.
// Files for names the bank does not know are ignored; missing files keep the
// synthesized version. It returns the names that were replaced.
func (b *Bank) LoadDir(dir string) ([]string, error) {
	var loaded []string
	for _, name := range b.Names() {
		path := filepath.Join(dir, name+".wav")
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return loaded, fmt.Errorf("open %s: %w", path, err)
		}
		if err := b.loadWAV(name, f); err != nil {
			return loaded, fmt.Errorf("decode %s: %w", path, err)
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}

func (b *Bank) loadWAV(name string, f *os.File) error {
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != b.format.SampleRate {
		s = beep.Resample(4, format.SampleRate, b.format.SampleRate, s)
	}
	b.store(name, s)
	return nil
}

func (b *Bank) store(name string, s beep.Streamer) {
	buf := beep.NewBuffer(b.format)
	buf.Append(s)
	b.buffers[name] = buf
}

// Sound returns a fresh streamer for the named sound.
func (b *Bank) Sound(name string) (beep.StreamSeeker, error) {
	buf, ok := b.buffers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	return buf.Streamer(0, buf.Len()), nil
}

// Duration returns the length of the named sound.
func (b *Bank) Duration(name string) (time.Duration, error) {
	buf, ok := b.buffers[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	return b.format.SampleRate.D(buf.Len()), nil
}

// Names returns the sorted sound names.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.buffers))
	for name := range b.buffers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type recipe struct {
	name  string
	build func(rng *rand.Rand) (beep.Streamer, error)
}

var recipes = []recipe{
	{Shoot, func(*rand.Rand) (beep.Streamer, error) {
		return sweep(1200, 300, 90*time.Millisecond, 0.4), nil
	}},
	{AsteroidImpact, func(rng *rand.Rand) (beep.Streamer, error) {
		return burst(rng, 250*time.Millisecond, 90, 10), nil
	}},
	{AsteroidImpact2, func(rng *rand.Rand) (beep.Streamer, error) {
		return burst(rng, 350*time.Millisecond, 60, 7), nil
	}},
	{ShieldExplosion, func(rng *rand.Rand) (beep.Streamer, error) {
		ring, err := tone(sine, 440, 400*time.Millisecond, 0.3)
		if err != nil {
			return nil, err
		}
		return beep.Mix(ring, burst(rng, 400*time.Millisecond, 120, 6)), nil
	}},
	{PowerUp, func(*rand.Rand) (beep.Streamer, error) {
		return melody(sine, 80*time.Millisecond, 523.25, 659.25, 783.99, 1046.5)
	}},
	{WinSound, func(*rand.Rand) (beep.Streamer, error) {
		return melody(bright, 160*time.Millisecond, 523.25, 659.25, 783.99, 659.25, 1046.5)
	}},
	{ShipDie, func(rng *rand.Rand) (beep.Streamer, error) {
		return burst(rng, 1200*time.Millisecond, 45, 3), nil
	}},
	{LoseSound1, func(*rand.Rand) (beep.Streamer, error) {
		return melody(bright, 250*time.Millisecond, 392, 349.23, 329.63, 261.63)
	}},
	{LoseSound2, func(*rand.Rand) (beep.Streamer, error) {
		return melody(bright, 300*time.Millisecond, 293.66, 277.18, 261.63)
	}},
	{LoseSound3, func(*rand.Rand) (beep.Streamer, error) {
		return sweep(440, 110, 900*time.Millisecond, 0.35), nil
	}},
	{BackgroundMusic, func(*rand.Rand) (beep.Streamer, error) {
		// A slow minor arpeggio, looped by the player.
		return melody(sine, 400*time.Millisecond,
			220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94)
	}},
}

type waveform int

const (
	sine waveform = iota
	bright
)

// oscillator returns an endless tone. bright adds the octave for a harder timbre.
func oscillator(w waveform, freq float64) (beep.Streamer, error) {
	base, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, err
	}
	if w == sine {
		return base, nil
	}
	octave, err := generators.SineTone(SampleRate, 2*freq)
	if err != nil {
		return nil, err
	}
	return beep.Mix(volume(base, 0.6), volume(octave, 0.4)), nil
}

// tone plays a waveform for d with a short attack and release.
func tone(w waveform, freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	s, err := oscillator(w, freq)
	if err != nil {
		return nil, err
	}
	n := SampleRate.N(d)
	return volume(envelope(beep.Take(n, s), n, SampleRate.N(5*time.Millisecond)), vol), nil
}

// melody plays freqs one after another, each for step.
func melody(w waveform, step time.Duration, freqs ...float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		n, err := tone(w, f, step, 0.35)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return beep.Seq(notes...), nil
}

// sweep glides a sine from one frequency to another.
func sweep(from, to float64, d time.Duration, vol float64) beep.Streamer {
	n := SampleRate.N(d)
	phase, pos := 0.0, 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= n {
				return i, i > 0
			}
			t := float64(pos) / float64(n)
			freq := from + (to-from)*t
			phase += freq / float64(SampleRate)
			v := vol * (1 - t) * math.Sin(2*math.Pi*phase)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}

// burst is exponentially decaying noise over a low rumble.
func burst(rng *rand.Rand, d time.Duration, rumble, decay float64) beep.Streamer {
	n := SampleRate.N(d)
	noise := make([]float64, n)
	for i := range noise {
		noise[i] = rng.Float64()*2 - 1
	}
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= n {
				return i, i > 0
			}
			t := float64(pos) / float64(SampleRate)
			env := math.Exp(-t * decay)
			v := env * (0.3*noise[pos] + 0.3*math.Sin(2*math.Pi*rumble*t))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}

// envelope applies a linear attack and release of ramp samples to a stream of
// total samples.
func envelope(s beep.Streamer, total, ramp int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := 1.0
			if pos < ramp {
				g = float64(pos) / float64(ramp)
			} else if rest := total - pos; rest < ramp {
				g = float64(rest) / float64(ramp)
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// volume scales s linearly by vol in (0, 1].
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
