package audio

import "time"

// Silent discards every sound. It is used when no audio device is available
// and for remote sessions.
type Silent struct{}

func (Silent) PlaySound(string)           {}
func (Silent) PlaySequence(...string)     {}
func (Silent) PlayMusic(string, bool)     {}
func (Silent) FadeOutMusic(time.Duration) {}
