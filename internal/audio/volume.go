package audio

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level, clamped to [0, 1].
func (e *Engine) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	e.level = level

	if e.volume != nil {
		speaker.Lock()
		e.volume.Volume = levelToVolume(level)
		e.volume.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level in [0, 1]. While a play call is
// active the level is read back through the speaker's log-scale effect, so
// it may differ from the last SetVolume by a rounding hair; callers that
// display it should round to their increment.
func (e *Engine) Volume() float64 {
	if e.volume == nil {
		return e.level
	}
	speaker.Lock()
	v := e.volume.Volume
	silent := e.volume.Silent
	speaker.Unlock()
	if silent {
		return 0
	}
	return volumeToLevel(v)
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2 where 0 means no change,
// -1 half volume, -2 quarter. 0 maps to -10, essentially silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

// volumeToLevel is the inverse of levelToVolume.
func volumeToLevel(volume float64) float64 {
	if volume <= -10 {
		return 0
	}
	if volume >= 0 {
		return 1
	}
	return math.Exp2(volume)
}
