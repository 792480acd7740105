// Package transport emulates pause, seek and restart on top of a playback
// primitive that only supports playing from an absolute offset and reporting
// the time elapsed since that play call.
package transport

// Session holds the state needed to reconstruct a logical play-head position.
// It is owned by a single Machine and mutated only through its operations.
type Session struct {
	// StartOffset is the track time (seconds) at which the primitive's
	// current play call began. Always within [0, TotalDuration].
	StartOffset float64

	// TimeSincePlay is the time (seconds) reported by the primitive since
	// its last play call. Reset to 0 by every operation that stops or
	// reissues playback; frozen when the primitive runs dry.
	TimeSincePlay float64

	// Paused is true while playback is logically suspended. While paused
	// the primitive is stopped and TimeSincePlay is 0.
	Paused bool

	// TotalDuration is the length (seconds) of the playback-ready audio.
	TotalDuration float64

	// Speed is the tempo multiplier the audio was rendered with. It only
	// scales the displayed elapsed time; the playback file already runs
	// at the adjusted rate.
	Speed float64
}

// NewSession creates a session for a track of the given length.
func NewSession(totalDuration, speed float64) Session {
	return Session{
		TotalDuration: totalDuration,
		Speed:         speed,
	}
}

// Position returns the logical play-head position in seconds,
// clamped to [0, TotalDuration].
func (s Session) Position() float64 {
	return clamp(s.StartOffset+s.TimeSincePlay, 0, s.TotalDuration)
}

// Progress returns the position as a fraction of the track length in [0, 1].
func (s Session) Progress() float64 {
	if s.TotalDuration <= 0 {
		return 0
	}
	return s.Position() / s.TotalDuration
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
