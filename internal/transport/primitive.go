package transport

// Primitive is the contract the machine needs from an audio engine.
// It deliberately mirrors engines that have no native pause or seek:
// the only controls are "play from an absolute offset" and "stop",
// and the only position information is the time elapsed since the
// last play call started.
type Primitive interface {
	// PlayFrom starts playback at the given track offset in seconds.
	PlayFrom(offset float64) error

	// Stop halts playback. The next Elapsed after a new PlayFrom
	// starts again from zero.
	Stop()

	// Busy reports whether the last play call is still producing audio.
	// It flips to false when the track runs dry, without any command.
	Busy() bool

	// Elapsed returns the seconds elapsed since the last play call.
	Elapsed() float64

	// Volume returns the current volume level in [0, 1].
	Volume() float64

	// SetVolume sets the volume level, clamped to [0, 1].
	SetVolume(level float64)
}
