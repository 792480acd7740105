// Package audio implements the playback primitive on top of beep's speaker.
// The engine exposes exactly the narrow contract the transport machine
// expects: play from an absolute offset, stop, a busy flag, the time
// elapsed since the last play call, and volume control.
package audio

import (
	"errors"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/tempo/internal/transport"
)

// Engine plays a single loaded track through the speaker.
type Engine struct {
	streamer beep.StreamSeekCloser
	closer   func() error
	format   beep.Format

	volume *effects.Volume
	level  float64

	// startSample is the streamer sample the current play call began at.
	// Elapsed is derived from the streamer position relative to it.
	startSample int

	// done is closed when the current play call ends, either by Stop or
	// by the track running dry. Nil while nothing has been played.
	done chan struct{}
}

var speakerInitialized bool

// NewEngine creates an engine with no track loaded.
func NewEngine() *Engine {
	return &Engine{level: 1}
}

// Load decodes the file at path and prepares the speaker. Supported
// formats are mp3, flac, wav and ogg/vorbis.
func (e *Engine) Load(path string) error {
	streamer, closer, format, err := decode(path)
	if err != nil {
		return err
	}

	if !speakerInitialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			closer()
			return err
		}
		speakerInitialized = true
	}

	e.streamer = streamer
	e.closer = closer
	e.format = format
	return nil
}

// Duration returns the length of the loaded track in seconds.
func (e *Engine) Duration() float64 {
	if e.streamer == nil {
		return 0
	}
	return e.format.SampleRate.D(e.streamer.Len()).Seconds()
}

// PlayFrom starts playback at the given track offset in seconds. Any
// play call already in flight is stopped first.
func (e *Engine) PlayFrom(offset float64) error {
	if e.streamer == nil {
		return errors.New("no track loaded")
	}

	e.Stop()

	start := e.format.SampleRate.N(time.Duration(offset * float64(time.Second)))
	if start < 0 {
		start = 0
	}
	if start > e.streamer.Len() {
		start = e.streamer.Len()
	}
	if err := e.streamer.Seek(start); err != nil {
		return err
	}
	e.startSample = start

	e.volume = &effects.Volume{
		Streamer: e.streamer,
		Base:     2,
		Volume:   levelToVolume(e.level),
		Silent:   e.level <= 0,
	}

	done := make(chan struct{})
	e.done = done

	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		close(done)
	})))

	return nil
}

// Stop halts the current play call, if any.
func (e *Engine) Stop() {
	if e.done == nil {
		return
	}
	speaker.Clear()
	select {
	case <-e.done:
		// Track already ran dry; the callback closed the channel.
	default:
		close(e.done)
	}
	e.done = nil
	e.volume = nil
}

// Busy reports whether the last play call is still producing audio.
func (e *Engine) Busy() bool {
	if e.done == nil {
		return false
	}
	select {
	case <-e.done:
		return false
	default:
		return true
	}
}

// Elapsed returns the seconds elapsed since the last play call started.
func (e *Engine) Elapsed() float64 {
	if e.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := e.streamer.Position()
	speaker.Unlock()
	return e.format.SampleRate.D(pos - e.startSample).Seconds()
}

// Unload stops playback and releases the decoder and file handle.
func (e *Engine) Unload() {
	e.Stop()
	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	if e.closer != nil {
		e.closer()
		e.closer = nil
	}
}

// Verify Engine implements the transport contract at compile time.
var _ transport.Primitive = (*Engine)(nil)
