package transport

// Machine drives a Session against a Primitive. It is the session's sole
// mutator: the render loop calls Tick and ApplyLoop once per tick and one
// command method per recognized keypress.
//
// Every transport command follows the same fold-then-stop-then-reissue
// pattern: commit the elapsed delta into StartOffset, reset the elapsed
// counter, stop the primitive, and replay from the new offset unless
// paused. The primitive forgets its position across a stop, so folding
// before stopping is what keeps the play-head continuous.
type Machine struct {
	primitive Primitive
	session   Session
	loop      bool
}

// NewMachine creates a machine for a track of the given length.
func NewMachine(p Primitive, totalDuration, speed float64, loop bool) *Machine {
	return &Machine{
		primitive: p,
		session:   NewSession(totalDuration, speed),
		loop:      loop,
	}
}

// Start begins playback from the start of the track.
func (m *Machine) Start() error {
	return m.primitive.PlayFrom(0)
}

// Session returns a copy of the current session state.
func (m *Machine) Session() Session { return m.session }

// Position returns the logical play-head position in seconds.
func (m *Machine) Position() float64 { return m.session.Position() }

// Paused reports whether playback is logically suspended.
func (m *Machine) Paused() bool { return m.session.Paused }

// Loop reports whether loop mode is enabled.
func (m *Machine) Loop() bool { return m.loop }

// Tick refreshes the elapsed counter from the primitive. While the
// primitive is busy the counter tracks it; once the track runs dry the
// counter freezes at its last value, which is how a natural end of track
// shows up without any command.
func (m *Machine) Tick() {
	if m.primitive.Busy() {
		m.session.TimeSincePlay = m.primitive.Elapsed()
	}
}

// TogglePause suspends or resumes playback. Pausing folds the elapsed
// delta into the committed offset before stopping; resuming replays from
// that offset.
func (m *Machine) TogglePause() {
	if m.session.Paused {
		m.session.Paused = false
		m.primitive.PlayFrom(m.session.StartOffset)
		return
	}
	m.session.StartOffset = clamp(
		m.session.StartOffset+m.session.TimeSincePlay,
		0, m.session.TotalDuration,
	)
	m.session.TimeSincePlay = 0
	m.primitive.Stop()
	m.session.Paused = true
}

// Restart rewinds to the start of the track. The paused flag is preserved:
// restarting while paused stays paused at position zero.
func (m *Machine) Restart() {
	m.session.StartOffset = 0
	m.session.TimeSincePlay = 0
	m.primitive.Stop()
	if !m.session.Paused {
		m.primitive.PlayFrom(0)
	}
}

// SeekBy moves the play-head by delta seconds, negative for backward.
// The target is the current logical position plus delta, clamped to the
// track bounds. Seeking past the end does not auto-pause: the primitive
// simply runs dry there and the session idles until a loop wrap or a
// restart picks it up.
func (m *Machine) SeekBy(delta float64) {
	m.session.StartOffset = clamp(
		m.session.StartOffset+m.session.TimeSincePlay+delta,
		0, m.session.TotalDuration,
	)
	m.session.TimeSincePlay = 0
	m.primitive.Stop()
	if !m.session.Paused {
		m.primitive.PlayFrom(m.session.StartOffset)
	}
}

// ApplyLoop restarts playback when loop mode is on and the track has run
// dry while unpaused. It must run after Tick within the same tick so a
// just-finished track restarts without a visible stall.
func (m *Machine) ApplyLoop() {
	if !m.loop || m.session.Paused || m.primitive.Busy() {
		return
	}
	m.session.StartOffset = 0
	m.session.TimeSincePlay = 0
	m.primitive.PlayFrom(0)
}

// AdjustVolume changes the volume by deltaPercent points, saturating
// at 0% and 100%. Independent of transport state.
func (m *Machine) AdjustVolume(deltaPercent int) {
	m.primitive.SetVolume(clamp(
		m.primitive.Volume()+float64(deltaPercent)/100,
		0, 1,
	))
}

// Volume returns the primitive's current volume level in [0, 1].
func (m *Machine) Volume() float64 { return m.primitive.Volume() }

// Stop halts the primitive for good. Called once on quit.
func (m *Machine) Stop() {
	m.primitive.Stop()
}
