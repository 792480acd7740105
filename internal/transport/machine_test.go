package transport

import (
	"math"
	"testing"
)

func newTestMachine(totalDuration float64, loop bool) (*Machine, *MockPrimitive) {
	p := NewMockPrimitive()
	m := NewMachine(p, totalDuration, 1.0, loop)
	return m, p
}

func TestMachine_TickTracksElapsedWhileBusy(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()

	p.SetElapsed(30)
	m.Tick()

	if got := m.Position(); got != 30 {
		t.Errorf("Position() = %v, want 30", got)
	}
}

func TestMachine_TickFreezesWhenNotBusy(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()

	p.SetElapsed(40)
	m.Tick()

	// Track runs dry; elapsed readings after that point are garbage and
	// must not disturb the frozen counter.
	p.SetBusy(false)
	p.SetElapsed(0)
	m.Tick()

	if got := m.Position(); got != 40 {
		t.Errorf("Position() after running dry = %v, want 40", got)
	}
}

func TestMachine_SeekClampsToTrackBounds(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   float64
	}{
		{"far past end", []float64{1e9}, 100},
		{"far before start", []float64{-1e9}, 0},
		{"alternating extremes", []float64{500, -500, 250, -0.5}, 99.5},
		{"cumulative forward", []float64{40, 40, 40}, 100},
		{"normal seek", []float64{10, -3}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine(100, false)
			m.Start()
			for _, d := range tt.deltas {
				m.SeekBy(d)
				s := m.Session()
				if s.StartOffset < 0 || s.StartOffset > s.TotalDuration {
					t.Fatalf("StartOffset %v escaped [0, %v]", s.StartOffset, s.TotalDuration)
				}
			}
			if got := m.Session().StartOffset; got != tt.want {
				t.Errorf("StartOffset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMachine_SeekReissuesPlaybackWhenUnpaused(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()

	m.SeekBy(5)

	if got := p.StopCalls(); got != 1 {
		t.Errorf("StopCalls() = %d, want 1", got)
	}
	calls := p.PlayCalls()
	if len(calls) != 2 || calls[1] != 5 {
		t.Errorf("PlayCalls() = %v, want [0 5]", calls)
	}
}

func TestMachine_SeekWhilePausedStaysStopped(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()
	m.TogglePause()

	before := len(p.PlayCalls())
	m.SeekBy(10)

	if got := len(p.PlayCalls()); got != before {
		t.Errorf("seek while paused issued a play call")
	}
	if got := m.Session().StartOffset; got != 10 {
		t.Errorf("StartOffset = %v, want 10", got)
	}
	if !m.Paused() {
		t.Error("seek cleared the paused flag")
	}
}

func TestMachine_PauseResumeKeepsPosition(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()

	p.SetElapsed(30)
	m.Tick()
	posBefore := m.Position()

	m.TogglePause()
	if !m.Paused() {
		t.Fatal("first toggle did not pause")
	}
	if got := m.Session().TimeSincePlay; got != 0 {
		t.Errorf("TimeSincePlay while paused = %v, want 0", got)
	}

	m.TogglePause()
	if m.Paused() {
		t.Fatal("second toggle did not resume")
	}
	if got := m.Position(); got != posBefore {
		t.Errorf("Position() after pause/resume = %v, want %v", got, posBefore)
	}

	// Resume must replay from the committed offset.
	calls := p.PlayCalls()
	if calls[len(calls)-1] != 30 {
		t.Errorf("resume played from %v, want 30", calls[len(calls)-1])
	}
}

func TestMachine_PauseFoldClampsToDuration(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()

	m.SeekBy(95)
	p.SetElapsed(20)
	m.Tick()
	m.TogglePause()

	if got := m.Session().StartOffset; got != 100 {
		t.Errorf("StartOffset = %v, want 100", got)
	}
}

func TestMachine_RestartIsDeterministic(t *testing.T) {
	tests := []struct {
		name   string
		paused bool
	}{
		{"while playing", false},
		{"while paused", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, p := newTestMachine(100, false)
			m.Start()
			p.SetElapsed(42)
			m.Tick()
			if tt.paused {
				m.TogglePause()
			}

			m.Restart()

			if got := m.Position(); got != 0 {
				t.Errorf("Position() = %v, want 0", got)
			}
			if got := m.Paused(); got != tt.paused {
				t.Errorf("Paused() = %v, want %v", got, tt.paused)
			}
			if tt.paused && p.Busy() {
				t.Error("restart while paused started playback")
			}
			if !tt.paused && !p.Busy() {
				t.Error("restart while playing did not reissue playback")
			}
		})
	}
}

func TestMachine_LoopWrapRestartsOnNextTick(t *testing.T) {
	m, p := newTestMachine(100, true)
	m.Start()

	p.SetElapsed(100)
	m.Tick()

	// Track finishes naturally between ticks.
	p.SetBusy(false)
	m.Tick()
	m.ApplyLoop()

	if got := m.Position(); got != 0 {
		t.Errorf("Position() after loop wrap = %v, want 0", got)
	}
	calls := p.PlayCalls()
	if calls[len(calls)-1] != 0 {
		t.Errorf("loop wrap played from %v, want 0", calls[len(calls)-1])
	}
	if !p.Busy() {
		t.Error("loop wrap did not reissue playback")
	}
}

func TestMachine_LoopDoesNotFireWhilePausedOrBusy(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Machine, p *MockPrimitive)
	}{
		{
			name:  "still busy",
			setup: func(_ *Machine, _ *MockPrimitive) {},
		},
		{
			name: "paused",
			setup: func(m *Machine, p *MockPrimitive) {
				m.TogglePause()
				p.SetBusy(false)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, p := newTestMachine(100, true)
			m.Start()
			tt.setup(m, p)

			before := len(p.PlayCalls())
			m.ApplyLoop()

			if got := len(p.PlayCalls()); got != before {
				t.Error("ApplyLoop() issued a play call")
			}
		})
	}
}

func TestMachine_LoopDisabledNeverWraps(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()
	p.SetBusy(false)

	before := len(p.PlayCalls())
	m.ApplyLoop()

	if got := len(p.PlayCalls()); got != before {
		t.Error("ApplyLoop() fired with loop disabled")
	}
}

func TestMachine_SeekThenPauseCommutes(t *testing.T) {
	// Seeking folds the elapsed delta exactly like pausing does, so the
	// committed offset must come out the same whichever runs first.
	mA, pA := newTestMachine(100, false)
	mA.Start()
	pA.SetElapsed(30)
	mA.Tick()
	mA.SeekBy(5)
	mA.TogglePause()

	mB, pB := newTestMachine(100, false)
	mB.Start()
	pB.SetElapsed(30)
	mB.Tick()
	mB.TogglePause()
	mB.SeekBy(5)

	offA := mA.Session().StartOffset
	offB := mB.Session().StartOffset
	if offA != offB || offA != 35 {
		t.Errorf("committed offsets = %v and %v, want both 35", offA, offB)
	}
}

func TestMachine_VolumeSaturates(t *testing.T) {
	m, p := newTestMachine(100, false)
	m.Start()

	for range 20 {
		m.AdjustVolume(10)
	}
	if got := p.Volume(); got != 1 {
		t.Errorf("Volume() after raising = %v, want 1", got)
	}

	for range 30 {
		m.AdjustVolume(-10)
	}
	if got := p.Volume(); got != 0 {
		t.Errorf("Volume() after lowering = %v, want 0", got)
	}

	m.AdjustVolume(10)
	if got := p.Volume(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Volume() = %v, want 0.1", got)
	}
}

func TestMachine_Scenario(t *testing.T) {
	// End-to-end walk: play 30s, seek back 5s, play 10 more seconds.
	m, p := newTestMachine(100, false)
	m.Start()

	p.SetElapsed(30)
	m.Tick()
	if got := m.Position(); got != 30 {
		t.Fatalf("Position() = %v, want 30", got)
	}

	m.SeekBy(-5)
	s := m.Session()
	if s.StartOffset != 25 || s.TimeSincePlay != 0 {
		t.Fatalf("after seek: offset=%v elapsed=%v, want 25 and 0", s.StartOffset, s.TimeSincePlay)
	}

	p.SetElapsed(0)
	m.Tick()
	p.SetElapsed(10)
	m.Tick()
	if got := m.Position(); got != 35 {
		t.Errorf("Position() = %v, want 35", got)
	}
}
