package transport

// MockPrimitive is a test double for Primitive. Tests script its busy flag
// and elapsed clock and inspect the calls the machine issued.
type MockPrimitive struct {
	busy    bool
	elapsed float64
	volume  float64
	playErr error

	playCalls []float64
	stopCalls int
}

// NewMockPrimitive creates a mock primitive for testing.
func NewMockPrimitive() *MockPrimitive {
	return &MockPrimitive{volume: 1}
}

func (m *MockPrimitive) PlayFrom(offset float64) error {
	m.playCalls = append(m.playCalls, offset)
	if m.playErr != nil {
		return m.playErr
	}
	m.busy = true
	m.elapsed = 0
	return nil
}

func (m *MockPrimitive) Stop() {
	m.stopCalls++
	m.busy = false
	m.elapsed = 0
}

func (m *MockPrimitive) Busy() bool { return m.busy }

func (m *MockPrimitive) Elapsed() float64 { return m.elapsed }

func (m *MockPrimitive) Volume() float64 { return m.volume }

func (m *MockPrimitive) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.volume = level
}

// Test helpers

// SetElapsed scripts the elapsed clock for the current play call.
func (m *MockPrimitive) SetElapsed(seconds float64) { m.elapsed = seconds }

// SetBusy scripts the busy flag, e.g. to simulate a track running dry.
func (m *MockPrimitive) SetBusy(busy bool) { m.busy = busy }

func (m *MockPrimitive) SetPlayError(err error) { m.playErr = err }

// PlayCalls returns the offsets passed to PlayFrom, in order.
func (m *MockPrimitive) PlayCalls() []float64 { return m.playCalls }

// StopCalls returns how many times Stop was called.
func (m *MockPrimitive) StopCalls() int { return m.stopCalls }

// Verify MockPrimitive implements Primitive at compile time.
var _ Primitive = (*MockPrimitive)(nil)
