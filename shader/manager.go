package shader

// Manager owns the single active program drawn each frame. A failed compile
// never replaces the active program; the swap is atomic and success-only.
type Manager struct {
	active *Program

	compile func(string) (*Program, error)
	release func(*Program)
}

func NewManager() *Manager {
	return &Manager{
		compile: Compile,
		release: (*Program).Delete,
	}
}

// Active returns the current program, or nil before the first successful
// compile.
func (m *Manager) Active() *Program {
	return m.active
}

// Update compiles the fragment source and, only on success, swaps it in as
// the active program and releases the superseded program's GL resources.
// On failure the active program is untouched and the error carries the
// compile or link diagnostics.
func (m *Manager) Update(fragmentSource string) (*Program, error) {
	program, err := m.compile(fragmentSource)
	if err != nil {
		return nil, err
	}
	if m.active != nil {
		m.release(m.active)
	}
	m.active = program
	return program, nil
}

// Shutdown releases the active program, if any.
func (m *Manager) Shutdown() {
	if m.active != nil {
		m.release(m.active)
		m.active = nil
	}
}
