// Package theme models theme state explicitly instead of mutating
// global environment state: a Manager tracks the system signal and the
// user's explicit preference and pushes the effective theme through a
// single Apply boundary.
package theme

// Theme is a display theme name.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = ""
)

// Manager resolves the effective theme. An explicit user preference,
// once set, always wins over the live system signal.
type Manager struct {
	preference Theme
	system     Theme
	apply      func(Theme)
}

// NewManager creates a manager with the persisted preference (possibly
// System, meaning none) and the side-effecting apply boundary.
func NewManager(preference Theme, apply func(Theme)) *Manager {
	m := &Manager{preference: preference, system: Light, apply: apply}
	m.applyEffective()
	return m
}

// Effective returns the theme currently in force.
func (m *Manager) Effective() Theme {
	if m.preference != System {
		return m.preference
	}
	return m.system
}

// Preference returns the explicit user preference, System when none.
func (m *Manager) Preference() Theme {
	return m.preference
}

// SetPreference records an explicit user choice and applies it.
func (m *Manager) SetPreference(t Theme) {
	m.preference = t
	m.applyEffective()
}

// SetSystem records a system theme signal. It only takes effect while
// no explicit preference exists.
func (m *Manager) SetSystem(t Theme) {
	m.system = t
	if m.preference == System {
		m.applyEffective()
	}
}

func (m *Manager) applyEffective() {
	if m.apply != nil {
		m.apply(m.Effective())
	}
}
