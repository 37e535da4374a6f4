package vim

// Mode represents the current input mode. It decides which key map is active.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeControl
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeControl:
		return "CONTROL"
	default:
		return "UNKNOWN"
	}
}

// Strategy decides how the single-line input is interpreted on submit.
// It is only meaningful outside normal mode.
type Strategy int

const (
	StrategyCommand Strategy = iota
	StrategySearch
	StrategyPrompt
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyCommand:
		return "Command"
	case StrategySearch:
		return "Search"
	case StrategyPrompt:
		return "Prompt"
	default:
		return "Unknown"
	}
}

// ModeManager handles mode state and transitions.
type ModeManager struct {
	current  Mode
	strategy Strategy
}

// NewModeManager creates a new mode manager starting in normal mode.
func NewModeManager() *ModeManager {
	return &ModeManager{
		current:  ModeNormal,
		strategy: StrategyCommand,
	}
}

// Current returns the current mode.
func (m *ModeManager) Current() Mode {
	return m.current
}

// Strategy returns the current input strategy.
func (m *ModeManager) Strategy() Strategy {
	return m.strategy
}

// SetMode changes the current mode.
func (m *ModeManager) SetMode(mode Mode) {
	m.current = mode
}

// EnterControl switches to control mode with the given strategy.
func (m *ModeManager) EnterControl(strategy Strategy) {
	m.strategy = strategy
	m.SetMode(ModeControl)
}

// IsNormal returns true if in normal mode.
func (m *ModeManager) IsNormal() bool {
	return m.current == ModeNormal
}

// IsInsert returns true if in insert mode.
func (m *ModeManager) IsInsert() bool {
	return m.current == ModeInsert
}

// IsControl returns true if in control mode.
func (m *ModeManager) IsControl() bool {
	return m.current == ModeControl
}

// Reset returns to normal mode with the default strategy.
func (m *ModeManager) Reset() {
	m.current = ModeNormal
	m.strategy = StrategyCommand
}
