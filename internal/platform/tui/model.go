package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avanyukov/skyflap/internal/config"
	"github.com/avanyukov/skyflap/internal/core"
	"github.com/avanyukov/skyflap/internal/game"
)

// Model is the Bubble Tea model driving the simulation. Key events
// accumulate into an input frame that is applied at the next tick, so the
// simulation sees input only at tick boundaries; each tick hands the frame
// timestamp to the simulation, which does its own delta normalization.
type Model struct {
	sim     *game.Sim
	screen  *core.Screen
	runtime core.RuntimeConfig
	keys    *KeyMapper
	pending core.InputFrame

	// Jump debounce lives in the input layer, not in the physics:
	// repeated jump keys within the cooldown are dropped here.
	jumpCooldown time.Duration
	lastJump     time.Time

	quitting bool
}

// NewModel creates a model running the given simulation.
func NewModel(sim *game.Sim, gameCfg config.Config, runtime core.RuntimeConfig) Model {
	return Model{
		sim:          sim,
		screen:       core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		runtime:      runtime,
		keys:         NewKeyMapper(),
		pending:      core.NewInputFrame(),
		jumpCooldown: time.Duration(gameCfg.Bird.JumpCooldownMS) * time.Millisecond,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Only the renderer cares about terminal size; gameplay runs in
		// the virtual playfield and survives resizes untouched.
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.applyInput()
		m.sim.Advance(time.Time(msg))
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey accumulates keyboard input into the pending frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionNone {
		return m, nil
	}
	if action == core.ActionJump {
		now := time.Now()
		if now.Sub(m.lastJump) < m.jumpCooldown {
			return m, nil
		}
		m.lastJump = now
	}
	m.pending.Set(action)

	return m, nil
}

// applyInput dispatches the pending input frame to the simulation and
// clears it for the next tick.
func (m *Model) applyInput() {
	if m.pending.Has(core.ActionJump) {
		m.sim.Jump()
	}
	if m.pending.Has(core.ActionRestart) && m.sim.Phase() == game.PhaseGameOver {
		m.sim.Jump()
	}
	if m.pending.Has(core.ActionPause) {
		m.sim.TogglePause()
	}
	if m.pending.Has(core.ActionDebug) {
		m.sim.ToggleDebug()
	}
	m.pending.Clear()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given simulation.
func Run(sim *game.Sim, gameCfg config.Config, runtime core.RuntimeConfig) error {
	model := NewModel(sim, gameCfg, runtime)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
