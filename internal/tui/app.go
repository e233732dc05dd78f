package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/arjun-s/springstep/internal/config"
	"github.com/arjun-s/springstep/internal/engine"
)

const historyCapacity = 240

type TickMsg time.Time

// Model is the interactive shell around the engine. It owns the real
// clock and translates terminal events into engine events; all physics
// lives behind Transition.
type Model struct {
	eng   *engine.Engine
	state engine.State
	cfg   *config.Config

	epoch    time.Time
	paused   time.Duration // accumulated paused wall time, subtracted from samples
	pausedAt time.Time
	running  bool

	// Camera center in world coordinates, smoothed toward the ball so
	// overshoots stay on screen without the view snapping.
	cam       float64
	camVel    float64
	camSpring harmonica.Spring

	history []float64
	lastErr error

	presetNames []string
	presetIdx   int

	width  int
	height int
}

// NewModel builds the shell from a validated config.
func NewModel(cfg *config.Config) (Model, error) {
	eng, err := cfg.Engine()
	if err != nil {
		return Model{}, err
	}
	state, err := cfg.InitialState()
	if err != nil {
		return Model{}, err
	}

	return Model{
		eng:         eng,
		state:       state,
		cfg:         cfg,
		epoch:       time.Now(),
		running:     true,
		cam:         state.Spring.Rest,
		camSpring:   harmonica.NewSpring(harmonica.FPS(cfg.FrameRate), 4.0, 0.9),
		history:     make([]float64, 0, historyCapacity),
		presetNames: config.ListPresets(),
		width:       80,
		height:      24,
	}, nil
}

func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.cfg.FrameRate)
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and clock ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.togglePause()
		case "r":
			m.reset(m.cfg)
		case "tab":
			m.cyclePreset()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// advance feeds one wall-clock sample into the engine and follows the
// ball with the camera.
func (m *Model) advance() {
	ms := (time.Since(m.epoch) - m.paused).Milliseconds()
	next, err := m.eng.Transition(m.state, engine.ClockTick{WallClock: ms})
	if err != nil {
		// Keep the last valid state visible and surface the error.
		m.lastErr = err
		m.running = false
		return
	}
	m.state = next

	m.history = append(m.history, m.state.Position())
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}

	m.cam, m.camVel = m.camSpring.Update(m.cam, m.camVel, m.state.Position())
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := engine.Vec2{X: m.worldX(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.state, _ = m.eng.Transition(m.state, engine.PointerDown{Held: true})
		m.state, _ = m.eng.Transition(m.state, engine.PointerMove{Position: pos})
	case tea.MouseActionRelease:
		m.state, _ = m.eng.Transition(m.state, engine.PointerDown{Held: false})
	case tea.MouseActionMotion:
		m.state, _ = m.eng.Transition(m.state, engine.PointerMove{Position: pos})
	}
}

// worldX maps a terminal column to the world coordinate under the
// current camera.
func (m Model) worldX(col int) float64 {
	return m.cam - float64(m.width)/2 + float64(col)
}

// screenX maps a world coordinate to a terminal column.
func (m Model) screenX(x float64) int {
	return int(x - m.cam + float64(m.width)/2)
}

func (m *Model) togglePause() {
	if m.running {
		m.pausedAt = time.Now()
		m.running = false
		return
	}
	if m.lastErr != nil {
		// A rejected state needs a reset, not a resume.
		return
	}
	m.paused += time.Since(m.pausedAt)
	m.running = true
}

func (m *Model) reset(cfg *config.Config) {
	eng, err := cfg.Engine()
	if err != nil {
		m.lastErr = err
		return
	}
	state, err := cfg.InitialState()
	if err != nil {
		m.lastErr = err
		return
	}
	m.cfg = cfg
	m.eng = eng
	m.state = state
	m.epoch = time.Now()
	m.paused = 0
	m.running = true
	m.lastErr = nil
	m.history = m.history[:0]
	m.cam = state.Spring.Rest
	m.camVel = 0
	m.camSpring = harmonica.NewSpring(harmonica.FPS(cfg.FrameRate), 4.0, 0.9)
}

func (m *Model) cyclePreset() {
	if len(m.presetNames) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presetNames)
	if cfg := config.GetPreset(m.presetNames[m.presetIdx]); cfg != nil {
		m.reset(cfg)
	}
}

// Run starts the interactive program.
func Run(cfg *config.Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
