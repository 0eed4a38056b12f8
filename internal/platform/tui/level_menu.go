package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// LevelModel lets the user pick a game or one of its registered variants,
// e.g. the minesweeper board sizes or the gemgem presets.
type LevelModel struct {
	parent  registry.GameInfo
	options []registry.GameInfo
	cursor  int
	width   int
	height  int
	keys    MenuKeyMap
	help    help.Model

	selected string
	quitting bool
	back     bool
}

// NewLevelModel lists parent followed by its variants.
func NewLevelModel(parentID string, width, height int) LevelModel {
	var parent registry.GameInfo
	for _, g := range registry.TopLevel() {
		if g.ID == parentID {
			parent = g
		}
	}
	if parent.ID == "" {
		parent = registry.GameInfo{ID: parentID, Title: parentID}
	}

	h := help.New()
	h.Width = width

	return LevelModel{
		parent:  parent,
		options: append([]registry.GameInfo{parent}, registry.Variants(parentID)...),
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// Init initializes the model.
func (m LevelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m LevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.options[m.cursor].ID
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.parent.Title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		label := opt.Title
		if i == 0 {
			label += " (configured)"
		}
		if i == m.cursor {
			label = cursorStyle.Render("> ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(centerText(label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(
		[]key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Back, m.keys.Quit},
	), m.width))
	return b.String()
}

// Selected returns the chosen game ID, or "" while still choosing.
func (m LevelModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector asks which variant of parentID to play. It returns "" when
// the user backs out or quits.
func RunLevelSelector(parentID string, cfg core.RuntimeConfig) (gameID string, quit bool, err error) {
	p := tea.NewProgram(NewLevelModel(parentID, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, ok := final.(LevelModel)
	if !ok {
		return "", true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
