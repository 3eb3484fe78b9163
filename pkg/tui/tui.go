// Package tui provides a terminal user interface for sci2fb
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sierrafm/sci2fb/pkg/converter"
)

// FB-01 front-panel palette: green LCD on dark metal
var (
	lcdGreen  = lipgloss.Color("#33FF66")
	lcdAmber  = lipgloss.Color("#FFCC00")
	panelGray = lipgloss.Color("#AAAAAA")
	darkGray  = lipgloss.Color("#222222")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lcdGreen).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(panelGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lcdGreen).
			Bold(true).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lcdAmber).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lcdGreen).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateFilePicker
	StateConverting
	StateResult
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
}

var menuItems = []MenuItem{
	{Title: "Convert patch", Description: "Convert an SCI0 patch resource to FB-01 .syx bank file(s)"},
	{Title: "Exit", Description: "Exit the application"},
}

// Model represents the TUI model
type Model struct {
	state        State
	menuIndex    int
	filePicker   filepicker.Model
	spinner      spinner.Model
	selectedFile string
	outputFiles  []string
	err          error
	width        int
	height       int
}

// conversionDoneMsg signals conversion completion
type conversionDoneMsg struct {
	outputFiles []string
	err         error
}

// New creates a new TUI model
func New() Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pat", ".002"}
	fp.CurrentDirectory, _ = os.Getwd()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lcdGreen)

	return Model{
		state:      StateMenu,
		menuIndex:  0,
		filePicker: fp,
		spinner:    s,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The file picker needs to receive all messages while active.
	if m.state == StateFilePicker {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = StateConverting
			return m, tea.Batch(m.spinner.Tick, m.performConversion())
		}

		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filePicker.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateResult:
			return m.updateResult(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case conversionDoneMsg:
		m.state = StateResult
		m.outputFiles = msg.outputFiles
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		if m.menuIndex == len(menuItems)-1 {
			return m, tea.Quit
		}
		m.state = StateFilePicker
		return m, m.filePicker.Init()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.selectedFile = ""
		m.outputFiles = nil
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) performConversion() tea.Cmd {
	return func() tea.Msg {
		paths, err := converter.ConvertFile(m.selectedFile, "", "", "")
		if err != nil {
			return conversionDoneMsg{err: err}
		}
		return conversionDoneMsg{outputFiles: paths}
	}
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SCI2FB — FB-01 BANK CONVERTER "))
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateConverting:
		s.WriteString(m.viewConverting())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • esc: back • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render("▸ " + item.Title))
			s.WriteString("\n")
			s.WriteString(menuStyle.Render("  " + item.Description))
		} else {
			s.WriteString(menuStyle.Render("  " + item.Title))
		}
		s.WriteString("\n")
	}

	return s.String()
}

func (m Model) viewFilePicker() string {
	var s strings.Builder
	s.WriteString(statusStyle.Render("Select a patch resource (.pat or .002):"))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	return s.String()
}

func (m Model) viewConverting() string {
	return fmt.Sprintf("\n%s Converting %s...\n", m.spinner.View(), m.selectedFile)
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(errorStyle.Render("✗ Conversion failed"))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		s.WriteString(successStyle.Render("✓ FB-01 sysex bank(s) created"))
		s.WriteString("\n\n")
		for _, p := range m.outputFiles {
			s.WriteString(menuStyle.Render(p))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: back to menu"))
	return s.String()
}

// Run starts the TUI
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
