// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlmap"
)

// ExplorerStyles holds the styling for the explorer panes
type ExplorerStyles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	HelpKey       lipgloss.Style
}

// NewExplorerStyles creates the default styles
func NewExplorerStyles() *ExplorerStyles {
	return &ExplorerStyles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// ExplorerModel is the Bubble Tea state for the interactive explorer
type ExplorerModel struct {
	ready bool

	input        textinput.Model
	treeViewport viewport.Model

	tree      *avlmap.Map[string, string]
	helpCache *cache.Cache
	config    *Config

	status   string
	statusOK bool
	showHelp bool

	styles *ExplorerStyles

	width  int
	height int
}

// InitialExplorerModel creates the initial model
func InitialExplorerModel(config *Config) ExplorerModel {
	ti := textinput.New()
	ti.Placeholder = "insert <key> [value], erase <key>, find <key>, ? for help..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	vp := viewport.New(0, 0)
	vp.SetContent("The tree is empty. Insert a key to get started.")

	model := ExplorerModel{
		input:        ti,
		treeViewport: vp,
		tree:         avlmap.NewOrdered[string, string](),
		helpCache:    NewHelpCache(),
		config:       config,
		status:       "ready",
		statusOK:     true,
		styles:       NewExplorerStyles(),
	}
	return model
}

// Init is called when the program starts
func (m ExplorerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			m.refreshViewport()
			return m, nil
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			status, err := execCommand(m.tree, line)
			if err != nil {
				m.status = err.Error()
				m.statusOK = false
			} else {
				m.status = status
				m.statusOK = true
			}
			m.input.SetValue("")
			m.showHelp = false
			m.refreshViewport()
			return m, nil
		case "pgup", "pgdown", "up", "down":
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshViewport()
		m.ready = true
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateLayout resizes the panes after a terminal size change
func (m *ExplorerModel) updateLayout() {
	m.input.Width = max(m.width-8, 20)
	m.treeViewport.Width = max(m.width-4, 20)
	m.treeViewport.Height = max(m.height-8, 5)
}

// refreshViewport re-renders the tree pane (or the help page)
func (m *ExplorerModel) refreshViewport() {
	if m.showHelp {
		m.treeViewport.SetContent(renderExplorerHelp(m.helpCache, max(m.treeViewport.Width-2, 20)))
		return
	}
	if m.tree.Empty() {
		m.treeViewport.SetContent("The tree is empty. Insert a key to get started.")
		return
	}

	var b strings.Builder
	depth := m.tree.Fprint(&b, m.config.Explorer.ShowValues)
	fmt.Fprintf(&b, "\n%d entries, depth %d\n\nIn order:\n", m.tree.Len(), depth)
	for it := m.tree.Begin(); !it.Done(); it.Next() {
		if m.config.Explorer.ShowValues {
			fmt.Fprintf(&b, "  %s = %s\n", it.Key(), it.Value())
		} else {
			fmt.Fprintf(&b, "  %s\n", it.Key())
		}
	}
	m.treeViewport.SetContent(b.String())
}

// View renders the UI
func (m ExplorerModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("avlmap explorer — %d entries", m.tree.Len()))

	input := m.styles.BorderFocused.Render(m.input.View())

	paneTitle := "Tree"
	if m.showHelp {
		paneTitle = "Help"
	}
	pane := m.styles.BorderBlurred.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(paneTitle),
			m.treeViewport.View(),
		),
	)

	status := m.styles.Status.Render(m.status)
	if !m.statusOK {
		status = m.styles.StatusError.Render(m.status)
	}
	hints := m.styles.HelpKey.Render("enter run · ? help · esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, input, pane, status, hints)
}

func runExplorer(config *Config) error {
	p := tea.NewProgram(InitialExplorerModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
