// Package tui is the interactive list view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tickdone/tick/internal/model"
	"github.com/tickdone/tick/internal/store"
	"github.com/tickdone/tick/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Edit},
		{k.Delete, k.Theme, k.Help, k.Quit},
	}
}

// Model holds the list snapshot plus the transient session state: the
// shared text input (add and edit use it in turn), the id under edit,
// and the active theme. Every mutation saves the fresh snapshot before
// handing control back to the event loop.
type Model struct {
	store store.Store
	items []model.Item

	cursor int
	mode   mode

	input     textinput.Model
	editingID string
	inputErr  string

	theme ui.Theme
	keys  keyMap
	help  help.Model

	width  int
	height int
}

func New(st store.Store, theme ui.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	return Model{
		store: st,
		items: st.Load(),
		input: ti,
		theme: theme,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Run starts the interactive session and blocks until quit.
func Run(st store.Store, theme ui.Theme) error {
	p := tea.NewProgram(New(st, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.help.Width = ws.Width
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			next, ok := model.Add(m.items, m.input.Value())
			if !ok {
				// Keep the typed input for correction.
				m.inputErr = "Text cannot be empty"
				return m, nil
			}
			m.items = next
			m.store.Save(m.items)
			m.cursor = 0
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			next, ok := model.SetText(m.items, m.editingID, m.input.Value())
			if !ok {
				// Stay in edit mode, buffer intact.
				m.inputErr = "Text cannot be empty"
				return m, nil
			}
			m.items = next
			m.store.Save(m.items)
			m.editingID = ""
			m.closeInput()
			return m, nil
		case "esc":
			m.editingID = ""
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(k, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(k, m.keys.Add):
		m.mode = modeAdd
		m.input.Placeholder = "What needs doing?"
		m.input.Focus()
		// Focus lands on the next render pass.
		return m, textinput.Blink

	case key.Matches(k, m.keys.Edit):
		if m.cursor >= 0 && m.cursor < len(m.items) {
			it := m.items[m.cursor]
			m.mode = modeEdit
			m.editingID = it.ID
			m.input.Placeholder = ""
			m.input.SetValue(it.Text)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(k, m.keys.Delete):
		if m.cursor >= 0 && m.cursor < len(m.items) {
			id := m.items[m.cursor].ID
			next, removed := model.Remove(m.items, id)
			if removed {
				m.items = next
				if m.editingID == id {
					m.editingID = ""
					m.closeInput()
				}
				if m.cursor >= len(m.items) && m.cursor > 0 {
					m.cursor--
				}
				m.store.Save(m.items)
			}
		}

	case key.Matches(k, m.keys.Theme):
		m.theme = m.theme.Toggle()

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// closeInput resets the shared text input after a commit or cancel.
func (m *Model) closeInput() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.inputErr = ""
}

func countLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Todos"))
	b.WriteString("  ")
	b.WriteString(m.theme.Count.Render(countLabel(len(m.items))))
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		title := "Add item"
		if m.inputErr != "" {
			title += "  " + m.theme.Error.Render(m.inputErr)
		}
		b.WriteString(m.theme.InputBar.Render(title + "\n" + m.input.View()))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(m.theme.Muted.Render("Nothing to do yet. Press a to add an item."))
		b.WriteString("\n")
	} else {
		for i, it := range m.items {
			prefix := "  "
			if i == m.cursor {
				prefix = m.theme.Cursor.Render("> ")
			}
			if m.mode == modeEdit && it.ID == m.editingID {
				line := m.input.View()
				if m.inputErr != "" {
					line += "  " + m.theme.Error.Render(m.inputErr)
				}
				b.WriteString(prefix + line + "\n")
				continue
			}
			b.WriteString(prefix + m.theme.ItemText.Render(it.Text) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}
