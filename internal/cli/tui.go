package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/server"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// maxNeighbors limits the neighbor column so rows stay on one line.
const maxNeighbors = 6

// =============================================================================
// ExploreModel - Interactive two-dot path picker
// =============================================================================

// PathFinder returns the shortest path between two dots, or nil when they
// are not connected.
type PathFinder func(from, to int) ([]int, error)

// ExploreModel is the bubbletea model for picking two dots and showing the
// shortest path between them.
type ExploreModel struct {
	Graph *graph.Graph
	Find  PathFinder

	Cursor int // index into the node list; the dot id is Cursor+1
	Offset int
	Height int

	From, To int // picked dots, 0 while unset
	Path     []int
	Err      error
}

// NewExploreModel creates an explore model over g.
func NewExploreModel(g *graph.Graph, find PathFinder) ExploreModel {
	return ExploreModel{Graph: g, Find: find, Height: 15}
}

// Done reports whether both dots have been picked.
func (m ExploreModel) Done() bool {
	return m.From != 0 && m.To != 0
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.Graph.NodeCount()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "r":
			m.From, m.To, m.Path, m.Err = 0, 0, nil, nil
		case "enter", " ":
			m = m.pick(m.Cursor + 1)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	return m, nil
}

// pick records id as the first or second dot. Picking after a completed
// query starts a new one.
func (m ExploreModel) pick(id int) ExploreModel {
	if m.From == 0 || m.Done() {
		m.From, m.To, m.Path, m.Err = id, 0, nil, nil
		return m
	}
	m.To = id
	m.Path, m.Err = m.Find(m.From, m.To)
	return m
}

// onPath reports whether id is part of the current result.
func (m ExploreModel) onPath(id int) bool {
	return id == m.From || id == m.To || slices.Contains(m.Path, id)
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Explore %d dots · %d lines", m.Graph.NodeCount(), m.Graph.EdgeCount())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ pick  r reset  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.Graph.NodeCount())
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		id := i + 1
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fmt.Sprint(id), fmt.Sprint(m.Graph.Degree(id)), neighborList(m.Graph.Neighbors(id)), m.mark(id)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Dot", "Lines", "Neighbors", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			id := m.Offset + row + 1
			style := lipgloss.NewStyle()
			if m.onPath(id) {
				style = StylePath
			} else if col == 3 {
				style = listDimStyle
			}
			if m.Offset+row == m.Cursor {
				style = style.Bold(true)
			}
			return style
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	return b.String()
}

func (m ExploreModel) mark(id int) string {
	switch {
	case id == m.From:
		return "from"
	case id == m.To:
		return "to"
	case slices.Contains(m.Path, id):
		return "via"
	}
	return ""
}

func (m ExploreModel) status() string {
	switch {
	case m.Err != nil:
		return StyleWarning.Render(m.Err.Error())
	case m.From == 0:
		return listDimStyle.Render("Pick the first dot.")
	case m.To == 0:
		return listDimStyle.Render(fmt.Sprintf("From %d, pick the second dot.", m.From))
	case m.Path == nil:
		return StyleWarning.Render(server.NoPathMessage) + "\n" +
			listDimStyle.Render(server.NoPathReason(m.Graph, m.From, m.To))
	}
	return formatPath(m.Path) + listDimStyle.Render(fmt.Sprintf("  (%d hops)", len(m.Path)-1))
}

// neighborList formats up to maxNeighbors ids.
func neighborList(ids []int) string {
	parts := make([]string, 0, maxNeighbors+1)
	for i, id := range ids {
		if i == maxNeighbors {
			parts = append(parts, fmt.Sprintf("+%d", len(ids)-maxNeighbors))
			break
		}
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, " ")
}
