package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/editor"
	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// Cursor movement per keypress in screen cells. Terminal cells are roughly
// twice as tall as wide, so the horizontal step is doubled.
const (
	cursorStepX = 2
	cursorStepY = 1
)

// newViewCmd creates the view command, an interactive terminal canvas for a
// diagram file. The canvas drives the pointer state machine with keyboard
// gestures: pan on empty space, drag nodes, connect nodes.
func newViewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Open a diagram in an interactive terminal canvas",
		Long: `View opens an interactive canvas:

  arrows/hjkl  move the cursor
  space        press/release the pointer (pan, drag, connect)
  c            toggle connect mode (sequence edges)
  + / -        zoom in / out
  f            fit the diagram to the window
  esc          cancel the active gesture
  q            quit (writes --output if set)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDiagram(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ed := editor.New(d, editor.Options{
				ViewSize: geom.Size{W: 80, H: 24},
				Padding:  cfg.Editor.Padding,
				Grid:     cfg.Editor.Grid,
			})
			model := newCanvasModel(ed)

			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}
			ed.Close()

			if output == "" {
				return nil
			}
			result := final.(canvasModel).ed.Diagram()
			data, err := diagram.Marshal(result)
			if err != nil {
				return err
			}
			return writeOutput(output, data)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the edited diagram on quit")
	return cmd
}

// =============================================================================
// canvasModel - Interactive diagram canvas
// =============================================================================

// canvasModel is the bubbletea model wrapping one editor surface. The
// keyboard cursor stands in for the pointer: space presses and releases it,
// movement while pressed feeds the active gesture.
type canvasModel struct {
	ed      *editor.Editor
	cursor  geom.Point // screen cells
	pressed bool
	connect bool
	width   int
	height  int
}

func newCanvasModel(ed *editor.Editor) canvasModel {
	return canvasModel{ed: ed, cursor: geom.Point{X: 10, Y: 5}, width: 80, height: 24}
}

func (m canvasModel) Init() tea.Cmd {
	return nil
}

func (m canvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 3 // status area
		if m.height < 5 {
			m.height = 5
		}
		m.ed.Resize(geom.Size{W: float64(m.width), H: float64(m.height)})
		m.ed.FitToContent()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.ed.Cancel()
			m.pressed = false
		case "up", "k":
			m = m.moveCursor(0, -cursorStepY)
		case "down", "j":
			m = m.moveCursor(0, cursorStepY)
		case "left", "h":
			m = m.moveCursor(-cursorStepX, 0)
		case "right", "l":
			m = m.moveCursor(cursorStepX, 0)
		case " ":
			if m.pressed {
				m.ed.PointerUp()
				m.pressed = false
			} else {
				m.ed.PointerDown(m.cursor)
				// Connect completes on the down event alone.
				m.pressed = m.ed.State() == editor.Panning || m.ed.State() == editor.DraggingNode
			}
		case "c":
			m.connect = !m.connect
			m.ed.SetConnectMode(m.connect, diagram.EdgeSequence)
		case "+", "=":
			m.ed.Zoom(1)
		case "-":
			m.ed.Zoom(-1)
		case "f":
			m.ed.FitToContent()
		}
	}
	return m, nil
}

// moveCursor shifts the cursor inside the canvas and feeds the motion to any
// active gesture.
func (m canvasModel) moveCursor(dx, dy int) canvasModel {
	m.cursor.X = clamp(m.cursor.X+float64(dx), 0, float64(m.width-1))
	m.cursor.Y = clamp(m.cursor.Y+float64(dy), 0, float64(m.height-1))
	if m.pressed {
		m.ed.PointerMove(m.cursor)
	}
	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m canvasModel) View() string {
	grid := make([][]rune, m.height)
	for i := range grid {
		grid[i] = make([]rune, m.width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for _, n := range m.ed.Diagram().Nodes {
		m.drawNode(grid, n)
	}
	m.set(grid, int(m.cursor.X), int(m.cursor.Y), '+')

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(m.statusBar())
	return b.String()
}

// drawNode places a node on the character grid: a corner-marked box when it
// fits, otherwise just its label at the projected position.
func (m canvasModel) drawNode(grid [][]rune, n diagram.Node) {
	vp := m.ed.Viewport()
	bounds := n.Bounds()
	topLeft := vp.ToScreen(geom.Point{X: bounds.X, Y: bounds.Y})

	x := int(topLeft.X)
	y := int(topLeft.Y)
	w := int(bounds.W * vp.Scale)
	h := int(bounds.H * vp.Scale)

	if w >= 4 && h >= 2 {
		m.set(grid, x, y, boxCorner(n.ID == m.ed.Selection()))
		m.set(grid, x+w-1, y, '┐')
		m.set(grid, x, y+h-1, '└')
		m.set(grid, x+w-1, y+h-1, '┘')
		for i := x + 1; i < x+w-1; i++ {
			m.set(grid, i, y, '─')
			m.set(grid, i, y+h-1, '─')
		}
		for i := y + 1; i < y+h-1; i++ {
			m.set(grid, x, i, '│')
			m.set(grid, x+w-1, i, '│')
		}
	}

	label := n.Label
	if label == "" {
		label = string(n.Kind)
	}
	// Truncate and position on runes, not bytes, so multibyte labels
	// neither split mid-character nor drift across cells.
	runes := []rune(label)
	if len(runes) > w-2 && w >= 4 {
		runes = runes[:w-2]
	}
	ly := y + h/2
	lx := x + (w-len(runes))/2
	for i, r := range runes {
		m.set(grid, lx+i, ly, r)
	}
}

// boxCorner marks the selected node's top-left corner.
func boxCorner(selected bool) rune {
	if selected {
		return '◆'
	}
	return '┌'
}

// set writes a rune at grid position, ignoring out-of-bounds writes.
func (m canvasModel) set(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

// statusBar renders the two-line footer: gesture state and key help.
func (m canvasModel) statusBar() string {
	d := m.ed.Diagram()

	state := m.ed.State().String()
	if m.connect {
		state += " · connect"
	}
	sel := "none"
	if id := m.ed.Selection(); id != "" {
		if n, ok := d.Node(id); ok {
			sel = n.Label
			if sel == "" {
				sel = id
			}
		}
	}

	status := fmt.Sprintf(" %s · selected: %s · zoom %.0f%% · %d nodes %d edges",
		state, sel, m.ed.Viewport().Scale*100, len(d.Nodes), len(d.Edges))
	help := " ↑↓←→ move · space press · c connect · +/- zoom · f fit · esc cancel · q quit"

	return StyleHighlight.Render(status) + "\n" + StyleDim.Render(help)
}
