package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var startZoom float64

var rootCmd = &cobra.Command{
	Use:   "flode [file]",
	Short: "A mouse-driven terminal flowchart editor",
	Long: `flode is a terminal flowchart editor. Place nodes on a pannable,
zoomable canvas, drag them around, connect them with directed edges and
export the result as JSON, PNG or plain text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := ""
		if len(args) == 1 {
			filename = args[0]
		}
		return runEditor(filename)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export SRC DEST",
	Short: "Export a saved chart without opening the editor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := LoadFromFile(args[0])
		if err != nil {
			return err
		}
		switch exportFormat {
		case "json":
			return g.ExportJSON(args[1])
		case "png":
			return g.ExportToPNG(args[1])
		default:
			return fmt.Errorf("unknown format %q (want json or png)", exportFormat)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the flode version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flode %s\n", version)
	},
}

func init() {
	rootCmd.Flags().Float64Var(&startZoom, "zoom", 0, "initial zoom factor (0.2-2.5)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json or png")
	rootCmd.AddCommand(exportCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func runEditor(filename string) error {
	config := loadConfig()

	graph := NewGraph()
	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			loaded, err := LoadFromFile(filename)
			if err != nil {
				return err
			}
			graph = loaded
		}
	}

	m := initialModel(config, graph, filename)
	if startZoom != 0 {
		m.view.K = clampZoom(startZoom)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

type model struct {
	width  int
	height int

	config   *Config
	filename string

	graph   *Graph
	history *History
	view    Transform

	mode Mode
	help bool

	// Transient interaction state. The gestures that use each field live
	// in controller.go.
	selectedNode int
	selectedEdge string
	pointerX     int
	pointerY     int

	dragNodeID  int
	dragLast    Point
	dragMoved   bool
	pendingSnap Snapshot

	pressX    int
	pressY    int
	panStartX float64
	panStartY float64

	connectFrom int

	editNode   int
	editText   string
	editCursor int

	lastClickNode int
	lastClickAt   time.Time

	fileOp     FileOperation
	fileInput  string
	fileCursor int

	statusMsg   string
	statusIsErr bool
}

func initialModel(config *Config, graph *Graph, filename string) *model {
	view := NewTransform()
	view.K = clampZoom(config.DefaultZoom)
	return &model{
		config:        config,
		filename:      filename,
		graph:         graph,
		history:       &History{},
		view:          view,
		mode:          ModeIdle,
		selectedNode:  -1,
		dragNodeID:    -1,
		connectFrom:   -1,
		editNode:      -1,
		lastClickNode: -1,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.help || m.mode == ModeFileInput || m.mode == ModeExportMenu || m.mode == ModeConfirmQuit {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		m.help = false
		return m, nil
	}

	switch m.mode {
	case ModeEditing:
		m.handleEditKey(msg)
		return m, nil
	case ModeFileInput:
		return m.handleFileInputKey(msg)
	case ModeExportMenu:
		m.handleExportMenuKey(key)
		return m, nil
	case ModeConfirmQuit:
		if key == "y" || key == "enter" {
			return m, tea.Quit
		}
		m.mode = ModeIdle
		return m, nil
	}

	// A gesture is in flight: only allow it to be aborted.
	if m.mode != ModeIdle {
		if key == "esc" {
			m.cancelGesture()
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		if m.config.ConfirmQuit {
			m.mode = ModeConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "ctrl+z", "u":
		m.undo()
	case "ctrl+y", "U":
		m.redo()
	case "a":
		m.addNodeAtPointer()
	case "d", "delete", "backspace":
		m.deleteSelection()
	case "y":
		if err := copySnapshotToClipboard(m.graph); err != nil {
			m.setError("clipboard: %v", err)
		} else {
			m.setStatus("Chart copied to clipboard")
		}
	case "ctrl+s":
		if m.filename == "" {
			m.startFilePrompt(FileOpSave)
		} else {
			m.saveTo(m.filename)
		}
	case "e":
		m.mode = ModeExportMenu
	case "?":
		m.help = true
	case "esc":
		m.selectedNode = -1
		m.selectedEdge = ""
	default:
		m.handleNavigation(key)
	}
	return m, nil
}

func (m *model) handleEditKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		m.commitEdit()
	case "esc":
		m.cancelEdit()
	case "backspace":
		if m.editCursor > 0 {
			r := []rune(m.editText)
			m.editText = string(r[:m.editCursor-1]) + string(r[m.editCursor:])
			m.editCursor--
		}
	case "left":
		if m.editCursor > 0 {
			m.editCursor--
		}
	case "right":
		if m.editCursor < len([]rune(m.editText)) {
			m.editCursor++
		}
	case " ":
		m.insertEditRunes([]rune{' '})
	default:
		if msg.Type == tea.KeyRunes {
			m.insertEditRunes(msg.Runes)
		}
	}
}

func (m *model) insertEditRunes(runes []rune) {
	r := []rune(m.editText)
	out := make([]rune, 0, len(r)+len(runes))
	out = append(out, r[:m.editCursor]...)
	out = append(out, runes...)
	out = append(out, r[m.editCursor:]...)
	m.editText = string(out)
	m.editCursor += len(runes)
}

func (m *model) handleExportMenuKey(key string) {
	switch key {
	case "j":
		m.startFilePrompt(FileOpExportJSON)
	case "p":
		m.startFilePrompt(FileOpExportPNG)
	case "t":
		m.startFilePrompt(FileOpExportTXT)
	default:
		m.mode = ModeIdle
	}
}

func (m *model) startFilePrompt(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.fileInput = ""
	m.fileCursor = 0
}

func (m *model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.fileInput)
		m.mode = ModeIdle
		if name == "" {
			return m, nil
		}
		m.runFileOp(name)
	case "esc":
		m.mode = ModeIdle
	case "backspace":
		if m.fileCursor > 0 {
			r := []rune(m.fileInput)
			m.fileInput = string(r[:m.fileCursor-1]) + string(r[m.fileCursor:])
			m.fileCursor--
		}
	case " ":
		// Filenames with spaces are more trouble than they are worth in a
		// terminal prompt.
	default:
		if msg.Type == tea.KeyRunes {
			r := []rune(m.fileInput)
			out := append(append(append([]rune{}, r[:m.fileCursor]...), msg.Runes...), r[m.fileCursor:]...)
			m.fileInput = string(out)
			m.fileCursor += len(msg.Runes)
		}
	}
	return m, nil
}

func (m *model) runFileOp(name string) {
	path := m.config.SavePath(name)
	switch m.fileOp {
	case FileOpSave:
		m.filename = path
		m.saveTo(path)
	case FileOpExportJSON:
		if err := m.graph.ExportJSON(path); err != nil {
			m.setError("export: %v", err)
		} else {
			m.setStatus("Exported JSON to %s", path)
		}
	case FileOpExportPNG:
		if err := m.graph.ExportToPNG(path); err != nil {
			m.setError("export: %v", err)
		} else {
			m.setStatus("Exported PNG to %s", path)
		}
	case FileOpExportTXT:
		if err := m.exportVisualTXT(path); err != nil {
			m.setError("export: %v", err)
		} else {
			m.setStatus("Exported TXT to %s", path)
		}
	}
}

func (m *model) saveTo(path string) {
	if err := m.graph.SaveToFile(path); err != nil {
		m.setError("save: %v", err)
		return
	}
	m.setStatus("Saved %s", path)
}

func (m *model) setStatus(format string, args ...interface{}) {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusIsErr = false
}

func (m *model) setError(format string, args ...interface{}) {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusIsErr = true
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Background(lipgloss.Color("236")).
			Bold(true)
	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(1, 2)
)

func (m *model) View() string {
	if m.width < 1 || m.height < 2 {
		return ""
	}

	if m.help {
		return helpStyle.Render(helpText())
	}

	renderHeight := m.height - 1
	rows := m.renderCanvas(m.width, renderHeight)

	var result strings.Builder
	for _, row := range rows {
		result.WriteString(row)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m *model) statusLine() string {
	var line string
	switch m.mode {
	case ModeEditing:
		line = fmt.Sprintf("Text: %s | Enter=save, Esc=cancel", m.editText)
	case ModeExportMenu:
		line = "Export: j=JSON, p=PNG, t=TXT, Esc=cancel"
	case ModeFileInput:
		line = fmt.Sprintf("Filename: %s█ | Enter=confirm, Esc=cancel", m.fileInput)
	case ModeConfirmQuit:
		line = "Quit without saving? y=yes, any other key=no"
	default:
		name := m.filename
		if name == "" {
			name = "[untitled]"
		} else {
			name = baseName(name)
		}
		past, future := m.history.Depths()
		line = fmt.Sprintf("%s | zoom %.2f | undo %d / redo %d | ?=help",
			name, m.view.K, past, future)
		if m.statusMsg != "" {
			line = m.statusMsg + " | " + line
		}
	}

	mode := modeStyle.Render(m.mode.String())
	style := statusStyle
	if m.statusIsErr {
		style = errorStyle
	}
	body := style.Width(max(m.width-lipgloss.Width(mode), 0)).Render(" " + truncate(line, max(m.width-lipgloss.Width(mode)-1, 0)))
	return mode + body
}

func helpText() string {
	return strings.Join([]string{
		"flode help",
		"==========",
		"",
		"Mouse:",
		"  click+drag node       Move it",
		"  click+drag " + string(handleGlyph) + " handle   Connect to another node",
		"  click+drag canvas     Pan the view",
		"  double-click node     Edit its label",
		"  click canvas          Clear selection / cancel",
		"  scroll wheel          Zoom in and out",
		"",
		"Keys:",
		"  a                 Add node at pointer",
		"  d / Del / Bksp    Delete selected node or edge",
		"  u / Ctrl+Z        Undo",
		"  U / Ctrl+Y        Redo",
		"  h/j/k/l, arrows   Pan (Shift = faster)",
		"  + / -             Zoom",
		"  y                 Copy chart JSON to clipboard",
		"  Ctrl+S            Save",
		"  e                 Export (JSON / PNG / TXT)",
		"  ?                 Toggle this help",
		"  q / Ctrl+C        Quit",
		"",
		"Pan and zoom are view state and never enter undo history.",
		"",
		"Press any key to close.",
	}, "\n")
}
