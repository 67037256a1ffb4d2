// Package bubbletea provides a terminal screenplay editor using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fountain"
	fountainlg "github.com/fwojciec/fountain/lipgloss"
	fountainlog "github.com/fwojciec/fountain/log"
)

// Mode is the editing mode of the model.
type Mode int

// Modes.
const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns the mode name shown in the status bar.
func (m Mode) String() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// DefaultInsertEscape is the key sequence that leaves insert mode.
const DefaultInsertEscape = "jj"

// DefaultPageWidth is the column width lines are aligned within.
const DefaultPageWidth = 60

var (
	errNoSaver     = errors.New("no saver configured")
	errNoClipboard = errors.New("no clipboard configured")
)

// Model is the Bubble Tea model for editing a screenplay.
type Model struct {
	name       string
	buf        *Buffer
	classifier *fountain.Classifier

	// Collaborators
	saver     fountain.Saver
	clipboard fountain.Clipboard
	logger    *slog.Logger

	// UI state
	keymap       KeyMap
	styles       fountain.Styles
	renderer     *lipgloss.Renderer
	mode         Mode
	insertEscape []rune
	escMatched   int
	pendingKey   string
	quitArmed    bool
	width        int
	height       int
	pageWidth    int
	offset       int
	ready        bool
	dirty        bool
	status       string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer     *lipgloss.Renderer
	theme        fountain.Theme
	keymap       *KeyMap
	saver        fountain.Saver
	clipboard    fountain.Clipboard
	logger       *slog.Logger
	insertEscape *string
	pageWidth    int
	classifier   *fountain.Classifier
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t fountain.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) ModelOption {
	return func(cfg *modelConfig) {
		cfg.keymap = &km
	}
}

// WithSaver sets the saver used by the save binding.
func WithSaver(s fountain.Saver) ModelOption {
	return func(cfg *modelConfig) {
		cfg.saver = s
	}
}

// WithClipboard sets the clipboard used by the copy binding.
func WithClipboard(c fountain.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithLogger sets the logger for save and clipboard outcomes.
func WithLogger(l *slog.Logger) ModelOption {
	return func(cfg *modelConfig) {
		cfg.logger = l
	}
}

// WithInsertEscape sets the typed sequence that leaves insert mode.
// An empty sequence disables it; the escape key always works.
func WithInsertEscape(seq string) ModelOption {
	return func(cfg *modelConfig) {
		cfg.insertEscape = &seq
	}
}

// WithPageWidth sets the width lines are aligned within.
func WithPageWidth(w int) ModelOption {
	return func(cfg *modelConfig) {
		cfg.pageWidth = w
	}
}

// WithClassifier replaces the default classifier.
func WithClassifier(c *fountain.Classifier) ModelOption {
	return func(cfg *modelConfig) {
		cfg.classifier = c
	}
}

// NewModel creates a new Model editing doc. A nil doc starts an empty screenplay.
func NewModel(doc *fountain.Document, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if doc == nil {
		doc = fountain.NewDocument("", "")
	}

	var theme fountain.Theme = fountainlg.DefaultTheme()
	if cfg.theme != nil {
		theme = cfg.theme
	}
	keymap := DefaultKeyMap()
	if cfg.keymap != nil {
		keymap = *cfg.keymap
	}
	logger := cfg.logger
	if logger == nil {
		logger = fountainlog.Discard()
	}
	escape := DefaultInsertEscape
	if cfg.insertEscape != nil {
		escape = *cfg.insertEscape
	}
	pageWidth := cfg.pageWidth
	if pageWidth <= 0 {
		pageWidth = DefaultPageWidth
	}
	classifier := cfg.classifier
	if classifier == nil {
		classifier = fountain.NewClassifier()
	}

	return Model{
		name:         doc.Name,
		buf:          NewBuffer(doc.Text),
		classifier:   classifier,
		saver:        cfg.saver,
		clipboard:    cfg.clipboard,
		logger:       fountainlog.WithComponent(logger, "editor"),
		keymap:       keymap,
		styles:       theme.Styles(),
		renderer:     cfg.renderer,
		insertEscape: []rune(escape),
		pageWidth:    pageWidth,
	}
}

// Text returns the current document text.
func (m Model) Text() string {
	return m.buf.Text()
}

// Document returns the current document.
func (m Model) Document() *fountain.Document {
	return fountain.NewDocument(m.name, m.buf.Text())
}

// Mode returns the current editing mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Cursor returns the cursor row and rune column.
func (m Model) Cursor() (row, col int) {
	return m.buf.Cursor()
}

// Dirty reports whether the document changed since it was loaded or saved.
func (m Model) Dirty() bool {
	return m.dirty
}

// Status returns the message shown in the status bar.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, m.keymap.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Save):
			m.pendingKey = ""
			m.escMatched = 0
			m.save()
		case key.Matches(msg, m.keymap.Copy):
			m.pendingKey = ""
			m.escMatched = 0
			m.copyDocument()
		case m.mode == ModeInsert:
			m.handleInsertKey(msg)
		default:
			cmd = m.handleNormalKey(msg)
		}
		m.scrollToCursor()
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.scrollToCursor()
	}
	return m, nil
}

func (m *Model) handleInsertKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keymap.Escape) {
		m.enterNormalMode()
		return
	}
	typed := msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
	if typed && len(msg.Runes) == 1 && !msg.Paste {
		m.typeRune(msg.Runes[0])
		return
	}

	m.escMatched = 0
	switch {
	case typed:
		m.buf.InsertRunes(msg.Runes)
	case msg.Type == tea.KeyTab:
		m.buf.InsertRune('\t')
	case msg.Type == tea.KeyEnter:
		m.buf.InsertNewline()
	case msg.Type == tea.KeyBackspace:
		if !m.buf.DeleteBackward() {
			return
		}
	case msg.Type == tea.KeyDelete:
		if !m.buf.DeleteForward() {
			return
		}
	default:
		m.moveInsertCursor(msg.Type)
		return
	}
	m.dirty = true
}

func (m *Model) moveInsertCursor(t tea.KeyType) {
	switch t {
	case tea.KeyLeft:
		m.buf.MoveLeft()
	case tea.KeyRight:
		m.buf.MoveRight(true)
	case tea.KeyUp:
		m.buf.MoveUp()
	case tea.KeyDown:
		m.buf.MoveDown()
	case tea.KeyHome:
		m.buf.LineStart()
	case tea.KeyEnd:
		m.buf.LineEnd()
	}
}

// typeRune inserts r and leaves insert mode once the escape sequence is complete.
// The typed sequence is removed from the buffer.
func (m *Model) typeRune(r rune) {
	m.buf.InsertRune(r)
	m.dirty = true

	seq := m.insertEscape
	if len(seq) == 0 {
		return
	}
	switch {
	case r == seq[m.escMatched]:
		m.escMatched++
	case r == seq[0]:
		m.escMatched = 1
	default:
		m.escMatched = 0
	}
	if m.escMatched < len(seq) {
		return
	}
	for range seq {
		m.buf.DeleteBackward()
	}
	m.enterNormalMode()
}

func (m *Model) enterNormalMode() {
	m.mode = ModeNormal
	m.escMatched = 0
	m.buf.MoveLeft()
	m.buf.ClampNormal()
}

func (m *Model) enterInsertMode() {
	m.mode = ModeInsert
	m.escMatched = 0
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	pending := m.pendingKey
	m.pendingKey = ""

	quitArmed := m.quitArmed
	m.quitArmed = false

	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.dirty && !quitArmed {
			m.quitArmed = true
			m.status = "unsaved changes (q again to quit, ctrl+s to save)"
			return nil
		}
		return tea.Quit
	case key.Matches(msg, m.keymap.GotoTop):
		if pending == "g" {
			m.buf.Top()
		} else {
			m.pendingKey = "g"
		}
	case key.Matches(msg, m.keymap.DeleteLine):
		if pending == "d" {
			m.buf.DeleteLine()
			m.dirty = true
		} else {
			m.pendingKey = "d"
		}
	case key.Matches(msg, m.keymap.GotoBottom):
		m.buf.Bottom()
	case key.Matches(msg, m.keymap.Left):
		m.buf.MoveLeft()
	case key.Matches(msg, m.keymap.Right):
		m.buf.MoveRight(false)
	case key.Matches(msg, m.keymap.Up):
		m.buf.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.buf.MoveDown()
	case key.Matches(msg, m.keymap.LineStart):
		m.buf.LineStart()
	case key.Matches(msg, m.keymap.LineEnd):
		m.buf.LineEnd()
	case key.Matches(msg, m.keymap.Insert):
		m.enterInsertMode()
		return nil
	case key.Matches(msg, m.keymap.Append):
		m.buf.MoveRight(true)
		m.enterInsertMode()
		return nil
	case key.Matches(msg, m.keymap.AppendEnd):
		m.buf.LineEnd()
		m.enterInsertMode()
		return nil
	case key.Matches(msg, m.keymap.OpenBelow):
		m.buf.OpenBelow()
		m.dirty = true
		m.enterInsertMode()
		return nil
	case key.Matches(msg, m.keymap.OpenAbove):
		m.buf.OpenAbove()
		m.dirty = true
		m.enterInsertMode()
		return nil
	case key.Matches(msg, m.keymap.DeleteChar):
		if m.buf.DeleteChar() {
			m.dirty = true
		}
	}
	m.buf.ClampNormal()
	return nil
}

// save writes the document through the saver and reports the outcome in the status bar.
func (m *Model) save() {
	path, err := m.Save()
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// Save writes the current document through the configured saver.
// It fails with fountain.ErrEditorNotInitialized before the first window size
// message and with fountain.ErrEmptyDocument when there is no text.
func (m *Model) Save() (string, error) {
	if !m.ready {
		m.logger.Error("save requested before editor initialized", "err", fountain.ErrEditorNotInitialized)
		return "", fountain.ErrEditorNotInitialized
	}
	if m.saver == nil {
		m.logger.Error("save requested without a saver", "err", errNoSaver)
		return "", errNoSaver
	}
	if m.buf.Empty() {
		m.logger.Error("refusing to save empty document", "name", m.name, "err", fountain.ErrEmptyDocument)
		return "", fountain.ErrEmptyDocument
	}
	doc := m.Document()
	path, err := m.saver.Save(doc)
	if err != nil {
		m.logger.Error("save failed", "name", doc.Name, "err", err)
		return "", err
	}
	m.dirty = false
	m.logger.Info("saved document", "path", path, "content_type", fountain.ContentType, "bytes", len(doc.Text))
	return path, nil
}

func (m *Model) copyDocument() {
	if m.clipboard == nil {
		m.logger.Error("copy requested without a clipboard", "err", errNoClipboard)
		m.status = "copy failed: " + errNoClipboard.Error()
		return
	}
	text := m.buf.Text()
	if err := m.clipboard.Copy(text); err != nil {
		m.logger.Error("copy failed", "err", err)
		m.status = "copy failed: " + err.Error()
		return
	}
	m.logger.Info("copied document", "bytes", len(text))
	m.status = fmt.Sprintf("copied %d lines", m.buf.LineCount())
}

// contentHeight is the number of rows available for document lines.
func (m Model) contentHeight() int {
	const statusBarHeight = 1
	return max(m.height-statusBarHeight, 1)
}

// scrollToCursor adjusts the scroll offset so the cursor row is visible.
func (m *Model) scrollToCursor() {
	row, _ := m.buf.Cursor()
	h := m.contentHeight()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+h {
		m.offset = row - h + 1
	}
	if maxOffset := max(m.buf.LineCount()-h, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Classify from the top on every render so dialogue state is always correct.
	lines := m.classifier.ClassifyLines(m.buf.Lines())
	row, col := m.buf.Cursor()

	content := renderBuffer(renderConfig{
		lines:      lines,
		styles:     m.styles,
		renderer:   m.renderer,
		width:      m.width,
		height:     m.contentHeight(),
		pageWidth:  m.pageWidth,
		offset:     m.offset,
		cursorRow:  row,
		cursorCol:  col,
		showCursor: true,
	})
	return content + "\n" + m.statusBarView(lines[row])
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders the mode, document name, current category and position.
func (m Model) statusBarView(current fountain.Line) string {
	barStyle := fountainlg.StyleFromColorPair(m.styles.StatusBar, m.renderer)
	modeStyle := fountainlg.StyleFromColorPair(m.styles.Mode, m.renderer).Bold(true)
	sepStyle := m.newStyle().
		Background(lipgloss.Color(m.styles.StatusBar.Background)).
		Foreground(lipgloss.Color(m.styles.LineNumber.Foreground))

	name := m.name
	if m.dirty {
		name += " [+]"
	}
	category := string(current.Category)
	if current.Blank {
		category = "blank"
	}
	row, _ := m.buf.Cursor()
	pos := fmt.Sprintf("Ln %d, Col %d", row+1, m.buf.DisplayColumn()+1)

	sep := sepStyle.Render(" │ ")
	content := modeStyle.Render(" "+m.mode.String()+" ") +
		barStyle.Render(" "+name) + sep +
		barStyle.Render(category) + sep +
		barStyle.Render(pos)
	if m.status != "" {
		content += sep + barStyle.Render(m.status)
	}

	if w := lipgloss.Width(content); m.width > w {
		content += barStyle.Render(strings.Repeat(" ", m.width-w))
	}
	return content
}

// Compile-time interface verification.
var _ fountain.Editor = (*Editor)(nil)

// Editor implements fountain.Editor using a Bubble Tea TUI.
type Editor struct {
	opts []ModelOption
}

// NewEditor creates an Editor whose models are built with opts.
func NewEditor(opts ...ModelOption) *Editor {
	return &Editor{opts: opts}
}

// Edit runs the editor on doc and blocks until the user exits.
// The final text is written back to doc.Text.
func (e *Editor) Edit(ctx context.Context, doc *fountain.Document) error {
	m := NewModel(doc, e.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && doc != nil {
		doc.Text = fm.Text()
	}
	return nil
}
