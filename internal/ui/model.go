package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"inboxtags/internal/config"
	"inboxtags/internal/directory"
	"inboxtags/internal/domain"
	"inboxtags/internal/eventbus"
	"inboxtags/internal/ui/views"
	"inboxtags/internal/widget"
)

// Screen geometry of the recipient line
const (
	wrapperX      = 6 // leaves room for the "To:" label
	wrapperY      = 2 // below the title and a blank line
	rightMargin   = 2
	minInputWidth = 16
	defaultWidth  = 80
)

// Result is what the user decided when the program exited
type Result struct {
	Confirmed bool
	Selection []domain.Contact
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	dir    *directory.Directory

	widget   *widget.Widget
	input    textinput.Model
	tags     *views.TagRenderer
	dropdown *views.DropdownRenderer
	styles   *views.Styles

	keys   KeyMap
	help   help.Model
	pager  *PagerOps
	width  int
	height int

	status    string
	confirmed bool
	quitting  bool

	unsubscribe []func()
}

// NewModel creates a new UI model around one contact tag widget
func NewModel(bus eventbus.EventBus, cfg *config.Config, dir *directory.Directory) (*Model, error) {
	styles := views.NewStyles(cfg.UI.HighlightColor)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Type a name…"
	ti.Focus()

	m := &Model{
		bus:      bus,
		config:   cfg,
		dir:      dir,
		input:    ti,
		styles:   styles,
		tags:     views.NewTagRenderer(styles, cfg.UI.ShowAvatars),
		dropdown: views.NewDropdownRenderer(styles, cfg.UI.MaxSuggestions, cfg.UI.ShowAvatars),
		keys:     DefaultKeyMap(),
		help:     newHelp(styles),
		pager:    NewPagerOps(),
		width:    defaultWidth,
	}

	w, err := widget.New(widget.Config{
		Directory: dir,
		Anchors: widget.Anchors{
			Input:    widget.ElementFunc(func() domain.Rect { return m.layout().Input }),
			Wrapper:  widget.ElementFunc(func() domain.Rect { return m.layout().Bounds }),
			Dropdown: m.dropdown,
		},
		Presenter: m.dropdown,
		Tags:      m.tags,
		Bus:       bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create contact widget: %w", err)
	}
	m.widget = w

	m.unsubscribe = append(m.unsubscribe,
		bus.Subscribe(eventbus.EventSelectionChanged, m.handleSelectionChanged),
	)
	m.syncInputWidth()
	return m, nil
}

// newHelp builds the short help bar in the picker's help style
func newHelp(styles *views.Styles) help.Model {
	h := help.New()
	keyStyle := styles.Help.Bold(true)
	h.Styles.ShortKey = keyStyle
	h.Styles.FullKey = keyStyle
	h.Styles.ShortDesc = styles.Help
	h.Styles.FullDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help
	h.Styles.FullSeparator = styles.Help
	h.Styles.Ellipsis = styles.Help
	return h
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Widget exposes the underlying contact widget
func (m *Model) Widget() *widget.Widget {
	return m.widget
}

// Result returns the outcome once the program has exited
func (m *Model) Result() Result {
	return Result{
		Confirmed: m.confirmed,
		Selection: m.widget.Selection(),
	}
}

// Close releases the widget and bus subscriptions
func (m *Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
	m.widget.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncInputWidth()
		if m.widget.State() != widget.Idle {
			m.widget.Refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager (%s) failed: %v", msg.what, msg.err)
			m.status = m.styles.StatusError.Render("pager: " + msg.err.Error())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit(false)

	case key.Matches(msg, m.keys.Dismiss):
		if m.widget.State() != widget.Idle {
			m.widget.Hide()
			return m, nil
		}
		return m.quit(false)

	case key.Matches(msg, m.keys.Confirm):
		return m.quit(true)

	case key.Matches(msg, m.keys.Up):
		m.widget.MoveActive(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.widget.MoveActive(1)
		return m, nil

	case key.Matches(msg, m.keys.Choose):
		if m.widget.ChooseActive() {
			m.afterChoose()
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove) && m.input.Value() == "":
		if m.widget.RemoveLast() {
			m.syncInputWidth()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, m.pager.pagerCmd("help", renderHelpContent())

	case key.Matches(msg, m.keys.Contacts):
		return m, m.pager.pagerCmd("contacts", renderDirectoryContent(m.dir))
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.widget.SetQuery(v)
	}
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	p := domain.Point{X: msg.X, Y: msg.Y}

	if row, ok := m.dropdown.RowAt(p); ok {
		if m.widget.Choose(row) {
			m.afterChoose()
		}
	} else if idx, ok := m.layout().RemoveHit(p); ok {
		if m.widget.RemoveTag(idx) {
			m.syncInputWidth()
		}
	}

	// document-level listeners, including the widget's outside-click check
	m.bus.Publish(domain.ClickEvent{At: p})
}

func (m *Model) afterChoose() {
	m.input.Reset()
	m.syncInputWidth()
}

func (m *Model) quit(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirmed = confirmed
	m.quitting = true
	m.widget.Hide()
	return m, tea.Quit
}

func (m *Model) handleSelectionChanged(e eventbus.DomainEvent) {
	ev, ok := e.(domain.SelectionChangedEvent)
	if !ok || ev.WidgetID != m.widget.ID() {
		return
	}
	for _, c := range ev.Added {
		m.status = "Added " + c.Name
	}
	for _, c := range ev.Removed {
		m.status = "Removed " + c.Name
	}
	log.Printf("Selection changed: %s (%d total)", m.status, ev.Total)
}

// layout flows the current chips and input for the current width
func (m *Model) layout() views.WrapperLayout {
	width := m.width - wrapperX - rightMargin
	return views.FlowLayout(domain.Point{X: wrapperX, Y: wrapperY}, width, m.tags.Chips(), minInputWidth)
}

func (m *Model) syncInputWidth() {
	m.input.Width = max(m.layout().Input.W-1, 1)
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("inboxtags"))
	b.WriteString("\n\n")

	l := m.layout()
	wrapper := l.Render(wrapperX, m.input.View())
	// label sits in the hanging indent of the first row
	label := m.styles.Label.Render(fmt.Sprintf("  %-*s", wrapperX-2, "To:"))
	wrapper = label + wrapper[wrapperX:]
	b.WriteString(wrapper)

	row := l.Bounds.Bottom()
	if m.dropdown.Visible() {
		db := m.dropdown.Bounds()
		for ; row < db.Y; row++ {
			b.WriteString("\n")
		}
		pad := strings.Repeat(" ", db.X)
		for _, line := range strings.Split(m.dropdown.View(), "\n") {
			b.WriteString("\n")
			b.WriteString(pad + line)
			row++
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderStatus() string {
	n := len(m.widget.Selection())
	parts := []string{fmt.Sprintf("%d recipient%s", n, plural(n))}

	switch m.widget.State() {
	case widget.Suggesting:
		parts = append(parts, m.styles.StatusActive.Render(fmt.Sprintf("%d match%s", len(m.widget.Matches()), pluralES(len(m.widget.Matches())))))
	case widget.Empty:
		parts = append(parts, m.styles.StatusEmpty.Render(fmt.Sprintf("no contact matches %q", m.widget.Query())))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.styles.Status.Render(strings.Join(parts, " · "))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func pluralES(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}
