package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"inboxtags/internal/directory"
)

// renderHelpContent renders the full help shown in the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(k, desc string) {
		help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render(k), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("inboxtags Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	line("type", "Filter contacts by name (case-insensitive)")
	line("↑/↓", "Move through suggestions")
	line("enter/tab", "Add the highlighted contact")
	line("esc", "Close suggestions")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Recipients"))
	help.WriteString("\n")
	line("⌫", "Remove the last recipient when the input is empty")
	line("click ×", "Remove that recipient")
	line("click", "Add a suggestion / close the list by clicking elsewhere")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("ctrl+s", "Done: print recipients and exit")
	line("esc/ctrl+c", "Quit without printing")
	line("ctrl+l", "Browse the contact directory")
	line("f1", "This help")
	help.WriteString("\n")
	help.WriteString(descStyle.Render("Press q to return"))
	help.WriteString("\n")

	return help.String()
}

// renderDirectoryContent lists every contact for the pager
func renderDirectoryContent(dir *directory.Directory) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d contacts\n\n", dir.Len()))
	for c := range dir.All() {
		b.WriteString(fmt.Sprintf("%-24s %s\n", c.Name, c.AvatarURL))
	}
	return b.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager hands the terminal to ov until the user quits it
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd runs the pager off the update loop and reports back
func (p *PagerOps) pagerCmd(what, content string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{what: what, err: p.ShowInPager(content)}
	}
}
