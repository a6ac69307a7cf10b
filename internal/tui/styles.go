package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Header
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))
	TaglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	NavStyle     = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	// Sections and entries
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))
	EntryTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	EntryStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("62")).
			PaddingLeft(1)
	SubheadingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	BodyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	DescriptionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250"))
	StrongStyle      = lipgloss.NewStyle().Bold(true)
	BulletStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	TipStyle         = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("214")).
				PaddingLeft(1)

	// Tables
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")).Padding(0, 1)
	TableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	CodeCellStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Padding(0, 1)

	// Code shown when the markdown renderer fails
	PlainCodeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2)

	// Footer
	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
