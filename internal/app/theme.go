package app

import "github.com/charmbracelet/lipgloss"

const (
	cardPaddingVertical   = 0
	cardPaddingHorizontal = 1
)

var (
	headerStyle              = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle                = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activityStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	selectedStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	dividerStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	menuDropStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	contextMenuHeaderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	confirmDialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208"))
	formFrameStyle           = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color("69")).
					Padding(0, 1)
	formLabelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	formLabelActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true)
	saveButtonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true).Underline(true)
	cancelButtonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Underline(true)
	cardStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(cardPaddingVertical, cardPaddingHorizontal)
	cardSelectedStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("117")).Padding(cardPaddingVertical, cardPaddingHorizontal)
	cardEditingStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("179")).Padding(cardPaddingVertical, cardPaddingHorizontal)
	cardTitleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	cardEmptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	cardMetaStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	editButtonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true).Underline(true)
	deleteButtonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Underline(true)
	placeholderStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	filterStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	toastInfoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
