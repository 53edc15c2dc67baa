package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDialog is a yes/no prompt. Deletes never fire without it.
type ConfirmDialog struct {
	Title       string
	Message     string
	YesSelected bool
}

func NewConfirmDialog(title, message string) ConfirmDialog {
	return ConfirmDialog{
		Title:   title,
		Message: message,
	}
}

// Update moves the selection; it reports (confirmed, done).
func (d *ConfirmDialog) Update(msg tea.Msg) (bool, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, false
	}

	switch keyMsg.String() {
	case "left", "h":
		d.YesSelected = true
	case "right", "l":
		d.YesSelected = false
	case "y":
		return true, true
	case "n", "esc":
		return false, true
	case "enter":
		return d.YesSelected, true
	}

	return false, false
}

func (d ConfirmDialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")

	if d.YesSelected {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "select") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "cancel")))

	return boxStyle.Render(b.String())
}

// noticeKind classifies a status-bar notice.
type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeInfo
	noticeSuccess
	noticeError
)

// notice is the status-bar replacement for toast notifications.
type notice struct {
	kind noticeKind
	text string
}

func infoNotice(text string) notice    { return notice{kind: noticeInfo, text: text} }
func successNotice(text string) notice { return notice{kind: noticeSuccess, text: text} }
func errorNotice(text string) notice   { return notice{kind: noticeError, text: text} }

func (n notice) View() string {
	switch n.kind {
	case noticeSuccess:
		return successStyle.Render("✓ " + n.text)
	case noticeError:
		return dangerStyle.Render("✗ " + n.text)
	case noticeInfo:
		return warningStyle.Render("• " + n.text)
	default:
		return ""
	}
}

// paginationView renders the "page x of y" footer.
func paginationView(page, totalPages, size int) string {
	shown := totalPages
	if shown == 0 {
		shown = 1
	}

	return mutedStyle.Render(fmt.Sprintf("page %d of %d · %d/page", page+1, shown, size))
}
