package tui

import (
	"strings"

	service "github.com/backoffice-labs/store-admin/internal/services"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// page is what the app needs from each of the four entity pages.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Notice() notice
}

var tabTitles = [4]string{"Categories", "Products", "Customers", "Orders"}

// App is the root model: a tab bar over four fully independent list
// pages. Key events go to the active tab only; completion messages are
// delivered to every page so a late response still lands on the page
// that issued it, whichever tab is showing.
type App struct {
	pages  [4]page
	active int
	width  int
	height int
}

// Services bundles the per-entity services the pages run on.
type Services struct {
	Categories *service.CategoryService
	Products   *service.ProductService
	Customers  *service.CustomerService
	Orders     *service.OrderService
	Lookup     *service.LookupService
}

func NewApp(svcs Services) *App {
	return &App{
		pages: [4]page{
			newCategoriesPage(svcs.Categories),
			newProductsPage(svcs.Products, svcs.Lookup),
			newCustomersPage(svcs.Customers),
			newOrdersPage(svcs.Orders, svcs.Lookup),
		},
	}
}

func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.pages))

	for _, p := range a.pages {
		cmds = append(cmds, p.Init())
	}

	return tea.Batch(append(cmds, tea.EnterAltScreen)...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit

		case "1", "2", "3", "4":
			// Digits switch tabs only while no modal is capturing text.
			if !a.capturing() {
				a.active = int(msg.String()[0] - '1')

				return a, nil
			}

		case "q":
			if !a.capturing() {
				return a, tea.Quit
			}
		}

		return a, a.pages[a.active].Update(msg)
	}

	// Everything else (load/save/delete completions, lookups, ticks)
	// fans out to all pages; each page ignores foreign message types.
	cmds := make([]tea.Cmd, 0, len(a.pages))

	for _, p := range a.pages {
		cmds = append(cmds, p.Update(msg))
	}

	return a, tea.Batch(cmds...)
}

// capturing reports whether the active page is in a text-entry state.
func (a *App) capturing() bool {
	type former interface{ FormOpen() bool }

	if f, ok := a.pages[a.active].(former); ok {
		return f.FormOpen()
	}

	return false
}

func (a *App) View() string {
	var tabs []string

	for i, title := range tabTitles {
		if i == a.active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, tabs...))
	b.WriteString("\n\n")
	b.WriteString(a.pages[a.active].View())
	b.WriteString("\n")

	if n := a.pages[a.active].Notice(); n.kind != noticeNone {
		b.WriteString(n.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(FormatKey("1-4", "switch tab") + " • " + FormatKey("q", "quit")))

	return b.String()
}
