package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/backoffice-labs/store-admin/internal/models"
	service "github.com/backoffice-labs/store-admin/internal/services"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type categoriesLoadedMsg struct {
	page *models.Page[models.Category]
	err  error
}

type categorySavedMsg struct {
	err error
}

type categoryDeletedMsg struct {
	err error
}

const (
	categoryFieldName = iota
	categoryFieldDescription
)

// categoriesPage is the list/form controller for categories. Its state
// is fully independent from the other pages.
type categoriesPage struct {
	svc   *service.CategoryService
	pager pager
	table table.Model
	rows  []models.Category

	formOpen bool
	editing  *models.Category
	fields   []textField
	focus    int

	confirm  *ConfirmDialog
	deleteID int64
	notice   notice
}

func newCategoriesPage(svc *service.CategoryService) *categoriesPage {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 28},
		{Title: "Description", Width: 36},
		{Title: "Created", Width: 17},
	}

	t := table.New(table.WithColumns(columns), table.WithFocused(true))

	return &categoriesPage{
		svc:   svc,
		pager: newPager(),
		table: t,
	}
}

func (p *categoriesPage) Init() tea.Cmd {
	return p.loadCmd()
}

func (p *categoriesPage) loadCmd() tea.Cmd {
	page, size := p.pager.page, p.pager.size
	p.pager.loading = true

	return func() tea.Msg {
		result, err := p.svc.List(context.Background(), page, size)

		return categoriesLoadedMsg{page: result, err: err}
	}
}

func (p *categoriesPage) saveCmd() tea.Cmd {
	var editingID *int64
	if p.editing != nil {
		editingID = &p.editing.ID
	}

	payload := models.CategoryPayload{
		Name:        strings.TrimSpace(p.fields[categoryFieldName].input.Value()),
		Description: strings.TrimSpace(p.fields[categoryFieldDescription].input.Value()),
	}

	return func() tea.Msg {
		_, err := p.svc.Save(context.Background(), editingID, payload)

		return categorySavedMsg{err: err}
	}
}

func (p *categoriesPage) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return categoryDeletedMsg{err: p.svc.Delete(context.Background(), id)}
	}
}

func (p *categoriesPage) openForm(editing *models.Category) {
	p.editing = editing
	p.fields = []textField{
		newTextField("Name", "Category name", 120),
		newTextField("Description", "Optional description", 255),
	}

	if editing != nil {
		p.fields[categoryFieldName].input.SetValue(editing.Name)
		p.fields[categoryFieldDescription].input.SetValue(editing.Description)
	}

	p.focus = 0
	p.fields[0].input.Focus()
	p.formOpen = true
}

func (p *categoriesPage) closeForm() {
	p.formOpen = false
	p.editing = nil
	p.fields = nil
}

func (p *categoriesPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		p.pager.loading = false

		if msg.err != nil {
			p.notice = errorNotice("Failed to load categories: " + msg.err.Error())

			return nil
		}

		p.rows = msg.page.Content
		p.pager.totalPages = msg.page.TotalPages
		p.refreshTable()

		return nil

	case categorySavedMsg:
		p.pager.submitting = false

		if msg.err != nil {
			// Form stays open with the draft intact for a retry.
			p.notice = errorNotice("Failed to save: " + msg.err.Error())

			return nil
		}

		p.closeForm()
		p.notice = successNotice("Category saved")

		return p.loadCmd()

	case categoryDeletedMsg:
		if msg.err != nil {
			p.notice = errorNotice("Failed to delete: " + msg.err.Error())

			return nil
		}

		p.notice = successNotice("Category deleted")

		return p.loadCmd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return nil
}

func (p *categoriesPage) handleKey(msg tea.KeyMsg) tea.Cmd {

	if p.confirm != nil {
		confirmed, done := p.confirm.Update(msg)
		if done {
			p.confirm = nil

			if confirmed {
				return p.deleteCmd(p.deleteID)
			}
		}

		return nil
	}

	if p.formOpen {
		return p.handleFormKey(msg)
	}

	switch msg.String() {
	case "n":
		p.openForm(nil)

		return nil

	case "enter", "e":
		if item := p.selected(); item != nil {
			p.openForm(item)
		}

		return nil

	case "d":
		if item := p.selected(); item != nil {
			p.deleteID = item.ID
			dialog := NewConfirmDialog("Delete category", fmt.Sprintf("Delete %q? This cannot be undone.", item.Name))
			p.confirm = &dialog
		}

		return nil

	case "right", "]":
		if p.pager.next() {
			return p.loadCmd()
		}

		return nil

	case "left", "[":
		if p.pager.prev() {
			return p.loadCmd()
		}

		return nil

	case "s":
		p.pager.cycleSize()

		return p.loadCmd()

	case "r":
		return p.loadCmd()
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)

	return cmd
}

func (p *categoriesPage) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.closeForm()

		return nil

	case "enter":
		if p.pager.submitting {
			return nil
		}

		p.pager.submitting = true

		return p.saveCmd()

	case "tab", "down":
		p.moveFocus(1)

		return nil

	case "shift+tab", "up":
		p.moveFocus(-1)

		return nil
	}

	var cmd tea.Cmd
	p.fields[p.focus].input, cmd = p.fields[p.focus].input.Update(msg)

	return cmd
}

func (p *categoriesPage) moveFocus(delta int) {
	p.fields[p.focus].input.Blur()
	p.focus = (p.focus + delta + len(p.fields)) % len(p.fields)
	p.fields[p.focus].input.Focus()
}

func (p *categoriesPage) selected() *models.Category {
	idx := p.table.Cursor()
	if idx < 0 || idx >= len(p.rows) {
		return nil
	}

	return &p.rows[idx]
}

func (p *categoriesPage) refreshTable() {
	rows := make([]table.Row, 0, len(p.rows))

	for _, c := range p.rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", c.ID),
			c.Name,
			c.Description,
			c.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	p.table.SetRows(rows)
}

func (p *categoriesPage) View() string {
	if p.confirm != nil {
		return p.confirm.View()
	}

	if p.formOpen {
		return p.formView()
	}

	var b strings.Builder

	b.WriteString(p.table.View())
	b.WriteString("\n")

	if p.pager.loading {
		b.WriteString(mutedStyle.Render("Loading..."))
	} else if len(p.rows) == 0 {
		b.WriteString(mutedStyle.Render("No records."))
	}

	b.WriteString("\n")
	b.WriteString(paginationView(p.pager.page, p.pager.totalPages, p.pager.size))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("n", "new") + " • " + FormatKey("enter", "edit") + " • " + FormatKey("d", "delete") + " • " + FormatKey("←/→", "page") + " • " + FormatKey("s", "page size")))

	return b.String()
}

func (p *categoriesPage) formView() string {
	title := "New category"
	if p.editing != nil {
		title = "Edit category"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, field := range p.fields {
		b.WriteString(field.View(i == p.focus))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render(FormatKey("enter", "save") + " • " + FormatKey("esc", "cancel") + " • " + FormatKey("tab", "next field")))

	return boxStyle.Render(b.String())
}

func (p *categoriesPage) Notice() notice {
	return p.notice
}

func (p *categoriesPage) FormOpen() bool {
	return p.formOpen || p.confirm != nil
}
