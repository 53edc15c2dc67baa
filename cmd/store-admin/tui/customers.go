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

type customersLoadedMsg struct {
	page *models.Page[models.Customer]
	err  error
}

type customerSavedMsg struct {
	err error
}

type customerDeletedMsg struct {
	err error
}

const (
	customerFieldName = iota
	customerFieldEmail
	customerFieldPhone
)

type customersPage struct {
	svc   *service.CustomerService
	pager pager
	table table.Model
	rows  []models.Customer

	formOpen bool
	editing  *models.Customer
	fields   []textField
	focus    int

	confirm  *ConfirmDialog
	deleteID int64
	notice   notice
}

func newCustomersPage(svc *service.CustomerService) *customersPage {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 26},
		{Title: "Email", Width: 30},
		{Title: "Phone", Width: 16},
		{Title: "Created", Width: 17},
	}

	t := table.New(table.WithColumns(columns), table.WithFocused(true))

	return &customersPage{
		svc:   svc,
		pager: newPager(),
		table: t,
	}
}

func (p *customersPage) Init() tea.Cmd {
	return p.loadCmd()
}

func (p *customersPage) loadCmd() tea.Cmd {
	page, size := p.pager.page, p.pager.size
	p.pager.loading = true

	return func() tea.Msg {
		result, err := p.svc.List(context.Background(), page, size)

		return customersLoadedMsg{page: result, err: err}
	}
}

func (p *customersPage) saveCmd() tea.Cmd {
	var editingID *int64
	if p.editing != nil {
		editingID = &p.editing.ID
	}

	payload := models.CustomerPayload{
		Name:  strings.TrimSpace(p.fields[customerFieldName].input.Value()),
		Email: strings.TrimSpace(p.fields[customerFieldEmail].input.Value()),
		Phone: strings.TrimSpace(p.fields[customerFieldPhone].input.Value()),
	}

	return func() tea.Msg {
		_, err := p.svc.Save(context.Background(), editingID, payload)

		return customerSavedMsg{err: err}
	}
}

func (p *customersPage) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return customerDeletedMsg{err: p.svc.Delete(context.Background(), id)}
	}
}

func (p *customersPage) openForm(editing *models.Customer) {
	p.editing = editing
	p.fields = []textField{
		newTextField("Name", "Customer name", 120),
		newTextField("Email", "name@example.com", 180),
		newTextField("Phone", "Optional phone", 20),
	}

	if editing != nil {
		p.fields[customerFieldName].input.SetValue(editing.Name)
		p.fields[customerFieldEmail].input.SetValue(editing.Email)
		p.fields[customerFieldPhone].input.SetValue(editing.Phone)
	}

	p.focus = 0
	p.fields[0].input.Focus()
	p.formOpen = true
}

func (p *customersPage) closeForm() {
	p.formOpen = false
	p.editing = nil
	p.fields = nil
}

func (p *customersPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		p.pager.loading = false

		if msg.err != nil {
			p.notice = errorNotice("Failed to load customers: " + msg.err.Error())

			return nil
		}

		p.rows = msg.page.Content
		p.pager.totalPages = msg.page.TotalPages
		p.refreshTable()

		return nil

	case customerSavedMsg:
		p.pager.submitting = false

		if msg.err != nil {
			p.notice = errorNotice("Failed to save: " + msg.err.Error())

			return nil
		}

		p.closeForm()
		p.notice = successNotice("Customer saved")

		return p.loadCmd()

	case customerDeletedMsg:
		if msg.err != nil {
			p.notice = errorNotice("Failed to delete: " + msg.err.Error())

			return nil
		}

		p.notice = successNotice("Customer deleted")

		return p.loadCmd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return nil
}

func (p *customersPage) handleKey(msg tea.KeyMsg) tea.Cmd {

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
			dialog := NewConfirmDialog("Delete customer", fmt.Sprintf("Delete %q? This cannot be undone.", item.Name))
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

func (p *customersPage) handleFormKey(msg tea.KeyMsg) tea.Cmd {
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

func (p *customersPage) moveFocus(delta int) {
	p.fields[p.focus].input.Blur()
	p.focus = (p.focus + delta + len(p.fields)) % len(p.fields)
	p.fields[p.focus].input.Focus()
}

func (p *customersPage) selected() *models.Customer {
	idx := p.table.Cursor()
	if idx < 0 || idx >= len(p.rows) {
		return nil
	}

	return &p.rows[idx]
}

func (p *customersPage) refreshTable() {
	rows := make([]table.Row, 0, len(p.rows))

	for _, c := range p.rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", c.ID),
			c.Name,
			c.Email,
			c.Phone,
			c.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	p.table.SetRows(rows)
}

func (p *customersPage) View() string {
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

func (p *customersPage) formView() string {
	title := "New customer"
	if p.editing != nil {
		title = "Edit customer"
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

func (p *customersPage) Notice() notice {
	return p.notice
}

func (p *customersPage) FormOpen() bool {
	return p.formOpen || p.confirm != nil
}
