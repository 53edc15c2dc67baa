package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/backoffice-labs/store-admin/internal/models"
	service "github.com/backoffice-labs/store-admin/internal/services"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type productsLoadedMsg struct {
	page *models.Page[models.Product]
	err  error
}

type productSavedMsg struct {
	err error
}

type productDeletedMsg struct {
	err error
}

type categoryOptionsMsg struct {
	categories []models.Category
	err        error
}

const (
	productFieldName = iota
	productFieldDescription
	productFieldPrice
	productFieldCategory
)

type productsPage struct {
	svc    *service.ProductService
	lookup *service.LookupService
	pager  pager
	table  table.Model
	rows   []models.Product

	formOpen bool
	editing  *models.Product
	fields   []textField
	category selectField
	focus    int

	confirm  *ConfirmDialog
	deleteID int64
	notice   notice
}

func newProductsPage(svc *service.ProductService, lookup *service.LookupService) *productsPage {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 28},
		{Title: "Price", Width: 10},
		{Title: "Category", Width: 20},
		{Title: "Created", Width: 17},
	}

	t := table.New(table.WithColumns(columns), table.WithFocused(true))

	return &productsPage{
		svc:    svc,
		lookup: lookup,
		pager:  newPager(),
		table:  t,
	}
}

func (p *productsPage) Init() tea.Cmd {
	return p.loadCmd()
}

func (p *productsPage) loadCmd() tea.Cmd {
	page, size := p.pager.page, p.pager.size
	p.pager.loading = true

	return func() tea.Msg {
		result, err := p.svc.List(context.Background(), page, size)

		return productsLoadedMsg{page: result, err: err}
	}
}

func (p *productsPage) loadCategoryOptionsCmd() tea.Cmd {
	return func() tea.Msg {
		categories, err := p.lookup.CategoryOptions(context.Background())

		return categoryOptionsMsg{categories: categories, err: err}
	}
}

func (p *productsPage) saveCmd() (tea.Cmd, error) {
	var editingID *int64
	if p.editing != nil {
		editingID = &p.editing.ID
	}

	priceText := strings.TrimSpace(p.fields[productFieldPrice].input.Value())

	price := 0.0

	if priceText != "" {
		parsed, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price: %s", priceText)
		}

		price = parsed
	}

	payload := models.ProductPayload{
		Name:        strings.TrimSpace(p.fields[productFieldName].input.Value()),
		Description: strings.TrimSpace(p.fields[productFieldDescription].input.Value()),
		Price:       price,
		CategoryID:  p.category.Selected(),
	}

	return func() tea.Msg {
		_, err := p.svc.Save(context.Background(), editingID, payload)

		return productSavedMsg{err: err}
	}, nil
}

func (p *productsPage) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return productDeletedMsg{err: p.svc.Delete(context.Background(), id)}
	}
}

// openForm resets or pre-fills the draft and kicks off the category
// lookup; a lookup failure reports but does not block the form.
func (p *productsPage) openForm(editing *models.Product) tea.Cmd {
	p.editing = editing
	p.fields = []textField{
		newTextField("Name", "Product name", 160),
		newTextField("Description", "Optional description", 255),
		newTextField("Price", "0.00", 12),
	}
	p.category = newSelectField("Category")

	if editing != nil {
		p.fields[productFieldName].input.SetValue(editing.Name)
		p.fields[productFieldDescription].input.SetValue(editing.Description)
		p.fields[productFieldPrice].input.SetValue(strconv.FormatFloat(editing.Price, 'f', 2, 64))
	}

	p.focus = 0
	p.fields[0].input.Focus()
	p.formOpen = true

	return p.loadCategoryOptionsCmd()
}

func (p *productsPage) closeForm() {
	p.formOpen = false
	p.editing = nil
	p.fields = nil
}

func (p *productsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		p.pager.loading = false

		if msg.err != nil {
			p.notice = errorNotice("Failed to load products: " + msg.err.Error())

			return nil
		}

		p.rows = msg.page.Content
		p.pager.totalPages = msg.page.TotalPages
		p.refreshTable()

		return nil

	case categoryOptionsMsg:
		if msg.err != nil {
			p.notice = errorNotice("Failed to load categories: " + msg.err.Error())

			return nil
		}

		// Late responses land on whatever form is open, if any.
		if !p.formOpen {
			return nil
		}

		options := make([]option, 0, len(msg.categories))
		for _, c := range msg.categories {
			options = append(options, option{id: c.ID, label: c.Name})
		}

		p.category.SetOptions(options)

		if p.editing != nil {
			p.category.Select(p.editing.CategoryID)
		}

		return nil

	case productSavedMsg:
		p.pager.submitting = false

		if msg.err != nil {
			p.notice = errorNotice("Failed to save: " + msg.err.Error())

			return nil
		}

		p.closeForm()
		p.notice = successNotice("Product saved")

		return p.loadCmd()

	case productDeletedMsg:
		if msg.err != nil {
			p.notice = errorNotice("Failed to delete: " + msg.err.Error())

			return nil
		}

		p.notice = successNotice("Product deleted")

		return p.loadCmd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return nil
}

func (p *productsPage) handleKey(msg tea.KeyMsg) tea.Cmd {

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
		return p.openForm(nil)

	case "enter", "e":
		if item := p.selected(); item != nil {
			return p.openForm(item)
		}

		return nil

	case "d":
		if item := p.selected(); item != nil {
			p.deleteID = item.ID
			dialog := NewConfirmDialog("Delete product", fmt.Sprintf("Delete %q? This cannot be undone.", item.Name))
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

func (p *productsPage) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.closeForm()

		return nil

	case "enter":
		if p.pager.submitting {
			return nil
		}

		cmd, err := p.saveCmd()
		if err != nil {
			p.notice = errorNotice(err.Error())

			return nil
		}

		p.pager.submitting = true

		return cmd

	case "tab", "down":
		p.moveFocus(1)

		return nil

	case "shift+tab", "up":
		p.moveFocus(-1)

		return nil
	}

	if p.focus == productFieldCategory {
		switch msg.String() {
		case "left", "h":
			p.category.Cycle(-1)
		case "right", "l":
			p.category.Cycle(1)
		}

		return nil
	}

	var cmd tea.Cmd
	p.fields[p.focus].input, cmd = p.fields[p.focus].input.Update(msg)

	return cmd
}

func (p *productsPage) moveFocus(delta int) {
	if p.focus < len(p.fields) {
		p.fields[p.focus].input.Blur()
	}

	fieldCount := len(p.fields) + 1 // text fields plus the category selector
	p.focus = (p.focus + delta + fieldCount) % fieldCount

	if p.focus < len(p.fields) {
		p.fields[p.focus].input.Focus()
	}
}

func (p *productsPage) selected() *models.Product {
	idx := p.table.Cursor()
	if idx < 0 || idx >= len(p.rows) {
		return nil
	}

	return &p.rows[idx]
}

func (p *productsPage) refreshTable() {
	rows := make([]table.Row, 0, len(p.rows))

	for _, item := range p.rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", item.ID),
			item.Name,
			fmt.Sprintf("%.2f", item.Price),
			item.CategoryName,
			item.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	p.table.SetRows(rows)
}

func (p *productsPage) View() string {
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

func (p *productsPage) formView() string {
	title := "New product"
	if p.editing != nil {
		title = "Edit product"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, field := range p.fields {
		b.WriteString(field.View(i == p.focus))
		b.WriteString("\n\n")
	}

	b.WriteString(p.category.View(p.focus == productFieldCategory))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("enter", "save") + " • " + FormatKey("esc", "cancel") + " • " + FormatKey("tab", "next field")))

	return boxStyle.Render(b.String())
}

func (p *productsPage) Notice() notice {
	return p.notice
}

func (p *productsPage) FormOpen() bool {
	return p.formOpen || p.confirm != nil
}
