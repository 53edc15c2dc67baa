package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/backoffice-labs/store-admin/internal/models"
	service "github.com/backoffice-labs/store-admin/internal/services"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type ordersLoadedMsg struct {
	page *models.Page[models.Order]
	err  error
}

type orderFormOptionsMsg struct {
	customers []models.Customer
	products  []models.Product
	err       error
}

// orderCountMsg carries the refreshed aggregate; nil clears the
// display (no selection, or a silently dropped fetch failure).
type orderCountMsg struct {
	count *models.CustomerOrderCount
}

type orderSavedMsg struct {
	outcome    service.SaveOutcome
	customerID int64
	err        error
}

type orderDeletedMsg struct {
	err error
}

// itemRow is one editable line item of the order form.
type itemRow struct {
	product selectField
	qty     textField
}

// ordersPage drives the order list and the reconciling edit form.
type ordersPage struct {
	svc    *service.OrderService
	lookup *service.LookupService
	pager  pager
	table  table.Model
	rows   []models.Order

	formOpen bool
	editing  *models.Order
	customer selectField
	status   selectField
	items    []itemRow
	products []models.Product
	count    *models.CustomerOrderCount
	focus    int

	confirm  *ConfirmDialog
	deleteID int64
	notice   notice
}

func newOrdersPage(svc *service.OrderService, lookup *service.LookupService) *ordersPage {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Customer", Width: 26},
		{Title: "Total", Width: 10},
		{Title: "Status", Width: 12},
		{Title: "Created", Width: 17},
	}

	t := table.New(table.WithColumns(columns), table.WithFocused(true))

	return &ordersPage{
		svc:    svc,
		lookup: lookup,
		pager:  newPager(),
		table:  t,
	}
}

func (p *ordersPage) Init() tea.Cmd {
	return p.loadCmd()
}

func (p *ordersPage) loadCmd() tea.Cmd {
	page, size := p.pager.page, p.pager.size
	p.pager.loading = true

	return func() tea.Msg {
		result, err := p.svc.List(context.Background(), page, size)

		return ordersLoadedMsg{page: result, err: err}
	}
}

// loadFormOptionsCmd fetches customers and products as one joint
// operation; the form selectors stay empty if either half fails.
func (p *ordersPage) loadFormOptionsCmd() tea.Cmd {
	return func() tea.Msg {
		customers, products, err := p.lookup.OrderFormOptions(context.Background())

		return orderFormOptionsMsg{customers: customers, products: products, err: err}
	}
}

func (p *ordersPage) loadCountCmd(customerID int64) tea.Cmd {
	return func() tea.Msg {
		return orderCountMsg{count: p.lookup.OrderCounts(context.Background(), customerID)}
	}
}

func (p *ordersPage) saveCmd() tea.Cmd {
	original := p.editing
	draft := p.draft()

	return func() tea.Msg {
		outcome, err := p.svc.Save(context.Background(), original, draft)

		return orderSavedMsg{outcome: outcome, customerID: draft.CustomerID, err: err}
	}
}

func (p *ordersPage) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return orderDeletedMsg{err: p.svc.Delete(context.Background(), id)}
	}
}

// draft snapshots the form into the shape the reconciler expects.
// Quantity falls back to zero on unparsable input so validation
// rejects the row.
func (p *ordersPage) draft() service.OrderDraft {
	items := make([]models.OrderItemPayload, 0, len(p.items))

	for _, row := range p.items {
		qty, _ := strconv.ParseInt(strings.TrimSpace(row.qty.input.Value()), 10, 64)

		items = append(items, models.OrderItemPayload{
			ProductID: row.product.Selected(),
			Quantity:  qty,
		})
	}

	// Status comes from the closed enum via the selector's option id,
	// never from display text; with no selection the stored status
	// stands, so an unselected selector can never look like a change.
	status := models.OrderStatusCreated

	if p.editing != nil {
		status = p.editing.Status

		if id := p.status.Selected(); id >= 1 && id <= int64(len(models.OrderStatuses)) {
			status = models.OrderStatuses[id-1]
		}
	}

	return service.OrderDraft{
		CustomerID: p.customer.Selected(),
		Status:     status,
		Items:      items,
	}
}

func (p *ordersPage) openForm(editing *models.Order) tea.Cmd {
	p.editing = editing
	p.customer = newSelectField("Customer")
	p.status = newSelectField("Status")
	p.status.skipEmpty = true
	p.items = nil
	p.count = nil
	p.focus = 0

	statusOptions := make([]option, 0, len(models.OrderStatuses))
	for i, status := range models.OrderStatuses {
		statusOptions = append(statusOptions, option{id: int64(i) + 1, label: string(status)})
	}

	p.status.SetOptions(statusOptions)

	if editing != nil {
		p.status.Select(statusIndex(editing.Status))

		for _, item := range editing.Items {
			p.items = append(p.items, p.newItemRow(item.ProductID, item.Quantity))
		}
	}

	p.formOpen = true

	cmds := []tea.Cmd{p.loadFormOptionsCmd()}
	if editing != nil {
		cmds = append(cmds, p.loadCountCmd(editing.CustomerID))
	}

	return tea.Batch(cmds...)
}

// statusIndex maps a status to the 1-based option id used by the
// status selector.
func statusIndex(status models.OrderStatus) int64 {
	for i, s := range models.OrderStatuses {
		if s == status {
			return int64(i) + 1
		}
	}

	return 0
}

func (p *ordersPage) newItemRow(productID, quantity int64) itemRow {
	row := itemRow{
		product: newSelectField("Product"),
		qty:     newTextField("Qty", "1", 6),
	}

	row.product.SetOptions(p.productOptions())
	row.product.Select(productID)

	if quantity > 0 {
		row.qty.input.SetValue(strconv.FormatInt(quantity, 10))
	}

	return row
}

func (p *ordersPage) productOptions() []option {
	options := make([]option, 0, len(p.products))

	for _, product := range p.products {
		options = append(options, option{
			id:    product.ID,
			label: fmt.Sprintf("%s — %.2f", product.Name, product.Price),
		})
	}

	return options
}

func (p *ordersPage) closeForm() {
	p.formOpen = false
	p.editing = nil
	p.items = nil
}

func (p *ordersPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		p.pager.loading = false

		if msg.err != nil {
			p.notice = errorNotice("Failed to load orders: " + msg.err.Error())

			return nil
		}

		p.rows = msg.page.Content
		p.pager.totalPages = msg.page.TotalPages
		p.refreshTable()

		return nil

	case orderFormOptionsMsg:
		if msg.err != nil {
			p.notice = errorNotice("Failed to load customers/products: " + msg.err.Error())

			return nil
		}

		if !p.formOpen {
			return nil
		}

		customerOptions := make([]option, 0, len(msg.customers))
		for _, c := range msg.customers {
			customerOptions = append(customerOptions, option{id: c.ID, label: c.Name})
		}

		p.customer.SetOptions(customerOptions)
		p.products = msg.products

		for i := range p.items {
			selected := p.items[i].product.Selected()
			p.items[i].product.SetOptions(p.productOptions())
			p.items[i].product.Select(selected)
		}

		if p.editing != nil {
			p.customer.Select(p.editing.CustomerID)
		}

		return nil

	case orderCountMsg:
		p.count = msg.count

		return nil

	case orderSavedMsg:
		p.pager.submitting = false

		if msg.err != nil {
			var partial *service.PartialSaveError
			if errors.As(msg.err, &partial) {
				// The status half landed; only the structural half
				// needs another attempt.
				p.notice = errorNotice("Status updated, but saving customer/items failed: " + partial.Err.Error())
			} else {
				p.notice = errorNotice("Failed to save: " + msg.err.Error())
			}

			return nil
		}

		if msg.outcome == service.OutcomeNoChanges {
			p.notice = infoNotice("No changes to save")

			return nil
		}

		p.closeForm()
		p.notice = successNotice("Order saved")

		return tea.Batch(p.loadCmd(), p.loadCountCmd(msg.customerID))

	case orderDeletedMsg:
		if msg.err != nil {
			p.notice = errorNotice("Failed to delete: " + msg.err.Error())

			return nil
		}

		p.notice = successNotice("Order deleted")

		return p.loadCmd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return nil
}

func (p *ordersPage) handleKey(msg tea.KeyMsg) tea.Cmd {

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
			dialog := NewConfirmDialog("Delete order", fmt.Sprintf("Delete order #%d? This cannot be undone.", item.ID))
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

// Focus slots: customer, status (edit mode only), then two slots per
// item row (product, qty).
func (p *ordersPage) focusCount() int {
	count := 1
	if p.editing != nil {
		count++
	}

	return count + 2*len(p.items)
}

func (p *ordersPage) itemBase() int {
	if p.editing != nil {
		return 2
	}

	return 1
}

func (p *ordersPage) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.closeForm()

		return nil

	case "ctrl+s":
		if p.pager.submitting {
			return nil
		}

		p.pager.submitting = true

		return p.saveCmd()

	case "+":
		p.items = append(p.items, p.newItemRow(0, 1))

		return nil

	case "-":
		if idx, ok := p.focusedItem(); ok {
			p.items = append(p.items[:idx], p.items[idx+1:]...)

			if p.focus >= p.focusCount() {
				p.focus = p.focusCount() - 1
			}
		}

		return nil

	case "tab", "down":
		p.moveFocus(1)

		return nil

	case "shift+tab", "up":
		p.moveFocus(-1)

		return nil
	}

	// Customer selector: a selection change refreshes the open-order
	// count for the newly selected customer.
	if p.focus == 0 {
		switch msg.String() {
		case "left", "h":
			p.customer.Cycle(-1)

			return p.loadCountCmd(p.customer.Selected())
		case "right", "l":
			p.customer.Cycle(1)

			return p.loadCountCmd(p.customer.Selected())
		}

		return nil
	}

	if p.editing != nil && p.focus == 1 {
		switch msg.String() {
		case "left", "h":
			p.status.Cycle(-1)
		case "right", "l":
			p.status.Cycle(1)
		}

		return nil
	}

	if idx, ok := p.focusedItem(); ok {
		slot := (p.focus - p.itemBase()) % 2

		if slot == 0 {
			switch msg.String() {
			case "left", "h":
				p.items[idx].product.Cycle(-1)
			case "right", "l":
				p.items[idx].product.Cycle(1)
			}

			return nil
		}

		var cmd tea.Cmd
		p.items[idx].qty.input, cmd = p.items[idx].qty.input.Update(msg)

		return cmd
	}

	return nil
}

// focusedItem resolves the focus slot to an item row index.
func (p *ordersPage) focusedItem() (int, bool) {
	base := p.itemBase()
	if p.focus < base {
		return 0, false
	}

	idx := (p.focus - base) / 2
	if idx >= len(p.items) {
		return 0, false
	}

	return idx, true
}

func (p *ordersPage) moveFocus(delta int) {
	if idx, ok := p.focusedItem(); ok && (p.focus-p.itemBase())%2 == 1 {
		p.items[idx].qty.input.Blur()
	}

	count := p.focusCount()
	p.focus = (p.focus + delta + count) % count

	if idx, ok := p.focusedItem(); ok && (p.focus-p.itemBase())%2 == 1 {
		p.items[idx].qty.input.Focus()
	}
}

func (p *ordersPage) selected() *models.Order {
	idx := p.table.Cursor()
	if idx < 0 || idx >= len(p.rows) {
		return nil
	}

	return &p.rows[idx]
}

func (p *ordersPage) refreshTable() {
	rows := make([]table.Row, 0, len(p.rows))

	for _, order := range p.rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", order.ID),
			order.CustomerName,
			fmt.Sprintf("%.2f", order.Total),
			string(order.Status),
			order.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	p.table.SetRows(rows)
}

// formTotal mirrors the server's sum for display only; the server
// remains the authority on the stored total.
func (p *ordersPage) formTotal() float64 {
	total := 0.0

	for _, row := range p.items {
		productID := row.product.Selected()
		qty, _ := strconv.ParseInt(strings.TrimSpace(row.qty.input.Value()), 10, 64)

		for _, product := range p.products {
			if product.ID == productID {
				total += product.Price * float64(qty)

				break
			}
		}
	}

	return total
}

func (p *ordersPage) View() string {
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

func (p *ordersPage) formView() string {
	title := "New order"
	if p.editing != nil {
		title = fmt.Sprintf("Edit order #%d", p.editing.ID)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if p.editing != nil {
		b.WriteString(mutedStyle.Render("current status: ") + FormatStatus(string(p.editing.Status)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.customer.View(p.focus == 0))
	b.WriteString("\n")

	if p.count != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("open orders: %d · total: %d", p.count.Open, p.count.Total)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if p.editing != nil {
		b.WriteString(p.status.View(p.focus == 1))
		b.WriteString("\n\n")
	}

	if len(p.items) == 0 {
		b.WriteString(mutedStyle.Render("No items. Press + to add one."))
		b.WriteString("\n")
	}

	base := p.itemBase()

	for i, row := range p.items {
		b.WriteString(row.product.View(p.focus == base+2*i))
		b.WriteString("\n")
		b.WriteString(row.qty.View(p.focus == base+2*i+1))
		b.WriteString("\n\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("Total: %.2f", p.formTotal())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("ctrl+s", "save") + " • " + FormatKey("+/-", "add/remove item") + " • " + FormatKey("esc", "cancel") + " • " + FormatKey("tab", "next field")))

	return boxStyle.Render(b.String())
}

func (p *ordersPage) Notice() notice {
	return p.notice
}

func (p *ordersPage) FormOpen() bool {
	return p.formOpen || p.confirm != nil
}
