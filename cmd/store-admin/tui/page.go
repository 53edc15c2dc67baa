package tui

import (
	"slices"

	"github.com/backoffice-labs/store-admin/internal/models"
)

// pager is the pagination state every list page shares. The page index
// is zero-based throughout, matching the API.
type pager struct {
	page       int
	size       int
	totalPages int
	loading    bool
	submitting bool
}

func newPager() pager {
	return pager{size: models.DefaultPageSize}
}

// next and prev clamp locally against the last known totalPages; the
// server is still the authority on what a page contains.
func (p *pager) next() bool {
	if p.totalPages > 0 && p.page >= p.totalPages-1 {
		return false
	}

	p.page++

	return true
}

func (p *pager) prev() bool {
	if p.page == 0 {
		return false
	}

	p.page--

	return true
}

// cycleSize steps through the allowed page sizes. The page index is
// deliberately kept: an out-of-range page comes back from the server
// as an empty content slice.
func (p *pager) cycleSize() {
	idx := slices.Index(models.PageSizes, p.size)
	p.size = models.PageSizes[(idx+1)%len(models.PageSizes)]
}
