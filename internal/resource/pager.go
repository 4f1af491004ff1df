package resource

import "github.com/pkordes/trip-planner/internal/domain"

// Pager is the pagination state of a Manager. Size zero means the collection
// is not paged: every row is fetched and there is a single page.
type Pager struct {
	Size    int
	Current int // 1-indexed
	Total   int64
}

// TotalPages returns ceil(Total/Size).
func (p Pager) TotalPages() int { return domain.TotalPages(p.Total, p.Size) }

// Clamp limits page to [1, max(TotalPages, 1)].
func (p Pager) Clamp(page int) int { return domain.ClampPage(page, p.TotalPages()) }

// HasNext reports whether a page follows the current one.
func (p Pager) HasNext() bool { return p.Current < p.TotalPages() }

// HasPrev reports whether a page precedes the current one.
func (p Pager) HasPrev() bool { return p.Current > 1 }
