package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 30
	// MaxLimit caps how many rows any listing query can request.
	MaxLimit = 100
)

// Params holds page/limit pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// NormalizePage coerces the page to at least 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Normalize returns params with page and limit coerced into range.
func Normalize(p Params) Params {
	return Params{
		Page:  NormalizePage(p.Page),
		Limit: NormalizeLimit(p.Limit),
	}
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	return (NormalizePage(p.Page) - 1) * NormalizeLimit(p.Limit)
}

// TotalPages computes the page count for a result set. It is never below 1,
// so a request past the end reports correct totals instead of erroring.
func TotalPages(totalItems int64, limit int) int {
	limit = NormalizeLimit(limit)
	pages := int((totalItems + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		return 1
	}
	return pages
}
