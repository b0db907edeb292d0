package tableview

const (
	// DefaultPageThreshold is the row count from which tables paginate.
	DefaultPageThreshold = 25
	// DefaultMobileNavigationColumns is the column count below which a table
	// uses the compact mobile navigation.
	DefaultMobileNavigationColumns = 3
)

// Paging is the pagination policy of a table.
type Paging struct {
	Threshold      int
	AlwaysPaginate bool
}

func DefaultPaging() Paging {
	return Paging{Threshold: DefaultPageThreshold}
}

// Enabled reports whether a table of rowCount rows shows pagination controls.
func (p Paging) Enabled(rowCount int) bool {
	return ShouldPaginate(rowCount, p.AlwaysPaginate, p.Threshold)
}

// ShouldPaginate is false only for tables with fewer than threshold rows and
// no explicit request to paginate.
func ShouldPaginate(rowCount int, alwaysPaginate bool, threshold int) bool {
	return alwaysPaginate || rowCount >= threshold
}

// MobileNavigation reports whether columnCount is below limit.
func MobileNavigation(columnCount, limit int) bool {
	return columnCount < limit
}
