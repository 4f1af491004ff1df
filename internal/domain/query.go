package domain

// Query is the generic record store query: equality filters, a single
// ascending or descending order column, and an optional range slice.
// Column names are validated by the store against the entity's schema.
type Query struct {
	// Eq holds column = value filters, ANDed together.
	Eq map[string]any
	// OrderBy is the column to order by. Empty means the entity's natural key.
	OrderBy string
	// Desc flips the order to descending.
	Desc bool
	// Offset is the zero-based index of the first row to return.
	Offset int
	// Limit caps the number of returned rows. Zero means no limit.
	Limit int
}

// ForPage returns a copy of q sliced to the given 1-indexed page of size rows.
// A non-positive size leaves the query unbounded.
func (q Query) ForPage(page, size int) Query {
	if size <= 0 {
		q.Offset, q.Limit = 0, 0
		return q
	}
	if page < 1 {
		page = 1
	}
	q.Offset = (page - 1) * size
	q.Limit = size
	return q
}

// ByTrip returns a Query filtered on trip_id.
func ByTrip(tripID any) Query {
	return Query{Eq: map[string]any{"trip_id": tripID}}
}
