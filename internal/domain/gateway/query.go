package gateway

// Metadata attributes understood by every adapter.
const (
	AttrID        = "$id"
	AttrCreatedAt = "$createdAt"
	AttrUpdatedAt = "$updatedAt"
)

// Operator is a filter comparison.
type Operator string

// OpEqual matches documents whose attribute equals any of the values.
const OpEqual Operator = "equal"

// Filter restricts a listing.
type Filter struct {
	Attribute string
	Operator  Operator
	Values    []any
}

// Order sorts a listing.
type Order struct {
	Attribute  string
	Descending bool
}

// Query is the filters, sort order and page bounds of a listing.
type Query struct {
	Filters []Filter
	Orders  []Order
	Limit   int // 0 means the backend default.
	Offset  int
}

// Equal builds an equality filter.
func Equal(attribute string, values ...any) Filter {
	return Filter{Attribute: attribute, Operator: OpEqual, Values: values}
}

// OrderDesc sorts by attribute, newest or largest first.
func OrderDesc(attribute string) Order {
	return Order{Attribute: attribute, Descending: true}
}

// OrderAsc sorts by attribute ascending.
func OrderAsc(attribute string) Order {
	return Order{Attribute: attribute}
}
