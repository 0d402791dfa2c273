package schemas

// Cursor carries the pagination links returned by list endpoints. Next and
// Prev are null on the first and last page respectively.
type Cursor struct {
	Current string  `json:"current" validate:"required"`
	Next    *string `json:"next"`
	Prev    *string `json:"prev"`
}

// DataLink is a per-record HATEOAS entry pointing at a related operation.
type DataLink struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

// Response is the envelope every Dentalink endpoint answers with. Links is
// only present on list endpoints.
type Response[T any] struct {
	Links *Cursor `json:"links,omitempty"`
	Data  T       `json:"data"`
}
