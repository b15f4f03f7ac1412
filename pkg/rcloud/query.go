package rcloud

import (
	"net/url"
	"strconv"
)

// QueryParams represents query parameters for list endpoints. The API pages
// with offset/limit; a handful of endpoints accept extra filters which go in
// Extra.
type QueryParams struct {
	Offset int
	Limit  int
	Extra  map[string]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Extra: make(map[string]string),
	}
}

// WithOffset sets the zero-based item offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithLimit sets the maximum number of items to return.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithParam sets an arbitrary query parameter.
func (q *QueryParams) WithParam(key, value string) *QueryParams {
	if q.Extra == nil {
		q.Extra = make(map[string]string)
	}

	q.Extra[key] = value

	return q
}

// ToValues converts the QueryParams to url.Values, omitting zero values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	for key, value := range q.Extra {
		if value != "" {
			values.Set(key, value)
		}
	}

	return values
}
