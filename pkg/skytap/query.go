package skytap

import (
	"net/url"
	"strconv"
)

// ListOptions carries the query parameters accepted by Skytap list
// endpoints. Count bounds the number of records returned and Offset skips
// records from the start of the collection. Zero values are omitted from
// the request, leaving the API defaults in effect.
type ListOptions struct {
	Count  int
	Offset int
}

// NewListOptions creates an empty ListOptions.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithCount sets the maximum number of records to return.
func (o *ListOptions) WithCount(count int) *ListOptions {
	o.Count = count

	return o
}

// WithOffset sets the number of records to skip.
func (o *ListOptions) WithOffset(offset int) *ListOptions {
	o.Offset = offset

	return o
}

// ToValues converts the options to url.Values for the query string.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o.Count > 0 {
		values.Set("count", strconv.Itoa(o.Count))
	}

	if o.Offset > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}

	return values
}
