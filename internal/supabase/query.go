package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Query accumulates one PostgREST request against a single table: the verb
// (select by default, insert, update or delete), filter predicates, column
// selection, ordering and limit. Filters use the backend's operator syntax
// (`col=eq.value`) and may address embedded resources (`waitlist.email`).
// A Query is not safe for concurrent use; build and execute it in one call
// chain.
type Query struct {
	client *Client
	table  string
	method string
	params url.Values
	header http.Header
	body   any
	single bool
}

// Select sets the column selection, including embedded-resource expressions
// such as "*,children(*)".
func (q *Query) Select(columns string) *Query {
	q.params["select"] = []string{columns}
	return q
}

// Eq adds an equality filter on the given column.
func (q *Query) Eq(column string, value any) *Query {
	return q.filter(column, "eq", value)
}

// Gte adds a greater-than-or-equal filter on the given column.
func (q *Query) Gte(column string, value any) *Query {
	return q.filter(column, "gte", value)
}

// Lte adds a less-than-or-equal filter on the given column.
func (q *Query) Lte(column string, value any) *Query {
	return q.filter(column, "lte", value)
}

// In restricts the column to the given set of values.
func (q *Query) In(column string, values []string) *Query {
	q.params[column] = append(q.params[column], "in.("+strings.Join(values, ",")+")")
	return q
}

// Order sorts the result by the given column. Pass ascending=false for
// descending order.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.params["order"] = append(q.params["order"], column+"."+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.params["limit"] = []string{fmt.Sprintf("%d", n)}
	return q
}

// Single requests exactly one row as a JSON object instead of an array.
// The backend answers with a not-found style error when zero or more than
// one row matches.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Insert turns the query into an insert of the given value (an object or a
// slice of objects). The inserted representation is returned by Execute.
func (q *Query) Insert(value any) *Query {
	q.method = http.MethodPost
	q.body = value
	q.header.Set("Prefer", "return=representation")
	return q
}

// Update turns the query into a partial update applying the given value to
// all rows matched by the filters.
func (q *Query) Update(value any) *Query {
	q.method = http.MethodPatch
	q.body = value
	q.header.Set("Prefer", "return=representation")
	return q
}

// Delete turns the query into a delete of all rows matched by the filters.
func (q *Query) Delete() *Query {
	q.method = http.MethodDelete
	q.body = nil
	return q
}

// Execute performs the accumulated request and decodes the response into
// dest when dest is non-nil.
func (q *Query) Execute(ctx context.Context, dest any) error {
	if q.single {
		q.header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	return q.client.do(ctx, q.method, restPrefix+"/"+q.table, q.params, q.header, q.body, dest)
}

func (q *Query) filter(column, op string, value any) *Query {
	q.params[column] = append(q.params[column], fmt.Sprintf("%s.%v", op, value))
	return q
}
