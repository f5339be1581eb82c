// Package storetest provides an in-memory Querier for exercising the
// read pipelines without a live backend.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fortuna/gridiron/internal/store"
)

// Call records one Select invocation for assertions on query shape.
type Call struct {
	Table  string
	Params store.SelectParams
}

// Fake is a Querier backed by fixture rows. It honors the eq and in
// filter expressions, multi-key ordering and limits the same way the
// real backends do.
type Fake struct {
	Tables map[string][]store.Row

	// Err, when set, fails every call.
	Err error

	Calls []Call
}

func New() *Fake {
	return &Fake{Tables: make(map[string][]store.Row)}
}

// Add appends fixture rows to a table.
func (f *Fake) Add(table string, rows ...store.Row) {
	f.Tables[table] = append(f.Tables[table], rows...)
}

func (f *Fake) Select(_ context.Context, table string, p store.SelectParams) ([]store.Row, error) {
	f.Calls = append(f.Calls, Call{Table: table, Params: p})
	if f.Err != nil {
		return nil, f.Err
	}

	var out []store.Row
	for _, row := range f.Tables[table] {
		keep := true
		for col, expr := range p.Filters {
			ok, err := matches(row[col], expr)
			if err != nil {
				return nil, err
			}
			if !ok {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}

	if p.Order != "" {
		if err := orderRows(out, p.Order); err != nil {
			return nil, err
		}
	}
	if p.Limit > 0 && len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out, nil
}

func (f *Fake) Count(_ context.Context, table string) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return len(f.Tables[table]), nil
}

// SelectsFor returns how many Select calls hit the given table.
func (f *Fake) SelectsFor(table string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Table == table {
			n++
		}
	}
	return n
}

func matches(val any, expr string) (bool, error) {
	switch {
	case strings.HasPrefix(expr, "eq."):
		return equalValue(val, strings.TrimPrefix(expr, "eq.")), nil
	case strings.HasPrefix(expr, "in.(") && strings.HasSuffix(expr, ")"):
		inner := expr[len("in.(") : len(expr)-1]
		if strings.TrimSpace(inner) == "" {
			return false, nil
		}
		for _, part := range strings.Split(inner, ",") {
			if equalValue(val, strings.TrimSpace(part)) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("storetest: unsupported filter %q", expr)
	}
}

// equalValue compares a row value against a filter literal, numerically
// when both sides parse as ints.
func equalValue(val any, lit string) bool {
	if v, ok := store.ToInt(val); ok {
		if l, ok := store.ToInt(lit); ok {
			return v == l
		}
	}
	if b, ok := val.(bool); ok {
		return (b && lit == "true") || (!b && lit == "false")
	}
	return fmt.Sprint(val) == lit
}

func orderRows(rows []store.Row, order string) error {
	type key struct {
		col  string
		desc bool
	}
	var keys []key
	for _, term := range strings.Split(order, ",") {
		col, dir, _ := strings.Cut(strings.TrimSpace(term), ".")
		switch dir {
		case "", "asc":
			keys = append(keys, key{col: col})
		case "desc":
			keys = append(keys, key{col: col, desc: true})
		default:
			return fmt.Errorf("storetest: invalid order %q", order)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			c := compareValues(rows[i][k.col], rows[j][k.col])
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return nil
}

func compareValues(a, b any) int {
	av, aok := store.ToFloat(a)
	bv, bok := store.ToFloat(b)
	if aok && bok {
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
