// Package postgres implements the table-query contract directly against
// a PostgreSQL database, for deployments that bypass the REST gateway.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/fortuna/gridiron/internal/metrics"
	"github.com/fortuna/gridiron/internal/store"
)

// identRe restricts table and column names to plain identifiers so they
// can be interpolated into SQL safely. Values always go through
// placeholders.
var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Querier runs table queries against a live database connection pool.
type Querier struct {
	db *sql.DB
}

// Open connects to the database and verifies the connection.
func Open(dsn string) (*Querier, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Querier{db: db}, nil
}

func (q *Querier) Close() error {
	return q.db.Close()
}

// Select translates the filter expressions into a parameterized SQL
// statement and scans the result into generic rows.
func (q *Querier) Select(ctx context.Context, table string, p store.SelectParams) ([]store.Row, error) {
	query, args, err := buildSelect(table, p)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := q.db.QueryContext(ctx, query, args...)
	q.observe(table, start, err)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading %s columns: %w", table, err)
	}

	var out []store.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		row := make(store.Row, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[c] = string(b)
			} else {
				row[c] = vals[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}
	return out, nil
}

// Count returns the total number of rows in a table.
func (q *Querier) Count(ctx context.Context, table string) (int, error) {
	if !identRe.MatchString(table) {
		return 0, fmt.Errorf("invalid table name %q", table)
	}

	start := time.Now()
	var n int
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	q.observe(table, start, err)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

func (q *Querier) observe(table string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.StoreQueriesTotal.WithLabelValues(table, status).Inc()
	metrics.StoreQueryLatency.WithLabelValues(table).Observe(time.Since(start).Seconds())
}

// buildSelect renders one SELECT statement from the portable query
// params. Filter keys are processed in sorted order so the generated SQL
// is deterministic.
func buildSelect(table string, p store.SelectParams) (string, []any, error) {
	if !identRe.MatchString(table) {
		return "", nil, fmt.Errorf("invalid table name %q", table)
	}

	cols := "*"
	if p.Columns != "" {
		parts := strings.Split(p.Columns, ",")
		for _, c := range parts {
			if !identRe.MatchString(strings.TrimSpace(c)) {
				return "", nil, fmt.Errorf("invalid column %q", c)
			}
		}
		cols = p.Columns
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", cols, table)

	keys := make([]string, 0, len(p.Filters))
	for k := range p.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var args []any
	var conds []string
	for _, col := range keys {
		if !identRe.MatchString(col) {
			return "", nil, fmt.Errorf("invalid filter column %q", col)
		}
		cond, condArgs, err := filterCondition(col, p.Filters[col], len(args))
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, cond)
		args = append(args, condArgs...)
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	if p.Order != "" {
		clause, err := orderClause(p.Order)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(clause)
	}

	if p.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", p.Limit)
	}

	return sb.String(), args, nil
}

// filterCondition converts one PostgREST-style expression into a SQL
// condition. Only eq and in are used by the read paths.
func filterCondition(col, expr string, argOffset int) (string, []any, error) {
	switch {
	case strings.HasPrefix(expr, "eq."):
		val := typedLiteral(strings.TrimPrefix(expr, "eq."))
		return fmt.Sprintf("%s = $%d", col, argOffset+1), []any{val}, nil

	case strings.HasPrefix(expr, "in.(") && strings.HasSuffix(expr, ")"):
		inner := expr[len("in.(") : len(expr)-1]
		if strings.TrimSpace(inner) == "" {
			return "FALSE", nil, nil
		}
		parts := strings.Split(inner, ",")
		placeholders := make([]string, len(parts))
		args := make([]any, len(parts))
		for i, part := range parts {
			placeholders[i] = fmt.Sprintf("$%d", argOffset+i+1)
			args[i] = typedLiteral(strings.TrimSpace(part))
		}
		return fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ", ")), args, nil

	default:
		return "", nil, fmt.Errorf("unsupported filter %q for column %s", expr, col)
	}
}

// typedLiteral picks a Go type for the filter value so pq binds the
// right Postgres type.
func typedLiteral(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}

// orderClause translates "col.desc,col2.asc" into a SQL ORDER BY body.
func orderClause(order string) (string, error) {
	var parts []string
	for _, term := range strings.Split(order, ",") {
		col, dir, found := strings.Cut(strings.TrimSpace(term), ".")
		if !identRe.MatchString(col) {
			return "", fmt.Errorf("invalid order column %q", col)
		}
		sqlDir := "ASC"
		if found {
			switch dir {
			case "asc":
			case "desc":
				sqlDir = "DESC"
			default:
				return "", fmt.Errorf("invalid order direction %q", dir)
			}
		}
		parts = append(parts, col+" "+sqlDir)
	}
	return strings.Join(parts, ", "), nil
}
