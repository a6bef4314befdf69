package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/query"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Table maps the logical fields of a listable resource to SQL.
type Table struct {
	From    string
	Columns []string
	// Fields maps logical field names, used by filters and sort columns, to SQL expressions.
	Fields map[string]string
	// Key is the logical field used to break ties between equal sort values.
	Key string
}

type Page struct {
	CountSQL  string
	CountArgs []any
	SQL       string
	Args      []any
}

func (t Table) expr(field string) (string, error) {
	expr, ok := t.Fields[field]
	if !ok {
		return "", fmt.Errorf("postgres: unknown field %q for %s", field, t.From)
	}

	return expr, nil
}

func (t Table) where(spec query.Spec) (sq.And, error) {
	var and sq.And

	for _, p := range spec.Predicates() {
		expr, err := t.expr(p.Field)
		if err != nil {
			return nil, err
		}

		switch p.Op {
		case query.OpContains:
			and = append(and, sq.ILike{expr: "%" + likeEscaper.Replace(fmt.Sprint(p.Value)) + "%"})
		default:
			and = append(and, sq.Eq{expr: p.Value})
		}
	}

	return and, nil
}

// SelectPage renders the count and page statements: filters, then ordering, then offset and limit.
func (t Table) SelectPage(spec query.Spec, p gdto.Paging) (Page, error) {
	where, err := t.where(spec)
	if err != nil {
		return Page{}, err
	}

	sortExpr, err := t.expr(p.SortColumn)
	if err != nil {
		return Page{}, err
	}

	order := []string{sortExpr + " " + p.SortOrder}

	if t.Key != "" && t.Key != p.SortColumn {
		keyExpr, err := t.expr(t.Key)
		if err != nil {
			return Page{}, err
		}

		order = append(order, keyExpr+" "+gdto.SortAsc)
	}

	count := psql.Select("COUNT(*)").From(t.From)
	page := psql.Select(t.Columns...).From(t.From).
		OrderBy(order...).
		Limit(uint64(p.PageSize)).
		Offset(uint64(p.Offset()))

	if len(where) > 0 {
		count = count.Where(where)
		page = page.Where(where)
	}

	var out Page

	if out.CountSQL, out.CountArgs, err = count.ToSql(); err != nil {
		return Page{}, fmt.Errorf("postgres: build count query: %w", err)
	}

	if out.SQL, out.Args, err = page.ToSql(); err != nil {
		return Page{}, fmt.Errorf("postgres: build page query: %w", err)
	}

	return out, nil
}

// ListPage counts the filtered rows and loads the requested page into T by column position.
func ListPage[T any](ctx context.Context, db Conn, t Table, spec query.Spec, p gdto.Paging) ([]T, int64, error) {
	stmt, err := t.SelectPage(spec, p)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.QueryRow(ctx, stmt.CountSQL, stmt.CountArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if total == 0 || pastEnd(p, total) {
		return []T{}, total, nil
	}

	rows, err := db.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, 0, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[T])
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// pastEnd reports whether the page starts after the last row, without multiplying page by size.
func pastEnd(p gdto.Paging, total int64) bool {
	if p.PageSize <= 0 {
		return true
	}

	size := int64(p.PageSize)
	pages := (total-1)/size + 1

	return int64(p.Page-1) >= pages
}
