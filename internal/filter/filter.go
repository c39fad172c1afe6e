// Package filter builds typed predicate expressions for record queries.
// Clauses are immutable values combined with explicit And/Or combinators and
// rendered to a parenthesized SQL condition with bound arguments, so a
// composed predicate can be inspected and tested without touching a database.
package filter

import "strings"

// Expr is a predicate over stored records.
type Expr interface {
	// SQL renders the predicate as a SQL condition with placeholder
	// arguments. An empty string means "match everything".
	SQL() (string, []interface{})
}

type cond struct {
	column string
	op     string
	value  interface{}
}

func (c cond) SQL() (string, []interface{}) {
	return c.column + " " + c.op + " ?", []interface{}{c.value}
}

// Eq matches rows where column equals value.
func Eq(column string, value interface{}) Expr {
	return cond{column: column, op: "=", value: value}
}

// Gte matches rows where column is greater than or equal to value.
// NULL columns never match, which is what the end-date clauses rely on.
func Gte(column string, value interface{}) Expr {
	return cond{column: column, op: ">=", value: value}
}

// Lte matches rows where column is less than or equal to value.
func Lte(column string, value interface{}) Expr {
	return cond{column: column, op: "<=", value: value}
}

type group struct {
	op    string
	exprs []Expr
}

func (g group) SQL() (string, []interface{}) {
	var parts []string
	var args []interface{}
	for _, e := range g.exprs {
		sql, a := e.SQL()
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, a...)
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], args
	default:
		return "(" + strings.Join(parts, " "+g.op+" ") + ")", args
	}
}

// And combines expressions so that all must match. Nil expressions are
// skipped; an empty conjunction matches everything.
func And(exprs ...Expr) Expr {
	return group{op: "AND", exprs: compact(exprs)}
}

// Or combines expressions so that any may match.
func Or(exprs ...Expr) Expr {
	return group{op: "OR", exprs: compact(exprs)}
}

func compact(exprs []Expr) []Expr {
	out := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
