package repository

import (
	"fmt"
	"strings"
)

// Clause is a single optional filter condition. A zero Clause carries no
// constraint and disappears from the rendered query, so blank tokens
// reduce the whole filter to "match all".
//
// The expr is a fmt template whose %[n]d verbs are substituted with the
// final placeholder positions at render time, which keeps clauses
// composable in any order.
type Clause struct {
	expr string
	args []interface{}
}

func (c Clause) empty() bool {
	return c.expr == ""
}

// HasAuthorName matches books whose author's first OR last name contains
// the token, case-insensitively. Blank token -> no constraint.
func HasAuthorName(token string) Clause {
	token = strings.TrimSpace(token)
	if token == "" {
		return Clause{}
	}
	return Clause{
		expr: "(a.first_name ILIKE $%[1]d OR a.last_name ILIKE $%[1]d)",
		args: []interface{}{"%" + escapeWildcards(token) + "%"},
	}
}

// HasGenre matches books by exact genre, case-insensitively.
// Blank token -> no constraint.
func HasGenre(token string) Clause {
	token = strings.TrimSpace(token)
	if token == "" {
		return Clause{}
	}
	return Clause{
		expr: "LOWER(b.genre) = LOWER($%[1]d)",
		args: []interface{}{token},
	}
}

// Filter composes clauses with logical AND.
type Filter struct {
	clauses []Clause
}

func NewFilter(clauses ...Clause) Filter {
	return Filter{clauses: clauses}
}

// And returns a new filter with the clause appended.
func (f Filter) And(c Clause) Filter {
	return Filter{clauses: append(append([]Clause{}, f.clauses...), c)}
}

// Render produces the WHERE fragment (including the leading " WHERE ")
// and its arguments. An unconstrained filter renders to the empty string.
// The startArg offset accounts for placeholders already used by the
// surrounding query.
func (f Filter) Render(startArg int) (string, []interface{}) {
	var conds []string
	var args []interface{}

	for _, c := range f.clauses {
		if c.empty() {
			continue
		}
		positions := make([]interface{}, len(c.args))
		for i := range c.args {
			positions[i] = startArg + len(args) + i
		}
		conds = append(conds, fmt.Sprintf(c.expr, positions...))
		args = append(args, c.args...)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeWildcards prevents user input from injecting ILIKE wildcards.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\") // Escape backslash first
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
