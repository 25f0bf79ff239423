package repository

import (
	"fmt"
	"strings"
)

// where accumulates AND-ed conditions with positional arguments
type where struct {
	conds []string
	args  []any
}

// add appends a condition; %d in cond is replaced by the argument position
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

// next returns the placeholder for one more argument
func (w *where) next(arg any) string {
	w.args = append(w.args, arg)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
