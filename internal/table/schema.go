package table

import (
	"errors"
	"fmt"
	"strings"
)

// Binding maps a logical field to the header column chosen for it.
type Binding struct {
	Field  string
	Column string
}

// SchemaError reports a logical field that cannot be bound to a column.
type SchemaError struct {
	Field     string
	Column    string
	Available []string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("no column selected for %s", e.Field)
	}
	return fmt.Sprintf("column %q for %s not found (available: %s)", e.Column, e.Field, strings.Join(e.Available, ", "))
}

// Resolve returns the header index of every binding, in order. All unresolved
// bindings are reported together; no partial mapping is returned.
func (t *Table) Resolve(bindings ...Binding) ([]int, error) {
	idx := make([]int, len(bindings))
	var errs []error
	for i, b := range bindings {
		col := strings.TrimSpace(b.Column)
		j, ok := t.Index(col)
		if col == "" || !ok {
			errs = append(errs, &SchemaError{Field: b.Field, Column: col, Available: t.Header})
			continue
		}
		idx[i] = j
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return idx, nil
}
