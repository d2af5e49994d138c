// Package fees nets attorney fee obligations against recorded payments.
package fees

import (
	"github.com/trustrecon/trustrecon/internal/model"
	"github.com/trustrecon/trustrecon/internal/money"
	"github.com/trustrecon/trustrecon/internal/table"
)

// FeeColumns binds the fee table's logical fields to header names.
type FeeColumns struct {
	User     string `yaml:"user"`
	Attorney string `yaml:"attorney"`
	Fee      string `yaml:"fee"`
}

// DefaultFeeColumns returns the headers of the fee computation export.
func DefaultFeeColumns() FeeColumns {
	return FeeColumns{User: "User", Attorney: "Attorney", Fee: "Fee"}
}

func (c FeeColumns) bindings() []table.Binding {
	return []table.Binding{
		{Field: "user", Column: c.User},
		{Field: "attorney", Column: c.Attorney},
		{Field: "fee", Column: c.Fee},
	}
}

// Validate checks that every field is bound to a column present in t.
func (c FeeColumns) Validate(t *table.Table) error {
	_, err := t.Resolve(c.bindings()...)
	return err
}

// ReadFees extracts fee rows from t. Identities are compared verbatim later,
// so cells are not trimmed. Unparseable fees are kept as nil.
func ReadFees(t *table.Table, c FeeColumns) ([]model.FeeRow, error) {
	idx, err := t.Resolve(c.bindings()...)
	if err != nil {
		return nil, err
	}

	rows := make([]model.FeeRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, model.FeeRow{
			User:     table.Cell(r, idx[0]),
			Attorney: table.Cell(r, idx[1]),
			Fee:      money.ParseAmountPtr(table.Cell(r, idx[2])),
		})
	}
	return rows, nil
}
