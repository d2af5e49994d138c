package trust

import "github.com/trustrecon/trustrecon/internal/table"

// Standard column names, as exported by the practice-management trust listing report.
const (
	ColClient   = "Client"
	ColAccount  = "Account"
	ColBalance  = "Client Balance"
	ColDate     = "Last Activity Date"
	ColDaysIdle = "Days Since Last Activity"
)

// ColumnMapping binds the four logical listing fields to header names.
type ColumnMapping struct {
	Client  string `yaml:"client"`
	Account string `yaml:"account"`
	Balance string `yaml:"balance"`
	Date    string `yaml:"last_activity_date"`
}

// DefaultColumnMapping returns the mapping for an unmodified export.
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{Client: ColClient, Account: ColAccount, Balance: ColBalance, Date: ColDate}
}

func (m ColumnMapping) bindings() []table.Binding {
	return []table.Binding{
		{Field: "client", Column: m.Client},
		{Field: "account", Column: m.Account},
		{Field: "balance", Column: m.Balance},
		{Field: "last activity date", Column: m.Date},
	}
}

// Validate checks that every field is bound to a column present in t.
func (m ColumnMapping) Validate(t *table.Table) error {
	_, err := t.Resolve(m.bindings()...)
	return err
}
