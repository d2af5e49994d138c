package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trustrecon/trustrecon/internal/model"
)

// Header is the CSV header for payments.csv.
const Header = "payment_id,date,from,to,amount,status,note"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colID      = 0
	colDate    = 1
	colFrom    = 2
	colTo      = 3
	colAmount  = 4
	colStatus  = 5
	colNote    = 6
)

// ReadPayments reads all payments from a payments.csv reader.
func ReadPayments(r io.Reader) ([]model.Payment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payments CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var payments []model.Payment
	for i, rec := range records[1:] {
		p, err := UnmarshalPayment(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// WritePayments writes payments, including the header.
func WritePayments(w io.Writer, payments []model.Payment) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, p := range payments {
		if err := cw.Write(MarshalPayment(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalPayment converts a Payment to a CSV row.
func MarshalPayment(p model.Payment) []string {
	row := make([]string, numFields)
	row[colID] = p.ID
	if !p.Date.IsZero() {
		row[colDate] = p.Date.Format(dateFormat)
	}
	row[colFrom] = p.From
	row[colTo] = p.To
	row[colAmount] = p.Amount.StringFixed(2)
	row[colStatus] = string(p.Status)
	row[colNote] = p.Note
	return row
}

// UnmarshalPayment converts a CSV row to a Payment.
func UnmarshalPayment(record []string) (model.Payment, error) {
	if len(record) != numFields {
		return model.Payment{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var date time.Time
	if record[colDate] != "" {
		var err error
		date, err = time.Parse(dateFormat, record[colDate])
		if err != nil {
			return model.Payment{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Payment{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	p := model.Payment{
		ID:     record[colID],
		Date:   date,
		From:   record[colFrom],
		To:     record[colTo],
		Amount: amount,
		Status: model.PaymentStatus(record[colStatus]),
		Note:   record[colNote],
	}
	if err := Validate(p); err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

// Validate checks the fields every stored payment must carry.
func Validate(p model.Payment) error {
	switch {
	case p.From == "":
		return fmt.Errorf("payment %s: missing payer", p.ID)
	case p.To == "":
		return fmt.Errorf("payment %s: missing payee", p.ID)
	case p.From == p.To:
		return fmt.Errorf("payment %s: payer and payee are both %q", p.ID, p.From)
	case !p.Amount.IsPositive():
		return fmt.Errorf("payment %s: amount %s must be positive", p.ID, p.Amount)
	case p.Status == "":
		return fmt.Errorf("payment %s: missing status", p.ID)
	}
	return nil
}
