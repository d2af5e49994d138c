package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trustrecon/trustrecon/internal/id"
	"github.com/trustrecon/trustrecon/internal/model"
)

// Loader is the payment history store. The engine only reads from it.
type Loader interface {
	LoadPayments(ctx context.Context) ([]model.Payment, error)
}

// FileStore keeps payment history in a payments.csv file.
type FileStore struct {
	path string
}

// NewFileStore returns a store over the CSV file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// LoadPayments returns every stored payment in file order. A missing file
// holds no payments.
func (s *FileStore) LoadPayments(ctx context.Context) ([]model.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening payments: %w", err)
	}
	defer f.Close()

	payments, err := ReadPayments(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(s.path), err)
	}
	return payments, nil
}

// Init creates an empty payments file with a header, unless one exists.
func (s *FileStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating payments dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing payments header: %w", err)
	}
	return nil
}

// Record validates p, assigns an ID when it has none, and appends it to the
// file. It returns the stored payment.
func (s *FileStore) Record(ctx context.Context, p model.Payment) (model.Payment, error) {
	existing, err := s.LoadPayments(ctx)
	if err != nil {
		return model.Payment{}, err
	}

	if p.ID == "" {
		p.ID = id.NewPaymentID()
	} else if _, err := id.ParsePaymentID(p.ID); err != nil {
		return model.Payment{}, err
	}
	for _, e := range existing {
		if e.ID == p.ID {
			return model.Payment{}, fmt.Errorf("payment %s already recorded", p.ID)
		}
	}
	if err := Validate(p); err != nil {
		return model.Payment{}, err
	}

	if err := s.Init(); err != nil {
		return model.Payment{}, err
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return model.Payment{}, fmt.Errorf("opening payments: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(MarshalPayment(p)); err != nil {
		return model.Payment{}, fmt.Errorf("writing payment: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return model.Payment{}, fmt.Errorf("writing payment: %w", err)
	}
	return p, nil
}

// ParseStatus matches s case-insensitively against the known statuses.
// Unknown values are kept verbatim.
func ParseStatus(s string) model.PaymentStatus {
	s = strings.TrimSpace(s)
	for _, st := range []model.PaymentStatus{model.PaymentPending, model.PaymentCompleted, model.PaymentCancelled} {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return model.PaymentStatus(s)
}
