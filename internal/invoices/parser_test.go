package invoices

import (
	"errors"
	"testing"
	"time"
)

func TestParseFields(t *testing.T) {
	fields, err := ParseFields("Vendor: Acme\nAmount: 123.45\nDue Date: 2025-01-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if fields.Vendor != "Acme" {
		t.Fatalf("expected vendor Acme, got %q", fields.Vendor)
	}
	if fields.Amount != 123.45 {
		t.Fatalf("expected amount 123.45, got %v", fields.Amount)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !fields.DueDate.Equal(want) {
		t.Fatalf("expected due date %v, got %v", want, fields.DueDate)
	}
}

func TestParseFieldsLastOccurrenceWins(t *testing.T) {
	text := "Vendor: First Corp\nAmount: 10\nDue Date: 2025-01-01\nVendor: Second Corp"
	fields, err := ParseFields(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if fields.Vendor != "Second Corp" {
		t.Fatalf("expected last vendor to win, got %q", fields.Vendor)
	}
}

func TestParseFieldsMissingField(t *testing.T) {
	cases := map[string]string{
		"missing vendor":   "Amount: 10\nDue Date: 2025-01-01",
		"missing amount":   "Vendor: Acme\nDue Date: 2025-01-01",
		"missing due date": "Vendor: Acme\nAmount: 10",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseFields(text); !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParseFieldsInvalidValues(t *testing.T) {
	if _, err := ParseFields("Vendor: Acme\nAmount: twelve\nDue Date: 2025-01-01"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for non-numeric amount, got %v", err)
	}
	if _, err := ParseFields("Vendor: Acme\nAmount: 10\nDue Date: 01/01/2025"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for unexpected date layout, got %v", err)
	}
}
