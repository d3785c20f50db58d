package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDraftValidate(t *testing.T) {
	valid := Draft{
		Amount:      decimal.NewFromFloat(12.50),
		Category:    CategoryFood,
		Description: "Lunch",
		Date:        NewDate(2024, time.January, 15),
	}

	tests := []struct {
		mutate     func(*Draft)
		name       string
		wantFields []string
	}{
		{
			name:   "valid draft",
			mutate: func(*Draft) {},
		},
		{
			name:       "zero amount",
			mutate:     func(d *Draft) { d.Amount = decimal.Zero },
			wantFields: []string{"amount"},
		},
		{
			name:       "negative amount",
			mutate:     func(d *Draft) { d.Amount = decimal.NewFromInt(-5) },
			wantFields: []string{"amount"},
		},
		{
			name:       "missing category",
			mutate:     func(d *Draft) { d.Category = CategoryNone },
			wantFields: []string{"category"},
		},
		{
			name:       "unknown category",
			mutate:     func(d *Draft) { d.Category = Category("Groceries") },
			wantFields: []string{"category"},
		},
		{
			name:       "blank description",
			mutate:     func(d *Draft) { d.Description = "   " },
			wantFields: []string{"description"},
		},
		{
			name:       "missing date",
			mutate:     func(d *Draft) { d.Date = Date{} },
			wantFields: []string{"date"},
		},
		{
			name: "everything wrong",
			mutate: func(d *Draft) {
				d.Amount = decimal.Zero
				d.Category = CategoryNone
				d.Description = ""
				d.Date = Date{}
			},
			wantFields: []string{"amount", "category", "description", "date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			errs := draft.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() = %v, want %d field errors", errs, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("Validate()[%d].Field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestExpenseValidateRequiresID(t *testing.T) {
	e := Expense{
		Amount:      decimal.NewFromInt(10),
		Category:    CategoryBills,
		Description: "Electric",
		Date:        NewDate(2024, time.March, 1),
		CreatedAt:   time.Now(),
	}
	if err := e.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for missing id")
	}

	e.ID = "abc-123"
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Fatalf("ParseCategory(%q) error = %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}
	}

	if _, err := ParseCategory("food"); err == nil {
		t.Error("ParseCategory is case-sensitive; lowercase should be rejected")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("ParseCategory should reject the empty string")
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got := d.String(); got != "2024-02-29" {
		t.Errorf("String() = %q, want 2024-02-29", got)
	}

	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON(%s) error = %v", data, err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if _, err := ParseDate("02/29/2024"); err == nil {
		t.Error("ParseDate should reject non-ISO layouts")
	}
}
