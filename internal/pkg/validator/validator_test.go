package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "2000-12-31"}
	invalid := []string{"2024-13-01", "2024-02-30", "01-01-2024", "2024/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidKRAPIN(t *testing.T) {
	valid := []string{"A001234567B", "A999999999Z"}
	invalid := []string{"B001234567B", "A00123456B", "A0012345678", "a001234567b", ""}
	for _, pin := range valid {
		if !IsValidKRAPIN(pin) {
			t.Errorf("IsValidKRAPIN(%q) = false, want true", pin)
		}
	}
	for _, pin := range invalid {
		if IsValidKRAPIN(pin) {
			t.Errorf("IsValidKRAPIN(%q) = true, want false", pin)
		}
	}
}

func TestIsValidNationalID(t *testing.T) {
	valid := []string{"12345678", "00000001"}
	invalid := []string{"1234567", "123456789", "1234567a", ""}
	for _, id := range valid {
		if !IsValidNationalID(id) {
			t.Errorf("IsValidNationalID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidNationalID(id) {
			t.Errorf("IsValidNationalID(%q) = true, want false", id)
		}
	}
}

func TestIsValidPercent(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"2.75", true},
		{"100", true},
		{"-0.01", false},
		{"100.01", false},
	}
	for _, c := range cases {
		p, err := decimal.NewFromString(c.input)
		if err != nil {
			t.Fatalf("bad decimal literal %q: %v", c.input, err)
		}
		if got := IsValidPercent(p); got != c.want {
			t.Errorf("IsValidPercent(%s) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"MONTHLY", "WEEKLY", "DAILY"}
	if !IsInSlice("WEEKLY", slice) {
		t.Error("IsInSlice(WEEKLY) = false, want true")
	}
	if IsInSlice("HOURLY", slice) {
		t.Error("IsInSlice(HOURLY) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if !errs.IsEmpty() {
		t.Error("zero-value ValidationErrors should be empty")
	}

	errs = append(errs,
		ValidationError{Field: "basic_salary", Message: "must be positive"},
		ValidationError{Field: "kra_pin", Message: "invalid format"},
	)
	if errs.IsEmpty() {
		t.Error("non-empty ValidationErrors reported empty")
	}
	if errs.Error() != "basic_salary: must be positive; kra_pin: invalid format" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}
	m := errs.ToMap()
	if m["kra_pin"] != "invalid format" {
		t.Errorf("ToMap missing field, got %v", m)
	}
}
