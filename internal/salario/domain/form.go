package domain

import (
	"strconv"
	"strings"

	"github.com/aussiebroadwan/salario/internal/salario/bonus"
)

type FormMode int

const (
	FormCreating FormMode = iota
	FormEditing
)

func (m FormMode) String() string {
	if m == FormEditing {
		return "editing"
	}
	return "creating"
}

// Field names a user-editable form field. Bonus is derived and has no Field.
type Field string

const (
	FieldName   Field = "name"
	FieldSalary Field = "salary"
	FieldTenure Field = "tenure"
)

// FormState is the draft of at most one record. Numeric fields are kept as the
// raw text the user typed; coercion happens in Input.
type FormState struct {
	Mode     FormMode
	TargetID string // set only in FormEditing

	Name   string
	Salary string
	Tenure string
	Bonus  float64
}

// EmptyForm returns a blank form in creating mode.
func EmptyForm() FormState {
	return FormState{Mode: FormCreating}
}

// EditForm populates a form from an existing record. The record's bonus is
// copied as-is; it is recomputed only when salary or tenure change.
func EditForm(c Cliente) FormState {
	return FormState{
		Mode:     FormEditing,
		TargetID: c.ID,
		Name:     c.Name,
		Salary:   formatAmount(c.Salary),
		Tenure:   formatAmount(c.TenureYears),
		Bonus:    c.Bonus,
	}
}

// Set updates a field and recomputes the bonus when salary or tenure change.
// Unknown fields are ignored.
func (f FormState) Set(field Field, raw string) FormState {
	switch field {
	case FieldName:
		f.Name = raw
	case FieldSalary:
		f.Salary = raw
		f.Bonus = bonus.FromInput(f.Salary, f.Tenure)
	case FieldTenure:
		f.Tenure = raw
		f.Bonus = bonus.FromInput(f.Salary, f.Tenure)
	}
	return f
}

// Get returns the raw text of a field.
func (f FormState) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldSalary:
		return f.Salary
	case FieldTenure:
		return f.Tenure
	}
	return ""
}

// Input coerces the form into a request payload. The name is trimmed.
func (f FormState) Input() ClienteInput {
	return ClienteInput{
		Name:        strings.TrimSpace(f.Name),
		Salary:      bonus.ParseAmount(f.Salary),
		TenureYears: bonus.ParseAmount(f.Tenure),
		Bonus:       f.Bonus,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
