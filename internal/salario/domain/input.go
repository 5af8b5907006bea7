package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// ClienteInput is the payload for create and update.
type ClienteInput struct {
	Name        string  `validate:"required"`
	Salary      float64 `validate:"gte=0"`
	TenureYears float64 `validate:"gte=0"`
	Bonus       float64
}

// Validate checks the input before it is sent. The returned error lists every
// failing field in a form fit for a status line.
func (in ClienteInput) Validate() error {
	validateOnce.Do(func() { validate = validator.New() })

	in.Name = strings.TrimSpace(in.Name)
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name is required"
	case "Salary":
		return "salary must not be negative"
	case "TenureYears":
		return "tenure must not be negative"
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
