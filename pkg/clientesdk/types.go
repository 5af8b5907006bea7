package clientesdk

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Cliente is a client record as the service returns it.
type Cliente struct {
	ID          string `json:"_id"`
	Name        string `json:"nombre"`
	Salary      Amount `json:"sueldo"`
	TenureYears Amount `json:"antiguedad"`
	Bonus       Amount `json:"bono"`
}

// ClienteRequest is the body of create and update calls.
type ClienteRequest struct {
	Name        string  `json:"nombre"`
	Salary      float64 `json:"sueldo"`
	TenureYears float64 `json:"antiguedad"`
	Bonus       float64 `json:"bono"`
}

// ErrorResponse is the error body the service sends with non-2xx responses.
// Some deployments use "message" instead of "error".
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Amount is a number that also decodes from a numeric string or null. Values
// that cannot be parsed decode to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Float64() float64 { return float64(a) }
