package store

import (
	"github.com/aussiebroadwan/salario/internal/salario/domain"
	"github.com/aussiebroadwan/salario/pkg/clientesdk"
)

func fromWire(c clientesdk.Cliente) domain.Cliente {
	return domain.Cliente{
		ID:          c.ID,
		Name:        c.Name,
		Salary:      c.Salary.Float64(),
		TenureYears: c.TenureYears.Float64(),
		Bonus:       c.Bonus.Float64(),
	}
}

func toRequest(in domain.ClienteInput) clientesdk.ClienteRequest {
	return clientesdk.ClienteRequest{
		Name:        in.Name,
		Salary:      in.Salary,
		TenureYears: in.TenureYears,
		Bonus:       in.Bonus,
	}
}
