package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/salario/internal/salario/bonus"
)

var bonusCmd = &cobra.Command{
	Use:   "bonus <salary> <tenure-years>",
	Short: "Calculate a bonus without contacting the service",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		salary := bonus.ParseAmount(args[0])
		tenure := bonus.ParseAmount(args[1])

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tenure component:  %.2f\n", bonus.TenureComponent(salary, tenure))
		fmt.Fprintf(out, "Salary component:  %.2f\n", bonus.SalaryComponent(salary))
		fmt.Fprintf(out, "Bonus:             %.2f\n", bonus.Calculate(salary, tenure))
		return nil
	},
}
