package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/salario/internal/salario/app"
	"github.com/aussiebroadwan/salario/pkg/clientesdk"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one client record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd, app.ModeCommand)
		if err != nil {
			return err
		}
		defer application.Close()

		c, err := application.Client().GetClient(application.Context(cmd.Context()), args[0])
		if err != nil {
			if clientesdk.IsNotFound(err) {
				return fmt.Errorf("client %s not found", args[0])
			}
			return fmt.Errorf("failed to get client: %s", clientesdk.Detail(err))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:      %s\n", c.ID)
		fmt.Fprintf(out, "Name:    %s\n", c.Name)
		fmt.Fprintf(out, "Salary:  %.2f\n", c.Salary.Float64())
		fmt.Fprintf(out, "Tenure:  %g years\n", c.TenureYears.Float64())
		fmt.Fprintf(out, "Bonus:   %.2f\n", c.Bonus.Float64())
		return nil
	},
}
