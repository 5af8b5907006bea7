package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/salario/internal/salario/app"
	"github.com/aussiebroadwan/salario/internal/salario/domain"
	"github.com/aussiebroadwan/salario/internal/salario/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every client record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd, app.ModeCommand)
		if err != nil {
			return err
		}
		defer application.Close()

		s := application.Store()
		s.LoadAll(application.Context(cmd.Context()))

		snap := s.Snapshot()
		if snap.Status.Kind == store.StatusError {
			return errors.New(snap.Status.Message)
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderClientes(snap.Clientes))
		return nil
	},
}

func renderClientes(clientes []domain.Cliente) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "SALARY", "TENURE", "BONUS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, c := range clientes {
		t.Row(
			c.ID,
			c.Name,
			strconv.FormatFloat(c.Salary, 'f', 2, 64),
			strconv.FormatFloat(c.TenureYears, 'f', -1, 64),
			strconv.FormatFloat(c.Bonus, 'f', 2, 64),
		)
	}
	return t.Render()
}
