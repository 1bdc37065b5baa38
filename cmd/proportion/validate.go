package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/journal"
	"github.com/jask/proportion/internal/proportion"
	"github.com/jask/proportion/internal/store"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run the headless bank and table scenario",
		Long: `Run the bank and table scenario without a terminal:
deposit 100, withdraw 10, bankrupt, build the table for 温度 and 湿度, and
commit "25" into the 温度 row. Exits non-zero on any mismatch.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidation(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// runValidation executes the non-TUI validation path against an in-memory
// journal.
func runValidation(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	j, err := journal.Open(journal.MemoryPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	st := store.New(store.State{})
	st.Subscribe(j.StoreListener(ctx, nil))

	steps := []struct {
		action store.Action
		want   float64
	}{
		{store.Deposit{Amount: 100}, 100},
		{store.Withdraw{Amount: 10}, 90},
		{store.Bankrupt{}, 0},
	}
	for _, s := range steps {
		st.Dispatch(s.action)
		if got := st.Snapshot().Bank; got != s.want {
			return fmt.Errorf("%s: bank = %s, want %s", s.action, store.FormatAmount(got), store.FormatAmount(s.want))
		}
		fmt.Fprintf(out, "ok  %-12s bank=%s\n", s.action, store.FormatAmount(st.Snapshot().Bank))
	}

	st.Dispatch(store.SetTags{Tags: []string{"温度", "湿度"}})
	table := proportion.NewTable(proportion.DefaultFixedTitle, st.Snapshot().Tags)
	columns := table.Columns()
	if len(columns) != 3 || columns[0].Title != "因素" || columns[1].Title != "温度" || columns[2].Title != "湿度" {
		return fmt.Errorf("columns = %+v", columns)
	}
	if rows := table.Rows(); len(rows) != 2 || rows[0].Key != "温度" || rows[1].Key != "湿度" {
		return fmt.Errorf("rows = %+v", rows)
	}
	fmt.Fprintf(out, "ok  table      columns=%d rows=%d\n", len(columns), table.Len())

	field := proportion.IndexField(0)
	cell := core.NewEditableCell("温度", string(field), columns[1].Title, func(e core.CellEdit) {
		table.Commit(proportion.Row{Key: e.RowKey, Values: map[proportion.Field]string{proportion.Field(e.Field): e.Value}})
	})
	cell.Activate("")
	if cell.Confirm() {
		return fmt.Errorf("empty value was committed")
	}
	if cell.Err() != "温度 is required." {
		return fmt.Errorf("empty value error = %q", cell.Err())
	}
	cell.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("25")})
	if !cell.Confirm() {
		return fmt.Errorf("commit 25: %s", cell.Err())
	}

	rows := table.Rows()
	if got := rows[0].Value(field); got != "25" {
		return fmt.Errorf("温度 = %q, want 25", got)
	}
	if got := rows[1].Value(field); got != "" {
		return fmt.Errorf("湿度 changed to %q", got)
	}
	fmt.Fprintln(out, "ok  commit     温度=25")

	entries, err := j.Recent(ctx, 10)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	if len(entries) != 4 {
		return fmt.Errorf("journal entries = %d, want 4", len(entries))
	}
	fmt.Fprintln(out, "validation passed")
	return nil
}
