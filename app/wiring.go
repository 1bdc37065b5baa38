package app

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/config"
	"github.com/jask/proportion/internal/journal"
	"github.com/jask/proportion/internal/logging"
	"github.com/jask/proportion/internal/store"
	"github.com/jask/proportion/screens"
)

// Deps are the services the panes share. Journal may be nil.
type Deps struct {
	Ctx     context.Context
	Store   *store.Store
	Journal *journal.Journal
	Logger  *slog.Logger
	Keys    *core.KeyRegistry
	Config  config.Config
}

func (d Deps) withDefaults() Deps {
	if d.Ctx == nil {
		d.Ctx = context.Background()
	}
	if d.Store == nil {
		d.Store = store.New(store.State{})
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Keys == nil {
		d.Keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return d
}

func Tabs(d Deps) []core.Tab {
	d = d.withDefaults()
	return []core.Tab{
		NewBankTab(d),
		NewProportionTab(d),
	}
}

// NewModel builds the root model with both tabs, the command palette and the
// jump picker wired in.
func NewModel(d Deps) core.Model {
	d = d.withDefaults()
	m := core.NewModel(Tabs(d), d.Keys, core.NewCommandRegistry(nil), d.Store)
	ConfigureModel(&m, d)
	return m
}

func ConfigureModel(m *core.Model, d Deps) {
	if m == nil {
		return
	}
	d = d.withDefaults()

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{
						ID:       r.CommandID,
						Name:     r.Name,
						Desc:     r.Desc,
						Keys:     r.Keys,
						Disabled: r.Disabled,
						Reason:   r.Reason,
					})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenJumpPickerModal = func(_ *core.Model, targets []core.JumpTarget) core.Screen {
		return screens.NewJumpPicker(targets)
	}

	RegisterCommands(m.CommandRegistry(), d)
}

func RegisterCommands(reg *core.CommandRegistry, d Deps) {
	d = d.withDefaults()
	bank := d.Config.Bank
	reg.Register(core.Command{
		ID:          "deposit",
		Name:        "Deposit",
		Description: "Add " + store.FormatAmount(depositAmount(bank)) + " to the bank",
		Action:      "deposit",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return dispatchStatus(m.Store, store.Deposit{Amount: depositAmount(bank)})
		},
	})
	reg.Register(core.Command{
		ID:          "withdraw",
		Name:        "Withdraw",
		Description: "Take " + store.FormatAmount(withdrawAmount(bank)) + " from the bank",
		Action:      "withdraw",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return dispatchStatus(m.Store, store.Withdraw{Amount: withdrawAmount(bank)})
		},
	})
	reg.Register(core.Command{
		ID:          "bankrupt",
		Name:        "Bankrupt",
		Description: "Reset the bank to zero",
		Action:      "bankrupt",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return dispatchStatus(m.Store, store.Bankrupt{})
		},
		Disabled: func(m *core.Model) (bool, string) {
			if m.Store != nil && m.Store.Snapshot().Bank == 0 {
				return true, "bank is already empty"
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "add-tag",
		Name:        "Add tag",
		Description: "Add a column to the proportion table",
		Action:      "add-tag",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return core.PushScreenCmd(newAddTagScreen(m.Store))
		},
	})
	reg.Register(core.Command{
		ID:          "reset-tags",
		Name:        "Reset tags",
		Description: "Restore the startup tag list",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			tags, err := d.Config.InitialTags()
			if err != nil {
				return core.ErrorCmd(err)
			}
			return dispatchStatus(m.Store, store.SetTags{Tags: tags})
		},
	})
	reg.Register(core.Command{
		ID:          "switch-bank",
		Name:        "Switch to bank",
		Description: "Activate bank tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTabByID("bank")
			return core.StatusCmd("Bank")
		},
	})
	reg.Register(core.Command{
		ID:          "switch-proportion",
		Name:        "Switch to proportion",
		Description: "Activate proportion tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTabByID("proportion")
			return core.StatusCmd("Proportion")
		},
	})
}

func dispatchStatus(st *store.Store, a store.Action) tea.Cmd {
	if st == nil {
		return core.StatusCmd("No store")
	}
	st.Dispatch(a)
	return core.StatusCmd(actionStatus(a, st.Snapshot()))
}

func actionStatus(a store.Action, s store.State) string {
	switch a.(type) {
	case store.Deposit, store.Withdraw, store.Bankrupt:
		return "Bank: " + store.FormatAmount(s.Bank)
	default:
		return "Tags: " + joinTags(s.Tags)
	}
}

func depositAmount(c config.BankConfig) float64 {
	if c.DepositAmount <= 0 {
		return 100
	}
	return c.DepositAmount
}

func withdrawAmount(c config.BankConfig) float64 {
	if c.WithdrawAmount <= 0 {
		return 10
	}
	return c.WithdrawAmount
}
