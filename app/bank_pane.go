package app

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/amount"
	"github.com/jask/proportion/internal/store"
	"github.com/jask/proportion/screens"
	"github.com/jask/proportion/widgets"
)

type bankButton struct {
	label  string
	action func() store.Action
}

// BankPane shows the bank balance with its session history and the buttons
// that change it.
type BankPane struct {
	core.PaneMeta
	focused bool
	cursor  int
	buttons []bankButton
	history []float64
	store   *store.Store
	keys    *core.KeyRegistry
	logger  *slog.Logger
}

const bankHistoryLimit = 256

func NewBankPane(meta core.PaneMeta, d Deps) *BankPane {
	d = d.withDefaults()
	deposit, withdraw := depositAmount(d.Config.Bank), withdrawAmount(d.Config.Bank)
	p := &BankPane{
		PaneMeta: meta,
		store:    d.Store,
		keys:     d.Keys,
		logger:   d.Logger,
		buttons: []bankButton{
			{label: "DEPOSIT +" + store.FormatAmount(deposit), action: func() store.Action { return store.Deposit{Amount: deposit} }},
			{label: "WITHDRAW -" + store.FormatAmount(withdraw), action: func() store.Action { return store.Withdraw{Amount: withdraw} }},
			{label: "BANKRUPT", action: func() store.Action { return store.Bankrupt{} }},
		},
		history: []float64{d.Store.Snapshot().Bank},
	}
	d.Store.Subscribe(p.onChange)
	return p
}

// The button row only takes arrows and enter while the pane has focus.
func (p *BankPane) OnFocus() tea.Cmd { p.focused = true; return nil }
func (p *BankPane) OnBlur() tea.Cmd  { p.focused = false; return nil }

func (p *BankPane) History() []float64 { return append([]float64(nil), p.history...) }

func (p *BankPane) onChange(c store.Change) {
	if c.Prev.Bank == c.Next.Bank && len(p.history) > 0 {
		return
	}
	p.history = append(p.history, c.Next.Bank)
	if len(p.history) > bankHistoryLimit {
		p.history = p.history[len(p.history)-bankHistoryLimit:]
	}
}

func (p *BankPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case p.keys.IsAction(keyMsg, "deposit", p.Scope()):
		return p.press(0)
	case p.keys.IsAction(keyMsg, "withdraw", p.Scope()):
		return p.press(1)
	case p.keys.IsAction(keyMsg, "bankrupt", p.Scope()):
		return p.press(2)
	case p.keys.IsAction(keyMsg, "deposit-custom", p.Scope()):
		return core.PushScreenCmd(newAmountScreen("Deposit amount", func(v float64) store.Action { return store.Deposit{Amount: v} }))
	case p.keys.IsAction(keyMsg, "withdraw-custom", p.Scope()):
		return core.PushScreenCmd(newAmountScreen("Withdraw amount", func(v float64) store.Action { return store.Withdraw{Amount: v} }))
	}
	if !p.focused {
		return nil
	}
	switch strings.ToLower(keyMsg.String()) {
	case "left", "h":
		p.cursor = (p.cursor - 1 + len(p.buttons)) % len(p.buttons)
	case "right", "l":
		p.cursor = (p.cursor + 1) % len(p.buttons)
	case "enter", " ":
		return p.press(p.cursor)
	}
	return nil
}

func (p *BankPane) press(idx int) tea.Cmd {
	if idx < 0 || idx >= len(p.buttons) {
		return nil
	}
	p.cursor = idx
	a := p.buttons[idx].action()
	p.store.Dispatch(a)
	bank := p.store.Snapshot().Bank
	p.logger.Debug("bank action", "action", a.Name(), "bank", bank)
	return core.StatusCmd(fmt.Sprintf("%s: bank is now %s", a, store.FormatAmount(bank)))
}

func (p *BankPane) View(width, height int, selected, focused bool) string {
	contentWidth, innerHeight := widgets.InnerSize(width, height)

	bank := p.store.Snapshot().Bank
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	if bank < 0 {
		valueStyle = valueStyle.Foreground(lipgloss.Color("#f38ba8"))
	}
	chips := make([]string, 0, len(p.buttons))
	for i, b := range p.buttons {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de")).Background(lipgloss.Color("#313244"))
		if i == p.cursor && p.focused {
			style = style.Foreground(lipgloss.Color("#89b4fa")).Bold(true)
		}
		chips = append(chips, style.Render(" "+b.label+" "))
	}
	lines := []string{
		"Bank: " + valueStyle.Render(store.FormatAmount(bank)),
		"",
		strings.Join(chips, " "),
		hintLine(
			keyHint(p.keys, p.Scope(), "act", "deposit", "withdraw", "bankrupt"),
			keyHint(p.keys, p.Scope(), "custom amount", "deposit-custom", "withdraw-custom"),
			"enter press",
		),
	}
	if chartHeight := innerHeight - len(lines) - 1; chartHeight > 0 && len(p.history) > 1 {
		chart := widgets.Sparkline{Values: p.history, Color: lipgloss.Color("#a6e3a1")}.Render(contentWidth, chartHeight)
		lines = append(lines, "", chart)
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  strings.Join(lines, "\n"),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// newAmountScreen asks for an amount expression such as "100*3" and turns the
// result into a store action.
func newAmountScreen(title string, toAction func(float64) store.Action) core.Screen {
	field := screens.EditorField{
		Key:         "amount",
		Label:       "Amount",
		Placeholder: "e.g. 250 or 100*3",
		Validate: func(v string) error {
			_, err := amount.Parse(v)
			return err
		},
	}
	return screens.NewEditorScreen(title, []screens.EditorField{field}, func(values map[string]string) tea.Msg {
		v, err := amount.Parse(values["amount"])
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return core.DispatchMsg{Action: toAction(v), Status: title + ": " + store.FormatAmount(v)}
	})
}
