package app

import (
	"github.com/jask/proportion/core"
	"github.com/jask/proportion/widgets"
)

// NewBankTab stacks the bank controls over the journal activity.
func NewBankTab(d Deps) *core.PaneTab {
	panel := NewBankPane(core.NewPaneMeta("panel", "Bank", core.ScopeBankPanel, 'p'), d)
	activity := NewActivityPane(core.NewPaneMeta("activity", "Activity", core.ScopeBankActivity, 'a'), d)
	return core.NewPaneTab("bank", "Bank", func(host *core.PaneHost) widgets.Widget {
		return widgets.Split{
			Parts:   []widgets.Widget{host.Render("panel"), host.Render("activity")},
			Weights: []int{9, 11},
		}
	}, panel, activity)
}

// NewProportionTab puts the factor table beside the tag list.
func NewProportionTab(d Deps) *core.PaneTab {
	table := NewProportionPane(core.NewPaneMeta("table", "Proportion", core.ScopeTable, 't'), d)
	tags := NewTagsPane(core.NewPaneMeta("tags", "Tags", core.ScopeTags, 'g'), d)
	return core.NewPaneTab("proportion", "Proportion", func(host *core.PaneHost) widgets.Widget {
		return widgets.Split{
			Parts:   []widgets.Widget{host.Render("table"), host.Render("tags")},
			Weights: []int{7, 3},
			Across:  true,
			Gap:     1,
		}
	}, table, tags)
}
