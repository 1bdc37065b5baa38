package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jask/proportion/internal/store"
)

// ActionEntry describes a store dispatch.
func ActionEntry(c store.Change) Entry {
	bank := c.Next.Bank
	return Entry{
		Kind:   KindAction,
		Name:   c.Action.Name(),
		Detail: c.Action.String(),
		Bank:   &bank,
	}
}

// EditEntry describes a committed table cell.
func EditEntry(rowKey, column, value string) Entry {
	return Entry{
		Kind:   KindEdit,
		Name:   "commit",
		Detail: fmt.Sprintf("%s / %s = %q", rowKey, column, value),
	}
}

// StoreListener records every dispatch. Failures are logged and dropped so
// the UI keeps running.
func (j *Journal) StoreListener(ctx context.Context, logger *slog.Logger) store.Listener {
	return func(c store.Change) {
		if _, err := j.Record(ctx, ActionEntry(c)); err != nil && logger != nil {
			logger.Warn("journal action", "action", c.Action.Name(), "error", err)
		}
	}
}
