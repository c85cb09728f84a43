// Package watch renders a live feed of normalized updates in the terminal,
// one line per update with its kind, chat, sender, and forward provenance.
package watch

import (
	"context"
	"fmt"

	"telewire/pkg/message"

	tea "github.com/charmbracelet/bubbletea"
)

// Run displays the feed until the user quits or the context is cancelled.
func Run(ctx context.Context, updates <-chan message.Update, info RuntimeInfo) error {
	program := tea.NewProgram(
		newModel(updates, info),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run watch ui: %w", err)
	}

	return nil
}
