// Package tui implements the interactive dashboard: a pupil pane on
// the left, tabbed diary views on the right, data loaded through the
// same services the CLI commands use.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/service"
)

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, services *service.Services, log *logger.Logger) error {
	model := newDashboard(ctx, services, log)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
