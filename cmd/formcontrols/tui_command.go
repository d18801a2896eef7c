package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/formcontrols/core"
	"github.com/jask/formcontrols/internal/logging"
	"github.com/jask/formcontrols/screens"
)

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dual listbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, ctx)
		},
	}
}

// runTUI prints the final value on exit. The screen owns the terminal, so
// logs only go to log.path.
func runTUI(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	control := newControl(cfg, logger)
	if err := seedControl(control, cfg); err != nil {
		return err
	}
	screen := screens.NewDualList(control, core.NewKeyRegistry(core.DefaultKeyBindings()), logger)
	defer screen.Close()

	p := tea.NewProgram(screen, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if m, ok := final.(screens.DualList); ok {
		fmt.Fprintln(cmd.OutOrStdout(), m.Value())
	}
	return nil
}
