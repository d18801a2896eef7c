package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/formcontrols/internal/bridge"
	"github.com/jask/formcontrols/internal/hostscript"
	"github.com/jask/formcontrols/internal/logging"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var finalOnly bool
	cmd := &cobra.Command{
		Use:   "apply [script]",
		Short: "Run a control script and print every value change",
		Long: "Run a control script against a fresh dual listbox. The script is read\n" +
			"from the given file, or stdin when omitted or \"-\". Each committed change\n" +
			"prints its sequence number and value.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			cmds, err := hostscript.Parse(in)
			if err != nil {
				return fmt.Errorf("parse script: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg.Log, "stderr")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			control := newControl(cfg, logger)
			out := cmd.OutOrStdout()
			if !finalOnly {
				cancel := control.OnEvent(func(e bridge.Event) {
					fmt.Fprintf(out, "%d\t%s\n", e.Seq, e.Detail)
				})
				defer cancel()
			}
			if err := seedControl(control, cfg); err != nil {
				return err
			}
			if err := hostscript.Run(cmd.Context(), control, cmds); err != nil {
				return err
			}
			logger.Info("script applied",
				zap.String("control_id", control.ID()),
				zap.Int("commands", len(cmds)),
			)
			if finalOnly {
				fmt.Fprintln(out, control.Value())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&finalOnly, "final", false, "Print only the final value")
	return cmd
}
