package cmd

import (
	"github.com/spf13/cobra"
)

func newApplyCmd(opts *options) *cobra.Command {
	var text string

	applyCmd := &cobra.Command{
		Use:   "apply [flags] <operation> [args...]",
		Short: "Applies one operation to the input text",
		Long: `Applies one operation to the input text and prints the result.

Flags must come before the operation name so that arguments such as -1
reach the operation. Lists are separated with "|". Run 'stringy ops' for
the available operations.`,
		Example: `  stringy apply --text "Fòô Bàř" snake-case
  echo "fòôbàř" | stringy apply at -1
  stringy apply --text "a,b,c" explode , 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := lookup(args[0])
			if err != nil {
				return err
			}

			input, err := opts.input(cmd, text)
			if err != nil {
				return err
			}

			timer := opts.env.Logger.StartTimer(op.Name)
			result, err := invoke(opts.env, op, input, args[1:])
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.Stop()

			return opts.write(cmd, render(result))
		},
	}

	applyCmd.Flags().SetInterspersed(false)
	applyCmd.Flags().StringVarP(&text, "text", "t", "", "input text (default: read stdin)")
	return applyCmd
}
