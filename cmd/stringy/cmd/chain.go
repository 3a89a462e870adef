package cmd

import (
	"strings"

	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/pkg/stringy"
	"github.com/spf13/cobra"
)

func newChainCmd(opts *options) *cobra.Command {
	var text string

	chainCmd := &cobra.Command{
		Use:   "chain [flags] <operation[:arg,...]>...",
		Short: "Applies operations one after another",
		Long: `Applies each operation to the result of the previous one.

Arguments follow the operation name after ":" and are separated with ",".
A literal comma is written as "\,". Results that are not text, such as
numbers or lists, are passed on in their printed form.`,
		Example: `  stringy chain --text "  Fòô Bàř  " trim to-ascii snake-case
  stringy chain --text "fòô" pad-both:9,* surround:|`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := opts.input(cmd, text)
			if err != nil {
				return err
			}

			result, err := runChain(opts.env, value, args)
			if err != nil {
				return err
			}
			return opts.write(cmd, result)
		},
	}

	chainCmd.Flags().SetInterspersed(false)
	chainCmd.Flags().StringVarP(&text, "text", "t", "", "input text (default: read stdin)")
	return chainCmd
}

// runChain applies every step to value in order
func runChain(env *Env, value stringy.Stringy, steps []string) (string, error) {
	var result any = value
	for i, step := range steps {
		name, args := parseStep(step)
		op, err := lookup(name)
		if err != nil {
			return "", err
		}

		result, err = invoke(env, op, value, args)
		if err != nil {
			return "", err
		}
		env.Logger.Debug("chain step", mdwlog.Int("step", i+1), mdwlog.String("operation", op.Name))

		if next, ok := result.(stringy.Stringy); ok {
			value = next
		} else {
			value = stringy.New(render(result))
		}
	}
	return render(result), nil
}

// parseStep splits "name:a,b" into the name and its arguments
func parseStep(step string) (string, []string) {
	name, rest, found := strings.Cut(step, ":")
	if !found {
		return name, nil
	}

	var args []string
	var current strings.Builder
	escaped := false
	for _, r := range rest {
		switch {
		case escaped:
			if r != ',' {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ',':
			args = append(args, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	return name, append(args, current.String())
}
