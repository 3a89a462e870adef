package cmd

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/stringy/foundation/core/config"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/pkg/stringy"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile  string
	verbose  bool
	encoding string
	env      *Env
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "stringy",
		Short: "Unicode string operations on the command line",
		Long: `stringy applies the operations of the stringy library to text
given with --text or read from stdin.

Positions and lengths are counted in Unicode codepoints. Defaults for
slugs, ASCII folding and logging come from stringy.toml or stringy.yaml
and can be overridden with STRINGY_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: discovered stringy.toml or stringy.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.encoding, "encoding", "", "encoding of input and output (default: defaults.encoding)")

	rootCmd.AddCommand(
		newApplyCmd(opts),
		newChainCmd(opts),
		newOpsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// setup loads the configuration and installs the logger
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	settings := cfg.Settings()

	logger := newLogger(settings, o.verbose, cmd.ErrOrStderr())
	stringy.SetLogger(logger)

	o.env = &Env{
		Ctx:      cmd.Context(),
		Settings: settings,
		Logger:   logger,
	}
	logger.Debug("configuration loaded",
		mdwlog.String("file", cfg.FilePath()),
		mdwlog.String("encoding", o.textEncoding()))
	return nil
}

func (o *options) loadConfig() (*config.Config, error) {
	if o.cfgFile == "" {
		return config.Discover(config.DefaultDiscoveryOptions())
	}
	return config.LoadWithOptions(o.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: config.EnvPrefix,
		Defaults:  config.DefaultValues(),
	})
}

func newLogger(settings config.Settings, verbose bool, out io.Writer) *mdwlog.Logger {
	level, levelErr := mdwlog.ParseLevel(settings.LogLevel)
	if levelErr != nil {
		level = mdwlog.LevelWarn
	}
	if verbose {
		level = mdwlog.LevelDebug
	}
	format, _ := mdwlog.ParseFormat(settings.LogFormat)

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "stringy-cli",
	})
	if levelErr != nil {
		logger.WarnWithErr("invalid log level, using warn", levelErr)
	}
	return logger
}

func (o *options) textEncoding() string {
	if o.env == nil {
		return cmp.Or(o.encoding, stringy.DefaultEncoding)
	}
	return cmp.Or(o.encoding, o.env.Settings.Encoding, stringy.DefaultEncoding)
}

func (o *options) isUTF8() bool {
	return stringy.New("", o.textEncoding()).Encoding() == stringy.DefaultEncoding
}

// input returns the text flag when set, stdin otherwise, decoded to UTF-8
func (o *options) input(cmd *cobra.Command, text string) (stringy.Stringy, error) {
	raw := text
	if !cmd.Flags().Changed("text") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return stringy.Stringy{}, err
		}
		raw = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	}
	if o.isUTF8() {
		return stringy.New(raw), nil
	}
	return stringy.New(raw, o.textEncoding()).Encode(stringy.DefaultEncoding)
}

// write prints text in the output encoding
func (o *options) write(cmd *cobra.Command, text string) error {
	if !o.isUTF8() {
		encoded, err := stringy.New(text).Encode(o.textEncoding())
		if err != nil {
			return err
		}
		text = encoded.String()
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
