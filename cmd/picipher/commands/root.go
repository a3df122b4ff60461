package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"picipher/internal/app"
	"picipher/internal/chudnovsky"
)

var (
	home         string
	configPath   string
	digitsURL    string
	offline      bool
	fetchTimeout time.Duration
	noSave       bool
	verbose      bool

	appCtx *app.Wire
)

func Execute() error {
	root := newRootCmd()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "picipher",
		Short: "Shift text by the digits of pi",
		Long: "picipher encrypts and decrypts text by shifting every character's codepoint\n" +
			"by a digit of pi, starting at the digit selected by a numeric key.\n\n" +
			"Run without a subcommand on a terminal for an interactive dialogue.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd.Flags(), &cfg)
			if err := cfg.Resolve(); err != nil {
				return err
			}

			log := app.NewLogger(cmd.ErrOrStderr(), verbose)
			appCtx, err = app.NewWire(cfg, log, progressBar(cmd.ErrOrStderr()))
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) {
				return cmd.Help()
			}
			return runInteractive(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "cache and output dir (default ~/.picipher)")
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&digitsURL, "url", "", "URL of the 1,000,000-digit artifact")
	pf.BoolVar(&offline, "offline", false, "never fetch digits over the network")
	pf.DurationVar(&fetchTimeout, "timeout", 0, "timeout for fetching digits (default 30s)")
	pf.BoolVar(&noSave, "no-save", false, "do not write translated_message.txt")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(encryptCmd(), decryptCmd(), digitsCmd())
	return root
}

// applyFlags overrides file/default values with flags the user set
// explicitly.
func applyFlags(fs *pflag.FlagSet, cfg *app.Config) {
	if fs.Changed("home") {
		cfg.Home = home
	}
	if fs.Changed("url") {
		cfg.DigitsURL = digitsURL
	}
	if fs.Changed("offline") {
		cfg.Offline = offline
	}
	if fs.Changed("timeout") {
		cfg.FetchTimeout = fetchTimeout
	}
	if fs.Changed("no-save") {
		cfg.SaveOutput = !noSave
	}
}

// progressBar draws computation progress on w when it is a terminal.
func progressBar(w io.Writer) chudnovsky.ProgressReporter {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return nil
	}
	return func(p float64) {
		fmt.Fprintf(w, "\rComputing pi: %3.0f%%", p*100)
		if p >= 1 {
			fmt.Fprintln(w)
		}
	}
}

func isTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
