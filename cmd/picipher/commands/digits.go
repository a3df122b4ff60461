package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"picipher/internal/crypto"
)

// digitsCmd acquires the keystream and reports where it came from.
func digitsCmd() *cobra.Command {
	var show int
	cmd := &cobra.Command{
		Use:   "digits",
		Short: "Show the source, length and fingerprint of the pi digits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Source.Digits(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source: %s\n", d.Tier)
			fmt.Fprintf(out, "Digits: %d\n", d.Len())
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(d.DigitString))
			if show > 0 {
				p := d.Prefix(show)
				fmt.Fprintf(out, "%s.%s\n", p[:1], p[1:])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&show, "show", 0, "print the first N digits")
	return cmd
}
