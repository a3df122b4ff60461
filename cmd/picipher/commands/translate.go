package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"picipher/internal/domain"
)

func encryptCmd() *cobra.Command {
	return translateCmd(domain.Encrypt, "Encrypt a message with the digits of pi")
}

func decryptCmd() *cobra.Command {
	return translateCmd(domain.Decrypt, "Decrypt a message produced by encrypt")
}

// translateCmd builds "encrypt [message]" or "decrypt [message]". Without
// an argument the message is read from stdin, minus one trailing newline.
func translateCmd(mode domain.Mode, short string) *cobra.Command {
	var keyText string
	cmd := &cobra.Command{
		Use:   mode.String() + " [message]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseKey(keyText)
			if err != nil {
				return err
			}

			var message string
			if len(args) == 1 {
				message = args[0]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading message: %w", err)
				}
				message = strings.TrimSuffix(strings.TrimSuffix(string(b), "\n"), "\r")
			}

			return translateAndPrint(cmd, mode, message, key)
		},
	}
	cmd.Flags().StringVarP(&keyText, "key", "k", "", "non-negative starting offset into the digits")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func translateAndPrint(cmd *cobra.Command, mode domain.Mode, message string, key domain.Key) error {
	res, err := appCtx.Translator.Translate(cmd.Context(), mode, message, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message.String())

	stderr := cmd.ErrOrStderr()
	switch {
	case res.Saved:
		fmt.Fprintf(stderr, "Saved to %s\n", appCtx.Output.Path())
	case errors.Is(res.SaveErr, domain.ErrUnrepresentableOutput):
		fmt.Fprintln(stderr, "Not saved: the result holds codepoints UTF-8 cannot encode")
	case res.SaveErr != nil:
		fmt.Fprintf(stderr, "Not saved: %v\n", res.SaveErr)
	}
	return nil
}
