package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"picipher/internal/domain"
)

// runInteractive asks for mode, message and key, then translates.
func runInteractive(cmd *cobra.Command) error {
	mode, message, key, err := dialogue(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "> Translating your message...")
	return translateAndPrint(cmd, mode, message, key)
}

// dialogue re-asks for the mode and key until they parse. EOF before all
// three answers is an error.
func dialogue(in io.Reader, out io.Writer) (domain.Mode, string, domain.Key, error) {
	r := bufio.NewReader(in)

	var mode domain.Mode
	for {
		fmt.Fprintln(out, "> Do you wish to encrypt or decrypt a message?")
		line, err := readLine(r)
		if err != nil {
			return 0, "", 0, err
		}
		if mode, err = domain.ParseMode(line); err == nil {
			break
		}
		fmt.Fprintln(out, `> Enter either "encrypt" or "e" or "decrypt" or "d".`)
	}

	fmt.Fprintln(out, "> Enter your message:")
	message, err := readLine(r)
	if err != nil {
		return 0, "", 0, err
	}

	for {
		fmt.Fprintln(out, "> Enter the key number:")
		line, err := readLine(r)
		if err != nil {
			return 0, "", 0, err
		}
		key, err := domain.ParseKey(line)
		if err == nil {
			return mode, message, key, nil
		}
	}
}

var errNoInput = errors.New("input ended before the dialogue finished")

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", errNoInput
	case err != nil && !errors.Is(err, io.EOF):
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
