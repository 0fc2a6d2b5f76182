// hexvault is the command-line front end for the wallet derivation core:
// generate and restore wallets, verify address checksums, and recover the
// key chain from an arbitrary input string.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexvault/hexvault/internal/ui"
	"github.com/hexvault/hexvault/pkg/wallet"
)

const version = "1.0"

// jsonOutput switches record-printing commands to machine-readable output.
var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:           "hexvault",
	Short:         "Wallet and address toolkit",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.NewWallet()
		if err != nil {
			return err
		}
		return printWallet(w)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <mnemonic...>",
	Short: "Restore a wallet from its 12-word mnemonic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.RestoreWallet(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printWallet(w)
	},
}

var addrCmd = &cobra.Command{
	Use:   "addr <value>",
	Short: "Detect what a string is and recover the address chain from it",
	Long: "Tries to interpret the input as a checksummed address, a private key,\n" +
		"a public key, or a network address, in that order, and prints everything\n" +
		"derivable from the first interpretation that fits.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := wallet.ParseAddress(args[0])
		if !ok {
			return fmt.Errorf("unrecognized input %q", args[0])
		}
		if jsonOutput {
			return printJSON(p)
		}
		ui.PrintParsed(p)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <address>",
	Short: "Check the checksum of an account address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wallet.VerifyAddress(args[0]) {
			return errors.New("invalid address checksum")
		}
		fmt.Printf("    %s✓ valid%s\n", ui.ColorGreen, ui.ColorReset)
		return nil
	},
}

func printWallet(w *wallet.Wallet) error {
	if jsonOutput {
		return printJSON(w)
	}
	ui.PrintWallet(w)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print records as JSON")
	rootCmd.AddCommand(newCmd, restoreCmd, addrCmd, verifyCmd, vanityCmd)

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(err)
		os.Exit(1)
	}
}
