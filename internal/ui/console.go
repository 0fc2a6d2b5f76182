// Package ui renders wallet records and search progress on the terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hexvault/hexvault/pkg/search"
	"github.com/hexvault/hexvault/pkg/wallet"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// PrintWallet renders a wallet record with aligned labels. The private key
// and mnemonic lines use the warning color since they must not be shared.
func PrintWallet(w *wallet.Wallet) {
	fmt.Println()
	printField("Address", w.Address, ColorGreen+ColorBold)
	printField("Network address", w.NetworkAddress, ColorCyan)
	printField("Public key", w.PublicKey, ColorCyan)
	printField("Private key", w.PrivateKey, ColorYellow)
	printField("Mnemonic", w.Mnemonic, ColorYellow)
	fmt.Println()
}

// printField skips absent fields so restored and parsed records render
// only what their input could derive.
func printField(label, value, color string) {
	if value == "" {
		return
	}
	fmt.Printf("    %s%-16s%s %s%s%s\n", ColorDim, label, ColorReset, color, value, ColorReset)
}

// PrintParsed renders a parse result, leading with the detected input kind.
func PrintParsed(p *wallet.Parsed) {
	fmt.Printf("\n    %s%-16s%s %s%s%s\n", ColorDim, "Detected as", ColorReset, ColorBold, p.DetectedAs, ColorReset)
	PrintWallet(&p.Wallet)
}

// PrintSearchInfo displays the search configuration before the run starts.
func PrintSearchInfo(config *search.Config, engineName string) {
	fmt.Printf("\n    %sSEARCHING%s %s", ColorGreen+ColorBold, ColorReset, search.AddressLeadIn)
	if config.Prefix != "" {
		fmt.Printf("%s%s%s", ColorCyan+ColorBold, config.Prefix, ColorReset)
	}
	fmt.Printf("%s…%s", ColorDim, ColorReset)
	if config.Suffix != "" {
		fmt.Printf("%s%s%s", ColorCyan+ColorBold, config.Suffix, ColorReset)
	}
	fmt.Printf("  %s[%s]%s\n\n", ColorDim, engineName, ColorReset)
}

// PrintProgress renders the in-place progress line for a running search.
func PrintProgress(stats search.Stats) {
	fmt.Printf("\r    %s⏳%s %s attempts │ %s/s │ %s",
		ColorCyan, ColorReset,
		FormatNumber(stats.Attempts),
		FormatNumber(uint64(stats.HashRate)),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// PrintSearchResult renders a found vanity wallet with its search stats.
func PrintSearchResult(result *search.Result, elapsed time.Duration) {
	fmt.Printf("\n\n    %s✓ FOUND%s after %s attempts in %s\n",
		ColorGreen+ColorBold, ColorReset,
		FormatNumber(result.Attempts), FormatDuration(elapsed))
	PrintWallet(&result.Wallet)
}

// PrintError renders an error message.
func PrintError(err error) {
	fmt.Printf("\n    %s✗ Error: %v%s\n", ColorRed, err, ColorReset)
}

// ClearLine erases the current terminal line.
func ClearLine() {
	fmt.Print("\r" + strings.Repeat(" ", 80) + "\r")
}

// FormatNumber formats a number with thousand separators.
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
