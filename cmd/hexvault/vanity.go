package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hexvault/hexvault/internal/ui"
	"github.com/hexvault/hexvault/pkg/search"
)

// updateRate controls how often the progress line is redrawn.
const updateRate = 250 * time.Millisecond

var (
	vanityPrefix  string
	vanitySuffix  string
	vanityWorkers int
)

var vanityCmd = &cobra.Command{
	Use:   "vanity",
	Short: "Search for a wallet whose address matches a pattern",
	Long: "Generates random wallets until one's account address matches the wanted\n" +
		"prefix and/or suffix. The prefix is matched after the constant \"1111\"\n" +
		"lead-in every address starts with. Interrupt with Ctrl-C.",
	Args: cobra.NoArgs,
	RunE: runVanity,
}

func init() {
	vanityCmd.Flags().StringVar(&vanityPrefix, "prefix", "", "wanted address prefix (base58)")
	vanityCmd.Flags().StringVar(&vanitySuffix, "suffix", "", "wanted address suffix (base58)")
	vanityCmd.Flags().IntVar(&vanityWorkers, "workers", 0, "worker goroutines (default: CPU cores)")
}

func runVanity(cmd *cobra.Command, args []string) error {
	if vanityPrefix == "" && vanitySuffix == "" {
		return errors.New("specify --prefix and/or --suffix")
	}

	config := &search.Config{
		Prefix:  vanityPrefix,
		Suffix:  vanitySuffix,
		Workers: vanityWorkers,
	}
	engine := search.NewCPUEngine(config.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resultChan, err := engine.Start(ctx, config)
	if err != nil {
		return err
	}

	ui.PrintSearchInfo(config, engine.Name())
	startTime := time.Now()
	ticker := time.NewTicker(updateRate)
	defer ticker.Stop()

	for {
		select {
		case result := <-resultChan:
			ui.ClearLine()
			ui.PrintSearchResult(&result, time.Since(startTime))
			return nil

		case <-ticker.C:
			ui.PrintProgress(engine.Stats())

		case <-ctx.Done():
			ui.ClearLine()
			return errors.New("search cancelled")
		}
	}
}
