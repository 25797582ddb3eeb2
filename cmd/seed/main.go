package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"salon/config"
	"salon/shared/logger"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	rootCmd := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the salon database with demo data",
		SilenceUsage: true,
	}

	var seed int64

	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		seedFaker(seed)
	}

	rootCmd.AddCommand(bookingsCmd(cfg))
	rootCmd.AddCommand(messagesCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}
}
