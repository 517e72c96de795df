package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orbis-network/orbis-go/consensus/votergroup"
)

var (
	flagGroupSize uint
	log           zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "votergroup",
	Short: "Inspect deterministic voter group selection",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().UintVarP(&flagGroupSize, "group-size", "g", votergroup.DefaultGroupSize,
		"target voter group size")

	log = zerolog.New(zerolog.NewConsoleWriter())

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.AutomaticEnv()
}
