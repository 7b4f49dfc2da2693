package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/redisc/cmd/bench"
	"github.com/ValentinKolb/redisc/cmd/inspect"
	"github.com/ValentinKolb/redisc/cmd/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "redisc",
		Short: "typed client library for a RESP key-value store",
		Long: fmt.Sprintf(`redisc (v%s)

A typed Go client library for a RESP key-value store, with
developer tools for inspecting built commands and measuring
library throughput.`, Version),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := util.BindCommandFlags(cmd); err != nil {
				return err
			}
			return util.InitLoggers(viper.GetString("log-level"))
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of redisc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("redisc v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(inspect.InspectCmd)
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "warn", util.WrapString("log level to use (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
