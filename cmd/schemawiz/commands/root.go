package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"f0oster/schemawiz/config"
	"f0oster/schemawiz/logging"
)

var rootCmd = &cobra.Command{
	Use:   "schemawiz",
	Short: "Propose field schemas from sampled data files",
	Long: `schemawiz inspects a sample data file (directory export, CSV/TSV or JSON)
and proposes a field schema: names, inferred semantic types, nullability and
multiplicity. The proposal is a starting point for a metadata wizard, not a
validated contract.`,
	SilenceUsage:      true,
	SilenceErrors:     false,
	PersistentPreRunE: setup,
}

// wizardConfig holds env-file defaults, loaded before any command runs.
var wizardConfig config.WizardConfiguration

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "optional env file with wizard defaults")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "emit logs as JSON")

	viper.BindPFlag("config", flags.Lookup("config"))
	viper.BindPFlag("log-level", flags.Lookup("log-level"))
	viper.BindPFlag("log-json", flags.Lookup("log-json"))

	viper.SetEnvPrefix("SCHEMAWIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setup(cmd *cobra.Command, args []string) error {
	wizardConfig = config.LoadEnvConfig(viper.GetString("config"))

	level := viper.GetString("log-level")
	if level == "" {
		level = wizardConfig.LogLevel
	}
	_, err := logging.Setup(level, viper.GetBool("log-json"))
	return err
}
