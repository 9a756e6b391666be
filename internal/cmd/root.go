package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shadanan/mediar/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediar",
	Short: "Organize media files using TMDB metadata",
	Long: `mediar classifies loosely-named movie and TV episode files and
relocates them into a canonical library layout driven by TMDB metadata.

Files are renamed to "Show Name (Year)/Season NN/Show Name - SxxEyy - Episode.ext"
for TV content and "Title (Year)/Title (Year).ext" for movies. Every run builds
a conflict-checked plan first and asks for confirmation before touching disk.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.ConfigureLogger()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
