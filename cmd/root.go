package cmd

import (
	"blobmirror/config"
	"errors"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blobmirror [output-dir]",
	Short: "Mirror an Azure Blob Storage container to a local directory",
	Long: `blobmirror downloads every blob in an Azure Blob Storage container into
the given output directory, recreating the blob name hierarchy on disk.
Blob names are sanitized into filesystem-safe paths; existing files are
never overwritten. A failure on one blob does not stop the run.
Configuration is loaded from .env file or environment variables`,
	Example: `  # Mirror the configured container into ./out
  blobmirror ./out

  # Mirror a specific container
  blobmirror ./out --container my-other-container

  # Verbose output
  blobmirror ./out --verbose`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return &ExitError{
				Code: ExitMissingOutputDir,
				Err:  errors.New("output directory argument is required"),
			}
		}
		return nil
	},
	RunE:          runMirror,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(containerInfoCmd)

	rootCmd.PersistentFlags().StringP("container", "c", "", "Override container name from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
}

func getContainerName(cmd *cobra.Command) string {
	container, _ := cmd.Flags().GetString("container")
	if container != "" {
		return container
	}
	return cfg.ContainerName
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
