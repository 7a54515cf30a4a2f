package cmd

import (
	"blobmirror/config"
	"blobmirror/internal/blobclient"
	"blobmirror/pkg/utils"
	"context"
	"github.com/spf13/cobra"
	"time"
)

var containerInfoCmd = &cobra.Command{
	Use:   "container-info",
	Short: "Get comprehensive container information",
	Long: `Get detailed information about the Azure Blob Storage container
The container name is taken from the configuration file unless overridden with --container flag.`,
	Example: `  # Get info for configured container
  blobmirror container-info

  # Get info for specific container
  blobmirror container-info --container my-other-container

  # Verbose output
  blobmirror container-info --verbose`,
	RunE: runContainerInfo,
}

func runContainerInfo(cmd *cobra.Command, args []string) error {
	if cfg.ConnectionString == "" {
		return exitErrorf(ExitMissingConnectionString,
			"AZURE_STORAGE_CONNECTION_STRING is not set")
	}

	container := getContainerName(cmd)
	if container == "" {
		return exitErrorf(ExitMissingContainer,
			"AZURE_STORAGE_CONTAINER is not set and --container was not given")
	}

	client, err := blobclient.New(&config.Config{
		ConnectionString: cfg.ConnectionString,
		ContainerName:    container,
	})
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Getting container information for: %s\n", container)
	}

	info, err := client.ContainerInfo(ctx)
	if err != nil {
		return err
	}

	if err := utils.PrintJSON(info); err != nil {
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("Container info retrieved successfully\n")
	}
	return nil
}

func init() {
	containerInfoCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
