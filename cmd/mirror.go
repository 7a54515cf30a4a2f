package cmd

import (
	"blobmirror/config"
	"blobmirror/internal/blobclient"
	"blobmirror/internal/mirror"
	"blobmirror/pkg/utils"
	"context"
	"errors"
	"github.com/spf13/cobra"
	"time"
)

func runMirror(cmd *cobra.Command, args []string) error {
	outputDir := args[0]

	if cfg.ConnectionString == "" {
		return exitErrorf(ExitMissingConnectionString,
			"AZURE_STORAGE_CONNECTION_STRING is not set")
	}

	container := getContainerName(cmd)
	if container == "" {
		return exitErrorf(ExitMissingContainer,
			"AZURE_STORAGE_CONTAINER is not set and --container was not given")
	}

	effective := &config.Config{
		ConnectionString: cfg.ConnectionString,
		ContainerName:    container,
	}

	client, err := blobclient.New(effective)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Starting mirror operation...\n")
		cmd.Printf("  Container: %s\n", container)
		cmd.Printf("  Destination: %s\n", outputDir)
	}

	engine := mirror.NewEngine(outputDir, client.ListPager(), client)
	engine.Container = container
	engine.Progress = cmd.OutOrStdout()

	result, err := engine.Run(ctx)
	if err != nil {
		if errors.Is(err, mirror.ErrOutputRootIsFile) {
			return &ExitError{Code: ExitOutputRootIsFile, Err: err}
		}
		return err
	}

	if err := utils.PrintJSON(result); err != nil {
		return err
	}

	if isVerbose(cmd) {
		cmd.Println("Mirror operation completed")
		cmd.Printf("Downloaded %d, skipped %d, failed %d\n",
			result.DownloadedCount, result.SkippedCount, result.FailedCount)
	}
	return nil
}
