package main

import (
	"blobmirror/cmd"
	"blobmirror/config"
	"blobmirror/pkg/utils"
	"log"
	"os"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration " + err.Error())
	}
	if err := cmd.Execute(cnf); err != nil {
		utils.PrintError(err, "blobmirror")
		os.Exit(cmd.ExitCode(err))
	}
}
