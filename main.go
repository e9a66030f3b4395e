package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tobiasGuta/ffufGemini/internal/cli"
	"github.com/tobiasGuta/ffufGemini/internal/exec"
)

func main() {
	// Set up signal handler to clean up child processes on exit.
	// An interrupt mid-scan is a normal way to stop ffuf, so exit clean.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigChan
		fmt.Println("\n[!] Scan interrupted by user. Exiting...")
		exec.KillAllProcesses()
		os.Exit(0)
	}()

	if err := cli.Execute(); err != nil {
		exec.KillAllProcesses()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
