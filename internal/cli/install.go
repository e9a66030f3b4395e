package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tobiasGuta/ffufGemini/internal/tools"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install required tools",
	Long: `Install the external tools this pipeline drives (httpx, ffuf)
using 'go install'.`,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	cyan := color.New(color.FgCyan, color.Bold)
	gray := color.New(color.FgHiBlack)

	cyan.Println("\n[+] Installing ffufGemini Dependencies")
	fmt.Println()

	installer := tools.NewInstaller()
	failed := 0

	for _, t := range tools.All() {
		if installer.IsInstalled(t.Binary) {
			sp := tools.NewSpinner("")
			sp.Success(fmt.Sprintf("%s (already installed)", t.Name))
			continue
		}

		sp := tools.NewSpinner(fmt.Sprintf("Installing %s...", t.Name))
		sp.Start()
		if err := installer.InstallGoTool(t); err != nil {
			sp.Fail(fmt.Sprintf("%s: %v", t.Name, err))
			failed++
			continue
		}
		sp.Success(t.Name)
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d tool(s) failed to install", failed)
	}
	gray.Println("  All tools installed")
	return nil
}
