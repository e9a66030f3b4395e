package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tobiasGuta/ffufGemini/internal/tools"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check installed tools",
	Long: `Check which external tools are installed and available.

Displays the status of httpx and ffuf.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan, color.Bold)

	cyan.Println("\n[+] ffufGemini Tool Status")
	fmt.Println()

	checker := tools.NewChecker()
	status := checker.CheckAll()
	all := tools.All()

	fmt.Println("External Tools:")
	fmt.Println("─────────────────────────────────────────────────────")

	installed := 0
	for i, tool := range status {
		fmt.Printf("  %-15s ", tool.Name)
		if tool.Installed {
			installed++
			green.Printf("✓ installed")
			if tool.Version != "" {
				fmt.Printf(" (%s)", tool.Version)
			}
			fmt.Println()
		} else if all[i].Required {
			red.Println("✗ not found")
		} else {
			yellow.Println("✗ not found (optional, built-in fallback available)")
		}
	}

	fmt.Printf("\n  %d/%d tools installed\n", installed, len(status))
	if installed < len(status) {
		fmt.Println("  Run 'ffufgemini install' to install missing tools")
	}
	fmt.Println()
	return nil
}
