package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tobiasGuta/ffufGemini/internal/advisor"
	"github.com/tobiasGuta/ffufGemini/internal/config"
	"github.com/tobiasGuta/ffufGemini/internal/debug"
	"github.com/tobiasGuta/ffufGemini/internal/runner"
	"github.com/tobiasGuta/ffufGemini/internal/version"
)

var (
	cfg     = *config.DefaultConfig()
	rootCmd = &cobra.Command{
		Use:   "ffufgemini",
		Short: "Gemini-assisted web fuzzing",
		Long: `ffufGemini - fuzz with Gemini-assisted extension discovery.

Fingerprints the target with httpx, asks Gemini which file extensions are
worth fuzzing, then runs ffuf with those extensions attached.

Install: go install github.com/tobiasGuta/ffufGemini@latest`,
		RunE:          runFuzz,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&cfg.URL, "url", "u", "", "Target URL with FUZZ keyword")
	rootCmd.Flags().StringVarP(&cfg.Wordlist, "wordlist", "w", "", "Path to wordlist")
	rootCmd.Flags().IntVar(&cfg.MaxExtensions, "max-extensions", 5, "Max number of extensions to use")
	rootCmd.Flags().StringVar(&cfg.Model, "model", "", "Gemini model to query (default gemini-2.0-flash)")
	rootCmd.Flags().BoolVar(&cfg.Debug, "debug", false, "Show detailed timing logs for each tool execution")

	rootCmd.MarkFlagRequired("url")
	rootCmd.MarkFlagRequired("wordlist")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	// Create the settings template on first run
	advisor.EnsureSettingsFile()
	return rootCmd.Execute()
}

func runFuzz(cmd *cobra.Command, args []string) error {
	printBanner()

	cfg.LoadEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Debug {
		debug.Enable()
	}

	r := runner.New(&cfg)
	return r.Run()
}

func printBanner() {
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	red.Print(`
   ____ ____      ____ ______               _       _
  / __// __/_  __/ __// ____/___  ____ ___ (_)___  (_)
 / /_ / /_ / / / / /_/ / __/ _ \/ __ '__ \/ / __ \/ /
/ __// __// /_/ / __/ /_/ /  __/ / / / / / / / / / /
\/   \/    \__,_\/   \____/\___/_/ /_/ /_/_/_/ /_/_/
`)
	fmt.Println()
	cyan.Print("  Gemini-assisted fuzzing")
	gray.Printf("  v%s\n", version.Version)
	fmt.Println()
}
