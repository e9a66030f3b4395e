package runner

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/tobiasGuta/ffufGemini/internal/advisor"
	"github.com/tobiasGuta/ffufGemini/internal/config"
	"github.com/tobiasGuta/ffufGemini/internal/debug"
	"github.com/tobiasGuta/ffufGemini/internal/fuzz"
	"github.com/tobiasGuta/ffufGemini/internal/techdetect"
	"github.com/tobiasGuta/ffufGemini/internal/tools"
)

// Runner executes the three-stage pipeline: fingerprint the target, ask
// Gemini for extensions, then hand off to ffuf. Detection and advisory
// failures degrade (the fuzz stage always runs); only broken configuration
// is fatal, and that is rejected before any stage starts.
type Runner struct {
	cfg     *config.Config
	checker *tools.Checker
}

func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:     cfg,
		checker: tools.NewChecker(),
	}
}

func (r *Runner) Run() error {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if missing := r.checker.GetMissingRequired(); len(missing) > 0 {
		yellow.Printf("⚠ Missing required tools: %v\n", missing)
		fmt.Println("  Run 'ffufgemini install' to install them")
	}

	if !r.cfg.HasFuzzKeyword() {
		yellow.Println("[-] Warning: FUZZ keyword is not in the URL. Extension fuzzing won't work.")
	}

	// Stage 1: technology detection. An empty result here is normal and the
	// run continues with an undetected target.
	stageStart := debug.LogStageStart("techdetect")
	techs := techdetect.NewDetector(r.cfg, r.checker).Detect()
	debug.LogStageEnd("techdetect", stageStart)

	if len(techs) == 0 {
		fmt.Println("[-] No technologies detected.")
	} else {
		green.Printf("[+] Detected technologies: %v\n", techs)
	}

	// Stage 2: extension advice. Degrades to no -e flag on any failure.
	fmt.Println("[*] Asking Gemini for suggested extensions...")
	stageStart = debug.LogStageStart("advisor")

	spinner := tools.NewSpinner("Waiting for Gemini...")
	spinner.Start()
	extensions := advisor.NewClient(r.cfg).SuggestExtensions(r.cfg.URL, techs, r.cfg.MaxExtensions)
	spinner.Stop()

	debug.LogStageEnd("advisor", stageStart)

	if len(extensions) == 0 {
		fmt.Println("[-] No extensions suggested. Proceeding without -e flag.")
	} else {
		green.Printf("[+] Gemini Suggested Extensions: %v\n", extensions)
	}

	// Stage 3: fuzzing. ffuf owns the terminal from here on.
	stageStart = debug.LogStageStart("fuzz")
	err := fuzz.NewRunner(r.cfg, r.checker).Run(extensions)
	debug.LogStageEnd("fuzz", stageStart)
	if err != nil {
		return err
	}

	debug.Summary()
	return nil
}
