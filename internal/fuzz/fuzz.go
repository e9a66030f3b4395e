package fuzz

import (
	"fmt"
	"strings"

	"github.com/tobiasGuta/ffufGemini/internal/config"
	"github.com/tobiasGuta/ffufGemini/internal/exec"
	"github.com/tobiasGuta/ffufGemini/internal/tools"
)

type Runner struct {
	cfg *config.Config
	c   *tools.Checker
}

func NewRunner(cfg *config.Config, checker *tools.Checker) *Runner {
	return &Runner{cfg: cfg, c: checker}
}

// Run invokes ffuf against the target with the advised extensions attached.
// ffuf inherits the terminal; its interactive output is the result of the
// run and its exit status is not inspected here.
func (r *Runner) Run(extensions []string) error {
	if !r.c.IsInstalled("ffuf") {
		return fmt.Errorf("ffuf is not installed. Run 'ffufgemini install' first")
	}

	args := BuildArgs(r.cfg.URL, r.cfg.Wordlist, extensions)
	fmt.Printf("[+] Running ffuf with command: ffuf %s\n", strings.Join(args, " "))

	exec.RunPassthrough("ffuf", args, nil)
	return nil
}

// BuildArgs constructs the ffuf argument list. Extensions get a leading dot
// and collapse into a single comma-separated -e value; an empty list means
// no -e flag at all.
func BuildArgs(url, wordlist string, extensions []string) []string {
	args := []string{"-u", url, "-w", wordlist, "-c"}
	if len(extensions) > 0 {
		args = append(args, "-e", ExtensionFlag(extensions))
	}
	return args
}

// ExtensionFlag renders a bare extension list as a dot-prefixed,
// comma-joined ffuf flag value ("php","bak" -> ".php,.bak")
func ExtensionFlag(extensions []string) string {
	dotted := make([]string, 0, len(extensions))
	for _, e := range extensions {
		dotted = append(dotted, "."+e)
	}
	return strings.Join(dotted, ",")
}
