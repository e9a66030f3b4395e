package tools

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

type Checker struct{}

func NewChecker() *Checker { return &Checker{} }

func (c *Checker) IsInstalled(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (c *Checker) GetMissingRequired() []string {
	var missing []string
	for _, t := range All() {
		if t.Required && !c.IsInstalled(t.Binary) {
			missing = append(missing, t.Name)
		}
	}
	return missing
}

func (c *Checker) CheckAll() []ToolStatus {
	all := All()
	status := make([]ToolStatus, 0, len(all))
	for _, t := range all {
		status = append(status, c.check(t))
	}
	return status
}

func (c *Checker) check(t Tool) ToolStatus {
	installed := c.IsInstalled(t.Binary)
	s := ToolStatus{Name: t.Name, Installed: installed}
	if installed {
		s.Version = c.versionFast(t.Binary)
	}
	return s
}

// versionFast tries to get version quickly with a short timeout
func (c *Checker) versionFast(bin string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, "--version")
	out, err := cmd.Output()
	if err == nil && len(out) > 0 {
		v := strings.TrimSpace(strings.Split(string(out), "\n")[0])
		if len(v) > 40 {
			return v[:40] + "..."
		}
		return v
	}
	return ""
}
