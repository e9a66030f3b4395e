package tools

import (
	"fmt"
	"os/exec"
	"strings"
)

type Installer struct {
	c *Checker
}

func NewInstaller() *Installer {
	return &Installer{c: NewChecker()}
}

func (i *Installer) IsInstalled(name string) bool { return i.c.IsInstalled(name) }

// InstallGoTool installs a Go-based tool via go install
func (i *Installer) InstallGoTool(t Tool) error {
	if i.c.IsInstalled(t.Binary) {
		return nil
	}
	if t.InstallCmd == "" {
		return fmt.Errorf("no install command")
	}
	out, err := exec.Command("go", "install", t.InstallCmd).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(string(out)))
	}
	return nil
}
