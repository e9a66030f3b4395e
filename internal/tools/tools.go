package tools

type Tool struct {
	Name       string
	Binary     string
	InstallCmd string
	Required   bool
}

type ToolStatus struct {
	Name, Version string
	Installed     bool
}

// All returns the external tools this pipeline drives.
// httpx is technically optional: without it technology detection falls back
// to the built-in wappalyzer fingerprinter.
func All() []Tool {
	return []Tool{
		// HTTP probing / technology detection
		{"httpx", "httpx", "github.com/projectdiscovery/httpx/cmd/httpx@latest", false},

		// Fuzzing
		{"ffuf", "ffuf", "github.com/ffuf/ffuf/v2@latest", true},
	}
}
