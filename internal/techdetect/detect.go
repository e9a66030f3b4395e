package techdetect

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/tobiasGuta/ffufGemini/internal/config"
	"github.com/tobiasGuta/ffufGemini/internal/exec"
	"github.com/tobiasGuta/ffufGemini/internal/tools"

	wappalyzergo "github.com/projectdiscovery/wappalyzergo"
)

var (
	ansiRe    = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	bracketRe = regexp.MustCompile(`\[([^\]]+)\]`)
)

type Detector struct {
	cfg *config.Config
	c   *tools.Checker
}

func NewDetector(cfg *config.Config, checker *tools.Checker) *Detector {
	return &Detector{cfg: cfg, c: checker}
}

// Detect runs technology detection against the target URL and returns the
// technology labels found. Detection failure is a normal outcome, not a
// fault: any error path returns an empty list and the pipeline continues.
func (d *Detector) Detect() []string {
	target := StripFuzzKeyword(d.cfg.URL)

	if d.c.IsInstalled("httpx") {
		return d.httpxDetect(target)
	}

	fmt.Println("[-] httpx not installed, falling back to built-in fingerprinting")
	return d.wappalyzerDetect(target)
}

// httpxDetect shells out to httpx with tech detection enabled and parses the
// technology list from its plain output.
func (d *Detector) httpxDetect(target string) []string {
	fmt.Printf("[*] Detecting technologies for %s using httpx...\n", target)

	args := []string{"-u", target, "-tech-detect"}
	r := exec.Run("httpx", args, &exec.Options{Timeout: 2 * time.Minute})

	// Echo the raw tool output so the user sees what httpx saw
	if r.Stdout != "" {
		fmt.Printf("Raw output:\n%s\n", r.Stdout)
	}
	if r.Stderr != "" {
		fmt.Printf("Raw error (if any):\n%s\n", r.Stderr)
	}

	if r.Error != nil {
		fmt.Printf("[-] Error running httpx: %s\n", strings.TrimSpace(r.Stderr))
		return nil
	}

	return ParseTechLine(r.Stdout, target)
}

// ParseTechLine scans httpx output for the first line describing the target
// and extracts the first bracket-delimited, comma-separated technology list.
// Terminal color codes are stripped before matching since httpx colorizes
// its output by default.
func ParseTechLine(output, target string) []string {
	for _, line := range strings.Split(output, "\n") {
		line = StripANSI(strings.TrimSpace(line))
		if !strings.HasPrefix(line, target) {
			continue
		}
		m := bracketRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var techs []string
		for _, t := range strings.Split(m[1], ",") {
			if t = strings.TrimSpace(t); t != "" {
				techs = append(techs, t)
			}
		}
		return techs
	}
	return nil
}

// StripANSI removes terminal color-control sequences from a string
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// StripFuzzKeyword removes the FUZZ placeholder from a URL so the bare
// target can be probed directly.
func StripFuzzKeyword(url string) string {
	return strings.ReplaceAll(url, config.FuzzKeyword, "")
}

// wappalyzerDetect fingerprints the target in-process when httpx is not
// available: fetch the page and run wappalyzer over headers and body.
func (d *Detector) wappalyzerDetect(target string) []string {
	fmt.Printf("[*] Fingerprinting %s with wappalyzer...\n", target)

	wappalyzer, err := wappalyzergo.New()
	if err != nil {
		fmt.Printf("[-] Failed to initialize wappalyzer: %v\n", err)
		return nil
	}

	client := &http.Client{
		Timeout: 15 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	resp, err := client.Get(target)
	if err != nil {
		fmt.Printf("[-] Failed to fetch target for fingerprinting: %v\n", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		fmt.Printf("[-] Failed to read target response: %v\n", err)
		return nil
	}

	fingerprints := wappalyzer.Fingerprint(resp.Header, body)

	techs := make([]string, 0, len(fingerprints))
	for tech := range fingerprints {
		techs = append(techs, tech)
	}
	sort.Strings(techs)
	return techs
}
