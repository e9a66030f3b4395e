package techdetect

import (
	"reflect"
	"testing"
)

func TestParseTechLine(t *testing.T) {
	tests := []struct {
		name   string
		output string
		target string
		want   []string
	}{
		{
			name:   "plain tech list",
			output: "https://example.com/ [nginx,PHP,WordPress]",
			target: "https://example.com/",
			want:   []string{"nginx", "PHP", "WordPress"},
		},
		{
			name:   "whitespace around labels",
			output: "https://example.com/ [ nginx , PHP ]",
			target: "https://example.com/",
			want:   []string{"nginx", "PHP"},
		},
		{
			name:   "ansi color codes stripped",
			output: "\x1b[0mhttps://example.com/ [\x1b[36mnginx\x1b[0m,\x1b[36mPHP\x1b[0m]",
			target: "https://example.com/",
			want:   []string{"nginx", "PHP"},
		},
		{
			name:   "first matching line wins",
			output: "https://other.com/ [Apache]\nhttps://example.com/ [nginx]\nhttps://example.com/ [IIS]",
			target: "https://example.com/",
			want:   []string{"nginx"},
		},
		{
			name:   "first bracket group only",
			output: "https://example.com/ [nginx,PHP] [some title]",
			target: "https://example.com/",
			want:   []string{"nginx", "PHP"},
		},
		{
			name:   "no matching line",
			output: "https://other.com/ [nginx]",
			target: "https://example.com/",
			want:   nil,
		},
		{
			name:   "matching line without brackets",
			output: "https://example.com/",
			target: "https://example.com/",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			target: "https://example.com/",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTechLine(tt.output, tt.target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTechLine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripFuzzKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/FUZZ", "https://example.com/"},
		{"https://example.com/FUZZ.php", "https://example.com/.php"},
		{"https://example.com/admin/FUZZ", "https://example.com/admin/"},
		{"https://example.com/", "https://example.com/"},
	}

	for _, tt := range tests {
		if got := StripFuzzKeyword(tt.in); got != tt.want {
			t.Errorf("StripFuzzKeyword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;32mnginx\x1b[0m"); got != "nginx" {
		t.Errorf("StripANSI() = %q, want %q", got, "nginx")
	}
	if got := StripANSI("plain"); got != "plain" {
		t.Errorf("StripANSI() = %q, want %q", got, "plain")
	}
}
