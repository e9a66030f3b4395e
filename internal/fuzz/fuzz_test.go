package fuzz

import (
	"reflect"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wordlist   string
		extensions []string
		want       []string
	}{
		{
			name:       "with extensions",
			url:        "https://example.com/FUZZ",
			wordlist:   "/usr/share/wordlists/common.txt",
			extensions: []string{"php", "bak", "html"},
			want: []string{
				"-u", "https://example.com/FUZZ",
				"-w", "/usr/share/wordlists/common.txt",
				"-c",
				"-e", ".php,.bak,.html",
			},
		},
		{
			name:     "without extensions",
			url:      "https://example.com/FUZZ",
			wordlist: "words.txt",
			want: []string{
				"-u", "https://example.com/FUZZ",
				"-w", "words.txt",
				"-c",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildArgs(tt.url, tt.wordlist, tt.extensions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtensionFlag(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"php", "bak", "html"}, ".php,.bak,.html"},
		{[]string{"php"}, ".php"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := ExtensionFlag(tt.in); got != tt.want {
			t.Errorf("ExtensionFlag(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
