package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateGraphFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"dot", "dot", false},
		{"svg", "svg", false},
		{"png", "png", false},
		{"pdf", "pdf", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGraphFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateGraphFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestRunGraphDOT(t *testing.T) {
	c := New(io.Discard, LogInfo)
	ctx := withLogger(context.Background(), c.Logger)

	output := filepath.Join(t.TempDir(), "corne.dot")
	opts := graphOpts{format: formatDOT, output: output}
	if err := c.runGraph(ctx, "corne", &opts); err != nil {
		t.Fatalf("runGraph() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading graph output: %v", err)
	}

	dot := string(data)
	if !strings.HasPrefix(dot, "digraph") {
		t.Errorf("graph output should be DOT source, got %q", dot[:min(len(dot), 40)])
	}
	for _, layer := range []string{"base", "mo1", "mo2", "mo3"} {
		if !strings.Contains(dot, layer) {
			t.Errorf("graph output missing layer %q", layer)
		}
	}
}
