package main

import "testing"

func TestNewRunMode(t *testing.T) {
	tests := []struct {
		name        string
		dryRun      bool
		mockGemini  bool
		wantSource  sourceKind
		wantBackend backendKind
	}{
		{"live gemini", false, false, sourceLive, backendGemini},
		{"live mock", false, true, sourceLive, backendMock},
		{"dry-run gemini", true, false, sourceDryRun, backendGemini},
		{"dry-run mock", true, true, sourceDryRun, backendMock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := newRunMode(tt.dryRun, tt.mockGemini)
			if mode.source != tt.wantSource {
				t.Errorf("source = %v, want %v", mode.source, tt.wantSource)
			}
			if mode.backend != tt.wantBackend {
				t.Errorf("backend = %v, want %v", mode.backend, tt.wantBackend)
			}
		})
	}
}

func TestKindStrings(t *testing.T) {
	if got := sourceLive.String(); got != "live" {
		t.Errorf("sourceLive = %q", got)
	}
	if got := sourceDryRun.String(); got != "dry-run" {
		t.Errorf("sourceDryRun = %q", got)
	}
	if got := backendGemini.String(); got != "gemini" {
		t.Errorf("backendGemini = %q", got)
	}
	if got := backendMock.String(); got != "mock" {
		t.Errorf("backendMock = %q", got)
	}
}
