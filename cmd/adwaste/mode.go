package main

// sourceKind selects where term data comes from.
type sourceKind int

const (
	sourceLive sourceKind = iota
	sourceDryRun
)

func (s sourceKind) String() string {
	if s == sourceDryRun {
		return "dry-run"
	}
	return "live"
}

// backendKind selects which analysis backend runs.
type backendKind int

const (
	backendGemini backendKind = iota
	backendMock
)

func (b backendKind) String() string {
	if b == backendMock {
		return "mock"
	}
	return "gemini"
}

// runMode is the explicit enumeration of the four reachable flag
// combinations, chosen once at startup.
type runMode struct {
	source  sourceKind
	backend backendKind
}

func newRunMode(dryRun, mockGemini bool) runMode {
	mode := runMode{source: sourceLive, backend: backendGemini}
	if dryRun {
		mode.source = sourceDryRun
	}
	if mockGemini {
		mode.backend = backendMock
	}
	return mode
}
