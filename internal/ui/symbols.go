package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Running, reachable, active
	SymbolFail    = "✗" // Failed, dead, unreachable
	SymbolPending = "○" // Inactive or unknown
)
