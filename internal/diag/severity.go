package diag

// Severity orders diagnostics; Bag.Sort puts the most severe first.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError stops the compilation of the file it was reported in.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
