package types

// LogEntryType tags who a transcript entry belongs to.
type LogEntryType string

const (
	LogEntryTypeSystem LogEntryType = "system"
	LogEntryTypePlayer LogEntryType = "player"
)

// LogEntry is one line of the game transcript, rendered in emission order.
type LogEntry struct {
	Type LogEntryType `json:"type"`
	Text string       `json:"text"`
}

// SystemEntry returns a system message entry
func SystemEntry(text string) LogEntry {
	return LogEntry{Type: LogEntryTypeSystem, Text: text}
}

// PlayerEntry returns an echo of the player's raw input
func PlayerEntry(text string) LogEntry {
	return LogEntry{Type: LogEntryTypePlayer, Text: text}
}
