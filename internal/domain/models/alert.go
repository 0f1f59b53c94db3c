package models

// AlertKind enumerates advisory categories.
type AlertKind string

const (
	AlertWarning AlertKind = "warning"
	AlertInfo    AlertKind = "info"
	AlertTip     AlertKind = "tip"
)

// AlertSeverity ranks advisories for display.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// AlertEntry is an advisory derived from a day's peak hour.
type AlertEntry struct {
	ID       int           `json:"id"`
	Kind     AlertKind     `json:"type"`
	Message  string        `json:"message"`
	Severity AlertSeverity `json:"severity"`
}
