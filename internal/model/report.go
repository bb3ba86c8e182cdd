package model

import "time"

// Report types.
const (
	ReportNoShow         = "no_show"
	ReportLate           = "late"
	ReportLiedAboutEvent = "lied_about_event"
)

// Penalty types.
const (
	PenaltyPointsLoss          = "points_loss"
	PenaltyTemporarySuspension = "temporary_suspension"
)

// ValidReportType reports whether t is a known report type.
func ValidReportType(t string) bool {
	switch t {
	case ReportNoShow, ReportLate, ReportLiedAboutEvent:
		return true
	}
	return false
}

// Report is a complaint about a participant's conduct in an event.
type Report struct {
	ID          string    `json:"id"`
	ReporterID  string    `json:"reporter_id"`
	ReportedID  string    `json:"reported_id"`
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportFilter narrows report listings. Zero values mean no filter.
type ReportFilter struct {
	ReportedID string
	Type       string
	From       *time.Time
	To         *time.Time
}

// Penalty is a sanction applied to a user after repeated reports.
type Penalty struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ReportID    string    `json:"report_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	PointsLost  int       `json:"points_lost"`
	CreatedAt   time.Time `json:"created_at"`
}
