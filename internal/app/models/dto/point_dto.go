package dto

import (
	"time"

	"github.com/emre/classpulse/internal/app/models"
)

// AwardPointRequest creates a new ledger entry. Section falls back to the
// caller's class section when omitted. Points/reason bounds are enforced at
// persistence time by the service, which collects all violations.
type AwardPointRequest struct {
	Points  int    `json:"points"`
	Reason  string `json:"reason"`
	Section string `json:"section"`
}

// UpdatePointRequest edits an existing ledger entry (owner or admin)
type UpdatePointRequest struct {
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// AwardPointResponse returns the created entry with its notification
type AwardPointResponse struct {
	Point        models.EngagementPoint `json:"point"`
	Notification models.Notification    `json:"notification"`
}

// HistoryFilters are the optional query filters for the history listing
type HistoryFilters struct {
	Section string
	From    time.Time
	To      time.Time
}
