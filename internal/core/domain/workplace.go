package domain

import "github.com/shopspring/decimal"

// Workplace represents a place of work with its own billing rate, bonus
// percentage and grace-period policy. RelatedTo links two workplaces that
// share a daily hour budget; the reference is stored one-way but treated as
// symmetric everywhere it is consulted.
type Workplace struct {
	WorkplaceID        string          `json:"workplaceID"`
	Name               string          `json:"name"`
	Color              string          `json:"color"`
	HourlyRate         decimal.Decimal `json:"hourlyRate"`
	BonusPercent       decimal.Decimal `json:"bonusPercent"`
	GracePeriodMinutes int             `json:"gracePeriodMinutes"`
	RelatedTo          *string         `json:"relatedTo,omitempty"`
	AuditFields
}

// IsRelatedTo reports whether this workplace declares a relation to otherID.
func (w *Workplace) IsRelatedTo(otherID string) bool {
	return w.RelatedTo != nil && *w.RelatedTo == otherID
}

// DefaultGracePeriodMinutes is applied when a workplace is created without an
// explicit grace period.
const DefaultGracePeriodMinutes = 60
