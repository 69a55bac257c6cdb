package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// classificationWarning is shown when a Replace from mobile would wipe
// desktop-only classifications.
const classificationWarning = "The desktop has %d classified transaction(s) in this account. " +
	"Replacing it with mobile data will discard those classifications."

// stalenessPolicy warns when the destination looks more complete or more
// recent than the source.
type stalenessPolicy struct{}

func NewWarningPolicy() WarningPolicy {
	return stalenessPolicy{}
}

func (stalenessPolicy) Warn(c models.SyncComparison, mode models.SyncMode) (string, bool) {
	if c.DestCount == 0 {
		return "", false
	}

	if mode == models.Replace && c.DestCount > c.SourceCount {
		return fmt.Sprintf(
			"Destination has %d transaction(s), source has %d. Replace will remove %d transaction(s).",
			c.DestCount, c.SourceCount, c.DestCount-c.SourceCount,
		), true
	}

	if mode != models.CreateNew && c.DestLatestDate != nil &&
		(c.SourceLatestDate == nil || c.DestLatestDate.After(*c.SourceLatestDate)) {
		return fmt.Sprintf(
			"Destination has newer data (latest %s) than the source (latest %s).",
			c.DestLatestDate, dateOrNone(c.SourceLatestDate),
		), true
	}

	return "", false
}

func dateOrNone(d *models.Date) string {
	if d == nil {
		return "none"
	}
	return d.String()
}
