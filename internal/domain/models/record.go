package models

import "time"

type ScanType string

const (
	ScanHiring   ScanType = "hiring"
	ScanProspect ScanType = "prospect"
)

type ScanStatus string

const (
	StatusSignalFound ScanStatus = "signal_found"
	StatusNoSignal    ScanStatus = "no_signal"
)

// SignalSummary is one append-only history entry on a scan record.
type SignalSummary struct {
	Date    string `json:"date"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// ScanRecord tracks scan state for one company, keyed by domain. The two
// scan types carry independent timestamps so a company can be eligible for
// one while cooling down on the other. Records are never deleted and the
// signal history only grows.
type ScanRecord struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Domain           string          `json:"domain"`
	LastHiringScan   *time.Time      `json:"last_hiring_scan,omitempty"`
	LastProspectScan *time.Time      `json:"last_prospect_scan,omitempty"`
	Status           ScanStatus      `json:"status"`
	Signals          []SignalSummary `json:"signals"`
}

// LastScan returns the recorded timestamp for the given scan type, or nil
// if that type was never recorded.
func (r *ScanRecord) LastScan(scanType ScanType) *time.Time {
	if scanType == ScanProspect {
		return r.LastProspectScan
	}
	return r.LastHiringScan
}

// SetLastScan updates the timestamp for the given scan type only.
func (r *ScanRecord) SetLastScan(scanType ScanType, t time.Time) {
	if scanType == ScanProspect {
		r.LastProspectScan = &t
	} else {
		r.LastHiringScan = &t
	}
}
