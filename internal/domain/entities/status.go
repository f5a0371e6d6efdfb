package entities

import "strings"

// StatusPolicy decides which status strings an action may write.
//
// The permissive policy accepts any non-blank action verbatim, which is how
// the workflow has always behaved. The strict policy only accepts the closed
// set of each entity and normalizes casing to the canonical spelling.
type StatusPolicy struct {
	Strict bool
}

var quoteStatuses = []QuoteStatus{
	QuoteStatusPending,
	QuoteStatusApproved,
	QuoteStatusRejected,
	QuoteStatusAccepted,
	QuoteStatusNegotiating,
	QuoteStatusCancelled,
}

var billStatuses = []BillStatus{
	BillStatusPending,
	BillStatusPaid,
	BillStatusDisputed,
	BillStatusCancelled,
}

// QuoteStatus resolves action into the status to persist. ok is false when
// the action is blank, or unknown under the strict policy.
func (p StatusPolicy) QuoteStatus(action string) (QuoteStatus, bool) {
	action = strings.TrimSpace(action)
	if action == "" {
		return "", false
	}
	if !p.Strict {
		return QuoteStatus(action), true
	}
	for _, s := range quoteStatuses {
		if strings.EqualFold(string(s), action) {
			return s, true
		}
	}
	return "", false
}

// BillStatus is QuoteStatus for bills.
func (p StatusPolicy) BillStatus(action string) (BillStatus, bool) {
	action = strings.TrimSpace(action)
	if action == "" {
		return "", false
	}
	if !p.Strict {
		return BillStatus(action), true
	}
	for _, s := range billStatuses {
		if strings.EqualFold(string(s), action) {
			return s, true
		}
	}
	return "", false
}
