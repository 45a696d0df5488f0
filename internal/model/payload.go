// Package model defines the data types shared across pockit.
package model

// PayloadKind names the variant of structured data attached to a reply.
type PayloadKind string

const (
	// PayloadNone means the reply carried no structured data.
	PayloadNone PayloadKind = "none"
	// PayloadMilestone means the reply carried a savings milestone.
	PayloadMilestone PayloadKind = "milestone"
	// PayloadTransaction means the reply carried a spending transaction.
	PayloadTransaction PayloadKind = "transaction"
)

// Payload is the structured data extracted from a classifier reply.
// It is sealed: only Milestone and Transaction implement it. A nil Payload
// means there was nothing to record.
type Payload interface {
	Kind() PayloadKind
	isPayload()
}

// KindOf returns the kind of p, treating nil as PayloadNone.
func KindOf(p Payload) PayloadKind {
	if p == nil {
		return PayloadNone
	}
	return p.Kind()
}

// Reply is a normalized classifier response.
type Reply struct {
	Payload Payload
	Message string
}
