package model

import "time"

// NullString is the placeholder recorded for transaction fields the model left out.
const NullString = "null"

// Transaction is a spending record extracted from a chat message.
type Transaction struct {
	PhoneNumber     string  `json:"phoneNumber"`
	SpentCategory   string  `json:"spentCategory"`
	MethodOfPayment string  `json:"methodeOfPayment"`
	Receiver        string  `json:"receiver"`
	Amount          float64 `json:"amount"`
}

// Kind implements Payload.
func (Transaction) Kind() PayloadKind { return PayloadTransaction }

func (Transaction) isPayload() {}

// HasCategory reports whether the model supplied a spending category.
func (t Transaction) HasCategory() bool {
	return t.SpentCategory != "" && t.SpentCategory != NullString
}

// HasReceiver reports whether the model supplied a receiver.
func (t Transaction) HasReceiver() bool {
	return t.Receiver != "" && t.Receiver != NullString
}

// TransactionRecord is a persisted Transaction.
type TransactionRecord struct {
	CreatedAt time.Time
	ID        string
	Transaction
}
