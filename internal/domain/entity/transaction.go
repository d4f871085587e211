package entity

import "time"

// TxStatus is the lifecycle state of a submitted transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
)

// Valid reports whether s is a known status.
func (s TxStatus) Valid() bool {
	return s == TxPending || s == TxConfirmed
}

// Transaction is a submitted operation tracked for the wallet modal.
type Transaction struct {
	Hash        string    `json:"hash"`
	Owner       string    `json:"owner"`
	Status      TxStatus  `json:"status"`
	ChainID     int64     `json:"chainId,omitempty"`
	Description string    `json:"description,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// FilterTransactions returns the transactions owned by owner with the given status, in input order.
// The result is never nil.
func FilterTransactions(txs []Transaction, owner string, status TxStatus) []Transaction {
	out := make([]Transaction, 0)
	for _, tx := range txs {
		if tx.Owner == owner && tx.Status == status {
			out = append(out, tx)
		}
	}
	return out
}
