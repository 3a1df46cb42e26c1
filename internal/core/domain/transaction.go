package domain

import (
	"time"
)

// TxStatus is the confirmation state of a submitted transaction.
type TxStatus string

const (
	TxPending TxStatus = "pending"
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
	TxTimeout TxStatus = "timeout"
)

// TxOutcome is what the ledger reports once a transaction is committed.
type TxOutcome struct {
	Hash     string
	Success  bool
	VMStatus string
	Version  uint64
}

// TxRecord is a journal entry for a transaction this service submitted or
// was asked to track.
type TxRecord struct {
	ID        string    `json:"id"`
	Hash      string    `json:"hash"`
	Sender    string    `json:"sender"`
	Function  string    `json:"function"`
	Arguments []any     `json:"arguments"`
	Status    TxStatus  `json:"status"`
	VMStatus  string    `json:"vm_status,omitempty"`
	Version   uint64    `json:"version,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
