package store

import (
	"fmt"

	"github.com/maksimkurb/quick-nav/src/internal/models"
)

// TxState is the state of a reorder transaction.
type TxState int

const (
	TxIdle TxState = iota
	TxPending
	TxCommitted
	TxReverted
)

func (s TxState) String() string {
	switch s {
	case TxIdle:
		return "idle"
	case TxPending:
		return "pending"
	case TxCommitted:
		return "committed"
	case TxReverted:
		return "reverted"
	default:
		return fmt.Sprintf("TxState(%d)", int(s))
	}
}

// Transaction records one reorder attempt.
type Transaction struct {
	CategoryID int
	// Before is the sequence the move was computed from.
	Before []models.Category
	// Proposed is the sequence expected on the server once the move is saved:
	// renumbered 1..N for the bulk strategy, shifted for the single one.
	Proposed []models.Category
	State    TxState
	// History lists every state the transaction passed through, starting at TxIdle.
	History []TxState
	Err     error
}

func newTransaction(categoryID int, before, proposed []models.Category) *Transaction {
	return &Transaction{
		CategoryID: categoryID,
		Before:     before,
		Proposed:   proposed,
		State:      TxIdle,
		History:    []TxState{TxIdle},
	}
}

// transition moves the transaction to next. Only idle->pending and
// pending->committed|reverted are valid.
func (tx *Transaction) transition(next TxState) error {
	valid := false
	switch tx.State {
	case TxIdle:
		valid = next == TxPending
	case TxPending:
		valid = next == TxCommitted || next == TxReverted
	}
	if !valid {
		return fmt.Errorf("invalid reorder transition %s -> %s", tx.State, next)
	}

	tx.State = next
	tx.History = append(tx.History, next)
	return nil
}

// Done reports whether the transaction reached a final state.
func (tx *Transaction) Done() bool {
	return tx.State == TxCommitted || tx.State == TxReverted
}

func (tx *Transaction) clone() Transaction {
	out := *tx
	out.Before = models.CloneCategories(tx.Before)
	out.Proposed = models.CloneCategories(tx.Proposed)
	out.History = append([]TxState(nil), tx.History...)
	return out
}
