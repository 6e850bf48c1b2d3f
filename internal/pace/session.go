package pace

import (
	"sync"

	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"gorm.io/gorm"
)

// SimulationSession is a two state machine for checking a purchase
// before committing it. It is either idle or holds exactly one pending
// purchase together with its classification, until the purchase is
// confirmed into the ledger or cancelled.
//
// A session is safe for concurrent use. Callers keep one session per
// budget so two devices cannot hold competing pending purchases.
type SimulationSession struct {
	db *gorm.DB

	mu       sync.Mutex
	purchase *models.Purchase
	result   Result
}

// NewSimulationSession returns an idle session on the given database.
func NewSimulationSession(db *gorm.DB) *SimulationSession {
	return &SimulationSession{db: db}
}

// Simulate classifies a prospective purchase and marks it pending.
// The session must be idle, otherwise ErrSimulationPending is
// returned and the earlier pending purchase stays untouched.
//
// Nothing is written to the database here.
func (s *SimulationSession) Simulate(purchase models.Purchase, today types.Date) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.purchase != nil {
		return Result{}, ErrSimulationPending
	}

	var envelope models.Envelope
	if err := s.db.First(&envelope, purchase.EnvelopeID).Error; err != nil {
		return Result{}, err
	}

	result, err := Classify(envelope, &purchase, today)
	if err != nil {
		return Result{}, err
	}

	if purchase.Date.IsZero() {
		purchase.Date = today
	}

	s.purchase = &purchase
	s.result = result

	return result, nil
}

// Confirm commits the pending purchase: it is appended to the purchase
// log and the envelope's spent amount grows by its amount, both in one
// transaction. On success the session is idle again; on failure it
// stays pending so the caller can retry or cancel.
func (s *SimulationSession) Confirm() (models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.purchase == nil {
		return models.Purchase{}, ErrNothingPending
	}

	purchase := *s.purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		var envelope models.Envelope
		if err := tx.First(&envelope, purchase.EnvelopeID).Error; err != nil {
			return err
		}

		return tx.Model(&envelope).Update("spent", envelope.Spent.Add(purchase.Amount)).Error
	})
	if err != nil {
		return models.Purchase{}, err
	}

	s.purchase = nil
	s.result = Result{}

	return purchase, nil
}

// Cancel discards the pending purchase. Cancelling an idle session is
// a no-op, not an error.
func (s *SimulationSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchase = nil
	s.result = Result{}
}

// Pending returns the pending purchase and its classification, or nil
// when the session is idle.
func (s *SimulationSession) Pending() (*models.Purchase, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.purchase == nil {
		return nil, Result{}
	}

	purchase := *s.purchase
	return &purchase, s.result
}
