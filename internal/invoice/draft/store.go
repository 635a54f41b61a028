// Package draft keeps the invoices being built on open billing screens.
package draft

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// IdleTTL is how long an untouched draft survives before Open discards it.
const IdleTTL = 24 * time.Hour

var (
	ErrNotFound         = apperror.NotFound("draft_not_found")
	ErrCommitInProgress = apperror.Precondition("draft_commit_in_progress")
)

// View is a draft with its computed totals.
type View struct {
	ID         string                     `json:"id"`
	Draft      invoicedomain.InvoiceDraft `json:"draft"`
	Totals     invoicedomain.Totals       `json:"totals"`
	NextNumber string                     `json:"next_number"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

type session struct {
	draft      invoicedomain.InvoiceDraft
	nextNumber string
	updatedAt  time.Time
	// committing is set while the draft is being written; the session is
	// read-only until it clears.
	committing bool
}

type Params struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	Invoices  invoicedomain.Service
	Customers customerdomain.Service
}

// Store owns the drafts. Every change replaces the stored value with the
// one returned by the draft's methods.
type Store struct {
	log       *zap.Logger
	clock     clock.Clock
	invoices  invoicedomain.Service
	customers customerdomain.Service

	mu       sync.Mutex
	sessions map[string]*session
}

func NewStore(p Params) *Store {
	return &Store{
		log:       p.Log.Named("invoice.draft"),
		clock:     p.Clock,
		invoices:  p.Invoices,
		customers: p.Customers,
		sessions:  make(map[string]*session),
	}
}

func (s *Store) Open(ctx context.Context) (View, error) {
	today := dates.Today(s.clock)
	next, err := s.invoices.NextInvoiceNumber(ctx, today)
	if err != nil {
		return View{}, err
	}

	now := s.clock.Now()
	id := uuid.NewString()
	d := invoicedomain.InvoiceDraft{}.Clear().WithDate(today)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIdle(now)
	s.sessions[id] = &session{draft: d, nextNumber: next, updatedAt: now}
	return s.viewLocked(id), nil
}

func (s *Store) Get(_ context.Context, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return View{}, ErrNotFound
	}
	return s.viewLocked(id), nil
}

// IDs lists the open drafts, most recently touched first.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.sessions[ids[i]].updatedAt.After(s.sessions[ids[j]].updatedAt)
	})
	return ids
}

func (s *Store) SetCustomer(ctx context.Context, id string, customerID snowflake.ID) (View, error) {
	if err := s.editable(id); err != nil {
		return View{}, err
	}
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return View{}, err
	}
	return s.update(id, func(d invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error) {
		return d.WithCustomer(customer.ID, customer.Name), nil
	})
}

// SetCustomerByName selects the customer with this name, creating it first
// when the shop has not billed them before.
func (s *Store) SetCustomerByName(ctx context.Context, id string, req customerdomain.CreateCustomerRequest) (View, bool, error) {
	if err := s.editable(id); err != nil {
		return View{}, false, err
	}
	customer, created, err := s.customers.FindOrCreateByName(ctx, req)
	if err != nil {
		return View{}, false, err
	}
	view, err := s.update(id, func(d invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error) {
		return d.WithCustomer(customer.ID, customer.Name), nil
	})
	return view, created, err
}

func (s *Store) AddLine(ctx context.Context, id string, req invoicedomain.QuoteRequest) (View, error) {
	if err := s.editable(id); err != nil {
		return View{}, err
	}
	line, err := s.invoices.BuildLine(ctx, req)
	if err != nil {
		return View{}, err
	}
	return s.update(id, func(d invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error) {
		return d.AddLine(line), nil
	})
}

func (s *Store) RemoveLine(_ context.Context, id string, index int) (View, error) {
	return s.update(id, func(d invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error) {
		return d.RemoveLine(index)
	})
}

func (s *Store) SetSurcharges(_ context.Context, id string, surcharges invoicedomain.Surcharges) (View, error) {
	if err := surcharges.Validate(); err != nil {
		return View{}, err
	}
	return s.update(id, func(d invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error) {
		return d.WithSurcharges(surcharges), nil
	})
}

func (s *Store) SetPayment(_ context.Context, id string, mode paymentdomain.Mode, reference string) (View, error) {
	if mode != "" && !mode.Valid() {
		return View{}, invoicedomain.ErrInvalidPaymentMode
	}
	return s.update(id, func(d invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error) {
		return d.WithPayment(mode, reference), nil
	})
}

// SetDate back-dates the draft and re-renders the number preview for that date.
func (s *Store) SetDate(ctx context.Context, id string, date time.Time) (View, error) {
	if err := s.editable(id); err != nil {
		return View{}, err
	}
	date = dates.Truncate(date)
	next, err := s.invoices.NextInvoiceNumber(ctx, date)
	if err != nil {
		return View{}, err
	}
	view, err := s.update(id, func(d invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error) {
		return d.WithDate(date), nil
	})
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.nextNumber = next
		view = s.viewLocked(id)
	}
	return view, nil
}

func (s *Store) Discard(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if sess.committing {
		return ErrCommitInProgress
	}
	delete(s.sessions, id)
	return nil
}

// Commit commits the draft. On success the draft is cleared for the next
// invoice and shows the number it will get; on failure it is left as it was.
// The draft cannot be changed or committed again until the commit returns.
func (s *Store) Commit(ctx context.Context, id string) (invoicedomain.CommitResult, View, error) {
	current, err := s.beginCommit(id)
	if err != nil {
		return invoicedomain.CommitResult{}, View{}, err
	}

	result, err := s.invoices.Commit(ctx, current.Draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return result, View{}, err
	}
	sess.committing = false
	if err != nil {
		return invoicedomain.CommitResult{}, s.viewLocked(id), err
	}
	sess.draft = sess.draft.Clear().WithDate(dates.Today(s.clock))
	sess.nextNumber = result.NextNumber
	sess.updatedAt = s.clock.Now()

	s.log.Info("draft committed",
		zap.String("draft_id", id),
		zap.String("invoice_number", result.Invoice.InvoiceNumber),
	)
	return result, s.viewLocked(id), nil
}

func (s *Store) beginCommit(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return View{}, ErrNotFound
	}
	if sess.committing {
		return View{}, ErrCommitInProgress
	}
	sess.committing = true
	return s.viewLocked(id), nil
}

func (s *Store) editable(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if sess.committing {
		return ErrCommitInProgress
	}
	return nil
}

func (s *Store) update(id string, fn func(invoicedomain.InvoiceDraft) (invoicedomain.InvoiceDraft, error)) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return View{}, ErrNotFound
	}
	if sess.committing {
		return View{}, ErrCommitInProgress
	}
	next, err := fn(sess.draft)
	if err != nil {
		return View{}, err
	}
	sess.draft = next
	sess.updatedAt = s.clock.Now()
	return s.viewLocked(id), nil
}

func (s *Store) viewLocked(id string) View {
	sess := s.sessions[id]
	return View{
		ID:         id,
		Draft:      sess.draft,
		Totals:     sess.draft.Totals(),
		NextNumber: sess.nextNumber,
		UpdatedAt:  sess.updatedAt,
	}
}

func (s *Store) evictIdle(now time.Time) {
	for id, sess := range s.sessions {
		if !sess.committing && now.Sub(sess.updatedAt) > IdleTTL {
			delete(s.sessions, id)
		}
	}
}
