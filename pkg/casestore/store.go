// Package casestore persists the Case aggregate and its append-only
// history with per-case optimistic concurrency, grounded on
// pkg/services/session_service.go's transactional create and
// pkg/queue/worker.go's claim-via-conditional-update idiom.
package casestore

import (
	"context"
	"fmt"
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent/businesscase"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent/historyentry"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
	"github.com/google/uuid"
)

// Mutator is supplied to AtomicUpdate: given the current Case, it returns
// the mutated Case plus the HistoryEntry rows to append, or an error to
// abort the whole update without touching storage.
type Mutator func(current *casemodel.Case) (*casemodel.Case, []casemodel.HistoryEntry, error)

// ListFilter narrows List queries.
type ListFilter struct {
	Statuses []statemachine.Status
	Limit    int
	Offset   int
}

// Store is the Case Store persistence contract.
type Store interface {
	Create(ctx context.Context, c *casemodel.Case) error
	Get(ctx context.Context, caseID string) (*casemodel.Case, error)
	AtomicUpdate(ctx context.Context, caseID string, expectedVersion int, mutate Mutator) (*casemodel.Case, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]*casemodel.Case, int, error)
	ListByRole(ctx context.Context, statuses []statemachine.Status, filter ListFilter) ([]*casemodel.Case, int, error)
}

// EntStore is Store backed by PostgreSQL through ent.
type EntStore struct {
	client *ent.Client
}

// NewEntStore wraps an already-opened ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// Create inserts a brand-new case at version 1 with an INTAKE status row
// and no artifact slots.
func (s *EntStore) Create(ctx context.Context, c *casemodel.Case) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("casestore: begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.BusinessCase.Create().
		SetID(c.CaseID).
		SetOwnerUserID(c.OwnerUserID).
		SetTitle(c.Title).
		SetProblemStatement(c.ProblemStatement).
		SetRelevantLinks(toEntLinks(c.RelevantLinks)).
		SetStatus(businesscase.Status(c.Status)).
		SetVersion(c.Version).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrConflict
		}
		return fmt.Errorf("casestore: create case: %w", err)
	}

	if err := appendHistory(ctx, tx, c.CaseID, c.History); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("casestore: commit: %w", err)
	}
	return nil
}

// Get loads one case with its full history, ordered by sequence_number.
func (s *EntStore) Get(ctx context.Context, caseID string) (*casemodel.Case, error) {
	row, err := s.client.BusinessCase.Query().
		Where(businesscase.IDEQ(caseID)).
		WithHistory(func(q *ent.HistoryEntryQuery) {
			q.Order(ent.Asc(historyentry.FieldSequenceNumber))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("casestore: get case: %w", err)
	}
	return fromEnt(row), nil
}

// AtomicUpdate is the optimistic-concurrency write path: read, run mutate,
// commit the case row plus new history rows only if the stored version
// still equals expectedVersion. A bulk UpdateQuery with both the id and
// the expected version in its Where clause reports its affected-row count,
// which distinguishes a successful CAS (1 row) from a lost race (0 rows) —
// the same "claim via conditional SQL, check the outcome" idiom as
// Worker.claimNextSession's FOR UPDATE SKIP LOCKED claim, generalized from
// row-locking to version-based compare-and-swap.
func (s *EntStore) AtomicUpdate(ctx context.Context, caseID string, expectedVersion int, mutate Mutator) (*casemodel.Case, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("casestore: begin tx: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.BusinessCase.Query().
		Where(businesscase.IDEQ(caseID)).
		WithHistory(func(q *ent.HistoryEntryQuery) {
			q.Order(ent.Asc(historyentry.FieldSequenceNumber))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("casestore: get case for update: %w", err)
	}
	if row.Version != expectedVersion {
		return nil, ErrConcurrencyConflict
	}

	current := fromEnt(row)
	mutated, newHistory, err := mutate(current)
	if err != nil {
		return nil, err
	}
	mutated.Version = expectedVersion + 1
	mutated.UpdatedAt = time.Now().UTC()

	affected, err := tx.BusinessCase.Update().
		Where(businesscase.IDEQ(caseID), businesscase.VersionEQ(expectedVersion)).
		SetStatus(businesscase.Status(mutated.Status)).
		SetVersion(mutated.Version).
		SetPrdDraft(toEntSlot(mutated.PRDDraft)).
		SetSystemDesign(toEntSlot(mutated.SystemDesign)).
		SetEffortEstimate(toEntSlot(mutated.EffortEstimate)).
		SetCostEstimate(toEntSlot(mutated.CostEstimate)).
		SetValueProjection(toEntSlot(mutated.ValueProjection)).
		SetFinancialSummary(toEntSlot(mutated.FinancialSummary)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("casestore: apply update: %w", err)
	}
	if affected == 0 {
		return nil, ErrConcurrencyConflict
	}

	if err := appendHistory(ctx, tx, caseID, newHistory); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("casestore: commit: %w", err)
	}

	mutated.History = append(current.History, newHistory...)
	return mutated, nil
}

// ListByOwner backs a case initiator's "my cases" inbox.
func (s *EntStore) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]*casemodel.Case, int, error) {
	q := s.client.BusinessCase.Query().Where(businesscase.OwnerUserIDEQ(ownerUserID))
	return s.list(ctx, q, filter)
}

// ListByRole backs a reviewer's pending-review inbox: every case whose
// status is in the caller-supplied status set (the phase(s) the caller's
// role reviews).
func (s *EntStore) ListByRole(ctx context.Context, statuses []statemachine.Status, filter ListFilter) ([]*casemodel.Case, int, error) {
	raw := make([]businesscase.Status, len(statuses))
	for i, st := range statuses {
		raw[i] = businesscase.Status(st)
	}
	q := s.client.BusinessCase.Query().Where(businesscase.StatusIn(raw...))
	return s.list(ctx, q, filter)
}

func (s *EntStore) list(ctx context.Context, q *ent.BusinessCaseQuery, filter ListFilter) ([]*casemodel.Case, int, error) {
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("casestore: count: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := q.Order(ent.Desc(businesscase.FieldUpdatedAt)).
		Limit(limit).
		Offset(filter.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("casestore: list: %w", err)
	}

	out := make([]*casemodel.Case, len(rows))
	for i, r := range rows {
		out[i] = fromEnt(r)
	}
	return out, total, nil
}

func appendHistory(ctx context.Context, tx *ent.Tx, caseID string, entries []casemodel.HistoryEntry) error {
	for _, h := range entries {
		_, err := tx.HistoryEntry.Create().
			SetID(uuid.New().String()).
			SetCaseID(caseID).
			SetSequenceNumber(h.SequenceNumber).
			SetTimestamp(h.Timestamp).
			SetActorUserID(h.ActorUserID).
			SetActorRole(string(h.ActorRole)).
			SetSource(historyentry.Source(h.Source)).
			SetEventKind(string(h.EventKind)).
			SetFromStatus(string(h.FromStatus)).
			SetToStatus(string(h.ToStatus)).
			SetMessage(h.Message).
			SetArtifactRef(h.ArtifactRef).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("casestore: append history: %w", err)
		}
	}
	return nil
}
