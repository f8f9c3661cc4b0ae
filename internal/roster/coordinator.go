package roster

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/team-pulse/internal/domain"
	"github.com/spec-kit/team-pulse/internal/notify"
	"github.com/spec-kit/team-pulse/internal/observability"

	apperrors "github.com/spec-kit/team-pulse/pkg/util"
)

// Coordinator orchestrates roster mutations end to end: permission check,
// optimistic local apply, asynchronous persistence, and resync-based
// rollback when persistence fails.
//
// The optimistic state is visible to readers before the remote call
// resolves. Mutations against the same record are serialized through a
// per-record FIFO queue so rapid edits cannot complete out of order;
// mutations against different records never contend.
type Coordinator struct {
	store    *Store
	source   Source
	syncer   *Syncer
	notifier notify.Notifier
	logger   *zap.Logger
	metrics  *observability.Metrics

	mu     sync.Mutex
	queues map[string]*recordQueue
}

type recordQueue struct {
	tasks   []func()
	running bool
}

// CreateInput describes a new roster record.
type CreateInput struct {
	Name     string
	Position domain.Position
}

// NewCoordinator constructs the coordinator.
func NewCoordinator(store *Store, source Source, syncer *Syncer, notifier notify.Notifier, logger *zap.Logger, metrics *observability.Metrics) *Coordinator {
	return &Coordinator{
		store:    store,
		source:   source,
		syncer:   syncer,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		queues:   make(map[string]*recordQueue),
	}
}

// Mutate applies a single-field update. Lookup, permission and validation
// failures are returned synchronously with no state change. Otherwise the
// store is updated optimistically before Mutate returns, and the returned
// channel delivers the terminal persistence outcome: nil on success, or a
// PERSISTENCE_FAILURE after the optimistic guess has been discarded via
// resync.
func (c *Coordinator) Mutate(ctx context.Context, actor Actor, id string, patch FieldPatch) (<-chan error, error) {
	current, ok := c.store.Lookup(id)
	if !ok {
		return nil, apperrors.NewNotFound("team member", map[string]any{"id": id})
	}
	if !CanMutate(actor, current) {
		return nil, apperrors.NewPermissionDenied("only the record owner or an administrator may update this member")
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated := current.Clone()
	patch.Apply(&updated)
	updated.LastUpdated = time.Now()
	c.store.Put(updated)

	done := make(chan error, 1)
	c.enqueue(id, func() {
		// Detached from the request context: the remote write must be able
		// to outlive the caller.
		err := c.source.PersistPatch(context.Background(), id, patch, updated.LastUpdated)
		done <- c.settle("mutate "+patch.Field(), patch.Field(), err)
	})
	return done, nil
}

// Delete removes a record, subject to the same permission rules as Mutate.
// The record disappears from the store optimistically; a failed remote
// delete brings it back through resync.
func (c *Coordinator) Delete(ctx context.Context, actor Actor, id string) (<-chan error, error) {
	current, ok := c.store.Lookup(id)
	if !ok {
		return nil, apperrors.NewNotFound("team member", map[string]any{"id": id})
	}
	if !CanMutate(actor, current) {
		return nil, apperrors.NewPermissionDenied("only the record owner or an administrator may delete this member")
	}

	c.store.Remove(id)

	done := make(chan error, 1)
	c.enqueue(id, func() {
		err := c.source.PersistDelete(context.Background(), id)
		done <- c.settle("delete", "delete", err)
	})
	return done, nil
}

// Create adds a record owned by the actor. Any authenticated actor may
// create; ownership is forced to the creator, status defaults to
// available and projects to an empty list.
func (c *Coordinator) Create(ctx context.Context, actor Actor, input CreateInput) (domain.TeamMember, <-chan error, error) {
	if actor.ID == "" {
		return domain.TeamMember{}, nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := (NamePatch{Name: input.Name}).Validate(); err != nil {
		return domain.TeamMember{}, nil, err
	}
	if err := (PositionPatch{Position: input.Position}).Validate(); err != nil {
		return domain.TeamMember{}, nil, err
	}

	role := domain.RoleMember
	if actor.IsAdmin {
		role = domain.RoleAdmin
	}
	member := domain.TeamMember{
		ID:          uuid.NewString(),
		OwnerID:     actor.ID,
		Role:        role,
		Name:        input.Name,
		Position:    input.Position,
		Status:      domain.StatusAvailable,
		Projects:    []string{},
		LastUpdated: time.Now(),
	}
	c.store.Put(member)

	done := make(chan error, 1)
	c.enqueue(member.ID, func() {
		err := c.source.PersistCreate(context.Background(), member)
		done <- c.settle("create", "create", err)
	})
	return member, done, nil
}

// settle finishes an asynchronous persistence attempt: publish a change
// tick on success, roll back via resync on failure.
func (c *Coordinator) settle(op, field string, err error) error {
	if err == nil {
		c.metrics.RecordMutation(field, true)
		if c.notifier != nil {
			if pubErr := c.notifier.Publish(context.Background()); pubErr != nil {
				c.logger.Warn("change tick publish failed", zap.String("op", op), zap.Error(pubErr))
			}
		}
		return nil
	}

	c.metrics.RecordMutation(field, false)
	c.logger.Warn("persistence failed, resyncing roster", zap.String("op", op), zap.Error(err))
	if resyncErr := c.syncer.resyncBounded(context.Background()); resyncErr != nil {
		c.logger.Error("rollback resync failed", zap.String("op", op), zap.Error(resyncErr))
	}
	return apperrors.NewPersistenceFailure(err)
}

// enqueue appends a task to the record's FIFO queue, starting a drainer if
// the queue was idle. Queues are removed once drained.
func (c *Coordinator) enqueue(id string, task func()) {
	c.mu.Lock()
	q, ok := c.queues[id]
	if !ok {
		q = &recordQueue{}
		c.queues[id] = q
	}
	q.tasks = append(q.tasks, task)
	if !q.running {
		q.running = true
		go c.drain(id, q)
	}
	c.mu.Unlock()
}

func (c *Coordinator) drain(id string, q *recordQueue) {
	for {
		c.mu.Lock()
		if len(q.tasks) == 0 {
			q.running = false
			delete(c.queues, id)
			c.mu.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		c.mu.Unlock()

		task()
	}
}
