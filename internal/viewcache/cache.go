package viewcache

import (
	"log"
	"time"

	"github.com/ytget/yt-browser/internal/model"
)

// Retention constants
const (
	// DefaultMaxAlive is the default budget of retained instances
	DefaultMaxAlive = 5

	// MinMaxAlive is the smallest permitted budget
	MinMaxAlive = 1
)

// Instance is a materialized, cache-owned realization of a descriptor.
// ID is computed once at creation and never changes; MountedAt is kept for
// diagnostics and ordering tie-breaks only, never for eviction priority.
type Instance struct {
	ID        string
	Kind      model.ViewKind
	Locator   string
	Snapshot  *model.Snapshot
	MountedAt time.Time
}

// Cache owns the set of live view instances and reconciles them against the
// navigation stack's descriptor sequence. It is driven from a single
// goroutine (the stack's change listener) and holds no locks.
type Cache struct {
	maxAlive  int
	instances []*Instance // live instances in stack order
	byID      map[string]*Instance
	activeID  string
}

// New creates a view cache with the given maximum-alive budget.
// Budgets below MinMaxAlive fall back to DefaultMaxAlive.
func New(maxAlive int) *Cache {
	if maxAlive < MinMaxAlive {
		maxAlive = DefaultMaxAlive
	}

	return &Cache{
		maxAlive: maxAlive,
		byID:     make(map[string]*Instance),
	}
}

// MaxAlive returns the configured retention budget
func (c *Cache) MaxAlive() int {
	return c.maxAlive
}

// SetMaxAlive updates the retention budget. The new budget takes effect on
// the next reconciliation; it never evicts retroactively.
func (c *Cache) SetMaxAlive(maxAlive int) {
	if maxAlive < MinMaxAlive {
		maxAlive = DefaultMaxAlive
	}
	c.maxAlive = maxAlive
}

// Reconcile updates the live-instance set from the latest descriptor
// sequence. Instances whose id still appears are reused as-is; missing ones
// are created; everything beyond the retention budget is evicted, except the
// home instance and the active instance, which are always kept. Calling
// Reconcile twice with an unchanged sequence is a no-op.
//
// An empty sequence is treated as "home only", so the cache always has an
// active instance.
func (c *Cache) Reconcile(descs []model.ViewDescriptor) {
	if len(descs) == 0 {
		descs = []model.ViewDescriptor{model.HomeDescriptor()}
	}

	now := time.Now()

	// Resolve ids in stack order. A duplicated id keeps its first position
	// for ordering but its last position for retention, so a view re-pushed
	// deeper in the stack counts as recent.
	ordered := make([]*Instance, 0, len(descs))
	lastPos := make(map[string]int, len(descs))
	created := 0

	for pos, desc := range descs {
		id := ResolveID(desc, pos)

		if _, seen := lastPos[id]; seen {
			lastPos[id] = pos
			continue
		}
		lastPos[id] = pos

		inst, exists := c.byID[id]
		if exists {
			// Reuse: identity and MountedAt survive; a newer snapshot from
			// the descriptor replaces the stored one.
			if desc.Snapshot != nil {
				inst.Snapshot = desc.Snapshot
			}
		} else {
			inst = &Instance{
				ID:        id,
				Kind:      desc.Kind,
				Locator:   desc.Locator,
				Snapshot:  desc.Snapshot,
				MountedAt: now,
			}
			created++
		}

		ordered = append(ordered, inst)
	}

	activeID := ResolveID(descs[len(descs)-1], len(descs)-1)
	if _, ok := lastPos[activeID]; !ok {
		// The last descriptor hit the time-based fallback branch twice and
		// produced a fresh id; fall back to the last ordered instance.
		activeID = ordered[len(ordered)-1].ID
	}

	// Retention: an instance survives if it is the singleton, the active
	// instance, or within the maxAlive most recent stack positions. The
	// budget is a soft target; pinned instances are never evicted.
	cutoff := len(descs) - c.maxAlive

	survivors := make([]*Instance, 0, len(ordered))
	byID := make(map[string]*Instance, len(ordered))

	for _, inst := range ordered {
		pinned := inst.Kind.IsSingleton() || inst.ID == activeID
		if !pinned && lastPos[inst.ID] < cutoff {
			continue
		}
		survivors = append(survivors, inst)
		byID[inst.ID] = inst
	}

	evicted := len(ordered) - len(survivors)
	if created > 0 || evicted > 0 {
		log.Printf("View cache reconciled: depth=%d live=%d created=%d evicted=%d active=%s",
			len(descs), len(survivors), created, evicted, activeID)
	}

	c.instances = survivors
	c.byID = byID
	c.activeID = activeID
}

// ActiveID returns the id of the instance at the top of the most recently
// reconciled sequence, or empty before the first reconciliation.
func (c *Cache) ActiveID() string {
	return c.activeID
}

// IsActive reports whether id is the active instance's id
func (c *Cache) IsActive(id string) bool {
	return id != "" && id == c.activeID
}

// LiveInstances returns the materialized instances in stack order. The
// returned slice is a copy; the instances themselves are shared.
func (c *Cache) LiveInstances() []*Instance {
	out := make([]*Instance, len(c.instances))
	copy(out, c.instances)
	return out
}

// Get returns the live instance with the given id, if any
func (c *Cache) Get(id string) (*Instance, bool) {
	inst, ok := c.byID[id]
	return inst, ok
}

// Len returns the number of live instances
func (c *Cache) Len() int {
	return len(c.instances)
}
