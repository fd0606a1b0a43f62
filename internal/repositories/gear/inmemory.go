package gear

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// InMemoryRepository implements Repository using process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]combat.Gear
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]combat.Gear),
	}
}

// Create registers a piece of gear
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.GearData == nil {
		return nil, errors.InvalidArgument("gear cannot be nil")
	}
	if input.GearData.ID == "" {
		return nil, errors.InvalidArgument("gear ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := input.GearData.ID
	if _, exists := r.store[id]; exists {
		return nil, errors.AlreadyExistsf("gear with ID %s already exists", id)
	}

	// Gear is immutable, so storing the entity is enough to stop aliasing
	g := combat.LoadGearFromData(*input.GearData)
	r.store[id] = g

	return &CreateOutput{GearData: toData(id, g)}, nil
}

// Get retrieves gear by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("gear ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("gear with ID %s not found", input.ID).
			WithMeta("gear_id", input.ID)
	}

	return &GetOutput{GearData: toData(input.ID, g)}, nil
}

// List returns all gear ordered by name, then ID
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*combat.GearData, 0, len(r.store))
	for id, g := range r.store {
		if input.Slot != "" && g.Slot() != input.Slot {
			continue
		}
		items = append(items, toData(id, g))
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})

	return &ListOutput{Gear: items}, nil
}

func toData(id string, g combat.Gear) *combat.GearData {
	data := g.ToData()
	data.ID = id
	return &data
}
