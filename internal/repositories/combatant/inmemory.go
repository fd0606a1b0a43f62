package combatant

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// InMemoryRepository implements Repository using process memory.
// Stored data is copied on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*combat.CharacterData
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*combat.CharacterData),
	}
}

// Create registers a new character
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := input.CharacterData.ID
	if _, exists := r.store[id]; exists {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", id)
	}

	r.store[id] = clone(input.CharacterData)

	return &CreateOutput{CharacterData: clone(input.CharacterData)}, nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID).
			WithMeta("character_id", input.ID)
	}

	return &GetOutput{CharacterData: clone(data)}, nil
}

// Update replaces a stored character
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := input.CharacterData.ID
	if _, exists := r.store[id]; !exists {
		return nil, errors.NotFoundf("character with ID %s not found", id).
			WithMeta("character_id", id)
	}

	r.store[id] = clone(input.CharacterData)

	return &UpdateOutput{CharacterData: clone(input.CharacterData)}, nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID).
			WithMeta("character_id", input.ID)
	}

	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns every registered character, ordered by ID
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	characters := make([]*combat.CharacterData, 0, len(r.store))
	for _, data := range r.store {
		characters = append(characters, clone(data))
	}
	sort.Slice(characters, func(i, j int) bool {
		return characters[i].ID < characters[j].ID
	})

	return &ListOutput{Characters: characters}, nil
}

func validateData(data *combat.CharacterData) error {
	if data == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if data.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}

// clone deep copies through the entity so slot maps and deltas are not shared
func clone(data *combat.CharacterData) *combat.CharacterData {
	out := combat.LoadCharacterFromData(data).ToData()
	out.ID = data.ID
	return out
}
