// Package combatant provides the registry of live character handles
package combatant

//go:generate mockgen -destination=mock/mock_repository.go -package=combatantmock github.com/KirkDiggler/rpg-combat/internal/repositories/combatant Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-combat/internal/entities/combat"
)

// Repository defines the storage interface for characters
type Repository interface {
	// Create registers a new character
	// Returns errors.InvalidArgument for nil data or an empty ID
	// Returns errors.AlreadyExists if a character with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored character
	// Returns errors.InvalidArgument for nil data or an empty ID
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every registered character, ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	CharacterData *combat.CharacterData
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	CharacterData *combat.CharacterData
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	CharacterData *combat.CharacterData
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	CharacterData *combat.CharacterData
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	CharacterData *combat.CharacterData
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*combat.CharacterData
}
