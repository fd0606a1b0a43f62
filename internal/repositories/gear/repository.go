// Package gear provides the catalog of gear handles that can be equipped
package gear

//go:generate mockgen -destination=mock/mock_repository.go -package=gearmock github.com/KirkDiggler/rpg-combat/internal/repositories/gear Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-combat/internal/entities/combat"
)

// Repository defines the storage interface for gear
type Repository interface {
	// Create registers a piece of gear
	// Returns errors.InvalidArgument for nil data or an empty ID
	// Returns errors.AlreadyExists if gear with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves gear by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the gear doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns all gear ordered by name, then ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating gear
type CreateInput struct {
	GearData *combat.GearData
}

// CreateOutput defines the output for creating gear
type CreateOutput struct {
	GearData *combat.GearData
}

// GetInput defines the input for getting gear
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting gear
type GetOutput struct {
	GearData *combat.GearData
}

// ListInput defines the input for listing gear
type ListInput struct {
	// Slot restricts the listing to one slot when set
	Slot combat.GearSlot
}

// ListOutput defines the output for listing gear
type ListOutput struct {
	Gear []*combat.GearData
}
