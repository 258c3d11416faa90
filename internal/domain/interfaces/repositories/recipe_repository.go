// Package repositories defines interfaces for data access layers.
package repositories

import (
	"github.com/ochairo/filedrecipes/internal/domain/entities"
)

// RecipeRepository holds the recipe collection and persists it.
// Every recipe handed out is a deep copy; the stored records change only through Load and Delete.
type RecipeRepository interface {
	// Load replaces the collection with the contents of the backing store
	Load() error

	// Save writes the collection to the backing store
	Save() error

	// GetAll returns copies of all recipes in collection order
	GetAll() []*entities.Recipe

	// GetAt returns a copy of the recipe at index
	GetAt(index int) (*entities.Recipe, error)

	// Delete removes the stored recipe that is, or is equal to, recipe
	Delete(recipe *entities.Recipe) error

	// DeleteAt removes the recipe at index
	DeleteAt(index int) error

	// IsModified reports whether the collection changed since the last Load or Save
	IsModified() bool

	// Subscribe registers fn to be called after every change to the collection.
	// The returned function removes the subscription.
	Subscribe(fn func()) (unsubscribe func())
}
