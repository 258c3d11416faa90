package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ochairo/filedrecipes/internal/domain/entities"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces/repositories"
)

// DefaultPath is the recipe file used when none is configured
const DefaultPath = "Recipes.txt"

// RecipeRepository implements repositories.RecipeRepository on a single text file.
// It is not safe for concurrent use.
type RecipeRepository struct {
	path   string
	parser *RecipeParser
	writer *RecipeWriter
	logger interfaces.Logger

	recipes  []*entities.Recipe
	modified bool

	observers      []observer
	nextObserverID int
}

type observer struct {
	id int
	fn func()
}

// NewRecipeRepository creates a repository backed by the file at path.
// A nil logger discards log output.
func NewRecipeRepository(path string, logger interfaces.Logger) *RecipeRepository {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &RecipeRepository{
		path:    path,
		parser:  NewRecipeParser(),
		writer:  NewRecipeWriter(),
		logger:  logger,
		recipes: make([]*entities.Recipe, 0),
	}
}

// Path returns the backing file path
func (r *RecipeRepository) Path() string {
	return r.path
}

// Load replaces the collection with the file contents sorted by name.
// On error the current collection is left as it was.
func (r *RecipeRepository) Load() error {
	recipes, err := r.parser.ParseFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to load recipes from %s: %w", r.path, err)
	}

	slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int {
		return strings.Compare(a.Name, b.Name)
	})

	r.recipes = recipes
	r.modified = false
	r.logger.Debug("recipes loaded", interfaces.F("path", r.path), interfaces.F("count", len(recipes)))

	r.notify()
	return nil
}

// Save overwrites the file with the collection in its current order
func (r *RecipeRepository) Save() error {
	if err := r.writer.Validate(r.recipes); err != nil {
		return fmt.Errorf("failed to save recipes: %w", err)
	}

	if err := r.writeFile(); err != nil {
		return fmt.Errorf("failed to save recipes to %s: %w", r.path, err)
	}

	r.modified = false
	r.logger.Debug("recipes saved", interfaces.F("path", r.path), interfaces.F("count", len(r.recipes)))
	return nil
}

// writeFile writes to a temporary sibling and renames it over the target
func (r *RecipeRepository) writeFile() (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = r.writer.Write(tmp, r.recipes); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return err
	}
	return nil
}

// GetAll returns deep copies of all recipes
func (r *RecipeRepository) GetAll() []*entities.Recipe {
	all := make([]*entities.Recipe, len(r.recipes))
	for i, recipe := range r.recipes {
		all[i] = recipe.Clone()
	}
	return all
}

// GetAt returns a deep copy of the recipe at index
func (r *RecipeRepository) GetAt(index int) (*entities.Recipe, error) {
	if err := r.checkIndex(index); err != nil {
		return nil, err
	}
	return r.recipes[index].Clone(), nil
}

// Delete removes recipe from the collection. A stored record is matched by
// identity first; a caller-held copy is matched against the first equal record.
func (r *RecipeRepository) Delete(recipe *entities.Recipe) error {
	pos := slices.Index(r.recipes, recipe)
	if pos < 0 {
		pos = slices.IndexFunc(r.recipes, recipe.Equal)
	}
	if recipe == nil || pos < 0 {
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, recipeName(recipe))
	}

	r.recipes = slices.Delete(r.recipes, pos, pos+1)
	r.modified = true
	r.logger.Debug("recipe deleted", interfaces.F("name", recipe.Name), interfaces.F("remaining", len(r.recipes)))

	r.notify()
	return nil
}

// DeleteAt removes the recipe at index
func (r *RecipeRepository) DeleteAt(index int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	return r.Delete(r.recipes[index])
}

// IsModified reports whether a Delete happened since the last Load or Save
func (r *RecipeRepository) IsModified() bool {
	return r.modified
}

// Subscribe registers fn to run after Load and after each successful Delete
func (r *RecipeRepository) Subscribe(fn func()) func() {
	id := r.nextObserverID
	r.nextObserverID++
	r.observers = append(r.observers, observer{id: id, fn: fn})

	return func() {
		r.observers = slices.DeleteFunc(r.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

// notify calls a snapshot of the observers so one may unsubscribe while running
func (r *RecipeRepository) notify() {
	for _, o := range slices.Clone(r.observers) {
		o.fn()
	}
}

func (r *RecipeRepository) checkIndex(index int) error {
	if index < 0 || index >= len(r.recipes) {
		return fmt.Errorf("%w: %d (have %d)", repositories.ErrIndexOutOfRange, index, len(r.recipes))
	}
	return nil
}

func recipeName(recipe *entities.Recipe) string {
	if recipe == nil {
		return "<nil>"
	}
	return recipe.Name
}
