// Package entities holds the core domain records.
package entities

import (
	"slices"
	"strings"
)

// Ingredient is one line of a recipe's ingredient list.
// Amount is kept as text so fractions and ranges ("1/2", "2-3") survive untouched.
type Ingredient struct {
	Amount  string
	Measure string
	Name    string
}

// NewIngredient creates an ingredient from its three fields
func NewIngredient(amount, measure, name string) Ingredient {
	return Ingredient{Amount: amount, Measure: measure, Name: name}
}

// String renders the ingredient the way it is shown to a reader, e.g. "2 dl mjölk"
func (i Ingredient) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{i.Amount, i.Measure, i.Name} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Recipe is a named recipe with ordered ingredients and instructions
type Recipe struct {
	Name         string
	Ingredients  []Ingredient
	Instructions []string
}

// NewRecipe creates an empty recipe with the given name
func NewRecipe(name string) *Recipe {
	return &Recipe{Name: name}
}

// AddIngredient appends an ingredient
func (r *Recipe) AddIngredient(ingredient Ingredient) {
	r.Ingredients = append(r.Ingredients, ingredient)
}

// AddInstruction appends an instruction line
func (r *Recipe) AddInstruction(instruction string) {
	r.Instructions = append(r.Instructions, instruction)
}

// Clone returns a deep copy that shares no backing arrays with r
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	return &Recipe{
		Name:         r.Name,
		Ingredients:  slices.Clone(r.Ingredients),
		Instructions: slices.Clone(r.Instructions),
	}
}

// Equal reports whether two recipes have the same name, ingredients and instructions.
// A nil slice and an empty slice compare equal.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Name == other.Name &&
		slices.Equal(r.Ingredients, other.Ingredients) &&
		slices.Equal(r.Instructions, other.Instructions)
}
