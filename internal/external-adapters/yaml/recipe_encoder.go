package yaml

import (
	"fmt"
	"io"

	"github.com/ochairo/filedrecipes/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

type yamlRecipe struct {
	Name         string           `yaml:"name"`
	Ingredients  []yamlIngredient `yaml:"ingredients"`
	Instructions []string         `yaml:"instructions"`
}

type yamlIngredient struct {
	Amount  string `yaml:"amount"`
	Measure string `yaml:"measure,omitempty"`
	Name    string `yaml:"name"`
}

// RecipeEncoder writes recipes as a YAML document
type RecipeEncoder struct{}

// NewRecipeEncoder creates a new YAML encoder
func NewRecipeEncoder() *RecipeEncoder {
	return &RecipeEncoder{}
}

// Encode writes recipes to w as a YAML sequence
func (e *RecipeEncoder) Encode(w io.Writer, recipes []*entities.Recipe) error {
	doc := make([]yamlRecipe, 0, len(recipes))
	for _, r := range recipes {
		doc = append(doc, convertRecipe(r))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func convertRecipe(r *entities.Recipe) yamlRecipe {
	ingredients := make([]yamlIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, yamlIngredient{
			Amount:  ing.Amount,
			Measure: ing.Measure,
			Name:    ing.Name,
		})
	}

	instructions := r.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	return yamlRecipe{
		Name:         r.Name,
		Ingredients:  ingredients,
		Instructions: instructions,
	}
}
