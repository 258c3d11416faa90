// Package textfile reads and writes the sectioned, line-oriented recipe file
// and provides a file-backed recipe repository on top of it.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ochairo/filedrecipes/internal/domain/entities"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces/repositories"
)

// Marker lines switching the read mode
const (
	SectionRecipe       = "[Recept]"
	SectionIngredients  = "[Ingredienser]"
	SectionInstructions = "[Instruktioner]"
)

const (
	fieldSeparator  = ";"
	ingredientParts = 3
	byteOrderMark   = "\ufeff"

	// maxLineSize bounds a single line; a longer line is reported as a FormatError
	maxLineSize = 1024 * 1024
)

// readState decides how the next non-marker line is interpreted
type readState int

const (
	stateIndefinite readState = iota
	stateExpectingName
	stateReadingIngredients
	stateReadingInstructions
)

// RecipeParser parses recipe text files
type RecipeParser struct{}

// NewRecipeParser creates a new text parser
func NewRecipeParser() *RecipeParser {
	return &RecipeParser{}
}

// ParseFile parses the recipe file at filePath
func (p *RecipeParser) ParseFile(filePath string) ([]*entities.Recipe, error) {
	//nolint:gosec // G304: filePath is the configured recipe file
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	return p.Parse(f)
}

// Parse reads recipes from r in file order
func (p *RecipeParser) Parse(r io.Reader) ([]*entities.Recipe, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		recipes []*entities.Recipe
		current *entities.Recipe
		state   = stateIndefinite
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		switch line {
		case SectionRecipe:
			state = stateExpectingName
			continue
		case SectionIngredients:
			state = stateReadingIngredients
			continue
		case SectionInstructions:
			state = stateReadingInstructions
			continue
		}

		switch state {
		case stateExpectingName:
			if line == "" {
				return nil, formatError(lineNo, line, "recipe name is empty")
			}
			current = entities.NewRecipe(line)
			recipes = append(recipes, current)

		case stateReadingIngredients:
			if current == nil {
				return nil, formatError(lineNo, line, "ingredient outside of a recipe")
			}
			ingredient, err := parseIngredient(line)
			if err != nil {
				return nil, formatError(lineNo, line, err.Error())
			}
			current.AddIngredient(ingredient)

		case stateReadingInstructions:
			if current == nil {
				return nil, formatError(lineNo, line, "instruction outside of a recipe")
			}
			current.AddInstruction(line)

		default:
			return nil, formatError(lineNo, line, "data line before any section marker")
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, formatError(lineNo+1, "", fmt.Sprintf("line longer than %d bytes", maxLineSize))
		}
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	return recipes, nil
}

func parseIngredient(line string) (entities.Ingredient, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != ingredientParts {
		return entities.Ingredient{}, fmt.Errorf("ingredient needs %d fields, got %d", ingredientParts, len(parts))
	}
	return entities.NewIngredient(parts[0], parts[1], parts[2]), nil
}

func formatError(line int, content, reason string) error {
	return &repositories.FormatError{Line: line, Content: content, Reason: reason}
}
