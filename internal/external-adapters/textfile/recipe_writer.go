package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/filedrecipes/internal/domain/entities"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces/repositories"
)

// RecipeWriter serializes recipes into the format RecipeParser reads
type RecipeWriter struct{}

// NewRecipeWriter creates a new text writer
func NewRecipeWriter() *RecipeWriter {
	return &RecipeWriter{}
}

// Write serializes recipes to out in the given order.
// Nothing is written when a recipe fails Validate.
func (w *RecipeWriter) Write(out io.Writer, recipes []*entities.Recipe) error {
	if err := w.Validate(recipes); err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	for _, r := range recipes {
		writeLine(bw, SectionRecipe)
		writeLine(bw, r.Name)

		writeLine(bw, SectionIngredients)
		for _, ing := range r.Ingredients {
			writeLine(bw, strings.Join([]string{ing.Amount, ing.Measure, ing.Name}, fieldSeparator))
		}

		writeLine(bw, SectionInstructions)
		for _, instruction := range r.Instructions {
			writeLine(bw, instruction)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write recipes: %w", err)
	}
	return nil
}

// Validate checks that every recipe survives a write followed by a parse
func (w *RecipeWriter) Validate(recipes []*entities.Recipe) error {
	for i, r := range recipes {
		if r == nil {
			return fmt.Errorf("%w: recipe %d is nil", repositories.ErrUnencodable, i)
		}
		if r.Name == "" {
			return fmt.Errorf("%w: recipe %d has an empty name", repositories.ErrUnencodable, i)
		}
		if err := checkLine(r.Name); err != nil {
			return fmt.Errorf("%w: name of %q %v", repositories.ErrUnencodable, r.Name, err)
		}
		for _, ing := range r.Ingredients {
			for _, field := range []string{ing.Amount, ing.Measure, ing.Name} {
				if strings.Contains(field, fieldSeparator) {
					return fmt.Errorf("%w: ingredient field %q of %q contains %q",
						repositories.ErrUnencodable, field, r.Name, fieldSeparator)
				}
				if strings.ContainsAny(field, "\r\n") {
					return fmt.Errorf("%w: ingredient field %q of %q contains a line break",
						repositories.ErrUnencodable, field, r.Name)
				}
			}
		}
		for _, instruction := range r.Instructions {
			if err := checkLine(instruction); err != nil {
				return fmt.Errorf("%w: instruction of %q %v", repositories.ErrUnencodable, r.Name, err)
			}
		}
	}
	return nil
}

func checkLine(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return fmt.Errorf("contains a line break")
	}
	if isMarker(s) {
		return fmt.Errorf("is a section marker")
	}
	return nil
}

func isMarker(s string) bool {
	return s == SectionRecipe || s == SectionIngredients || s == SectionInstructions
}

// bufio.Writer keeps the first error and reports it from Flush
func writeLine(bw *bufio.Writer, s string) {
	_, _ = bw.WriteString(s)
	_ = bw.WriteByte('\n')
}
