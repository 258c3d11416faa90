package textfile

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ochairo/filedrecipes/internal/domain/entities"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces/repositories"
)

func TestRecipeWriter_Write_Format(t *testing.T) {
	soup := entities.NewRecipe("Soppa")
	soup.AddIngredient(entities.NewIngredient("1", "l", "vatten"))
	soup.AddIngredient(entities.NewIngredient("1/2", "", "lök"))
	soup.AddInstruction("Koka upp vattnet.")
	soup.AddInstruction("")
	water := entities.NewRecipe("Vatten")

	var buf bytes.Buffer
	if err := NewRecipeWriter().Write(&buf, []*entities.Recipe{soup, water}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "[Recept]\nSoppa\n[Ingredienser]\n1;l;vatten\n1/2;;lök\n[Instruktioner]\nKoka upp vattnet.\n\n" +
		"[Recept]\nVatten\n[Ingredienser]\n[Instruktioner]\n"
	if buf.String() != want {
		t.Errorf("Write() output =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRecipeWriter_Write_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRecipeWriter().Write(&buf, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write() wrote %q for no recipes", buf.String())
	}
}

func TestRecipeWriter_Write_RejectsUnreadable(t *testing.T) {
	tests := []struct {
		name   string
		recipe *entities.Recipe
	}{
		{"empty name", entities.NewRecipe("")},
		{"marker name", entities.NewRecipe(SectionIngredients)},
		{"name with newline", entities.NewRecipe("Soppa\nGröt")},
		{"separator in ingredient", &entities.Recipe{
			Name:        "Soppa",
			Ingredients: []entities.Ingredient{{Amount: "1", Measure: "dl;l", Name: "vatten"}},
		}},
		{"line break in ingredient", &entities.Recipe{
			Name:        "Soppa",
			Ingredients: []entities.Ingredient{{Amount: "1", Measure: "dl", Name: "vat\r\nten"}},
		}},
		{"marker instruction", &entities.Recipe{Name: "Soppa", Instructions: []string{SectionRecipe}}},
		{"nil recipe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewRecipeWriter().Write(&buf, []*entities.Recipe{tt.recipe})
			if !errors.Is(err, repositories.ErrUnencodable) {
				t.Errorf("Write() error = %v, want ErrUnencodable", err)
			}
			if buf.Len() != 0 {
				t.Errorf("Write() should not write anything, wrote %q", buf.String())
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRecipeWriter_Write_PropagatesWriteError(t *testing.T) {
	err := NewRecipeWriter().Write(failingWriter{}, []*entities.Recipe{entities.NewRecipe("Soppa")})
	if err == nil {
		t.Fatal("Write() should return the underlying write error")
	}
}
