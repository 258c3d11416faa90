package yaml

import (
	"testing"
)

// FuzzConfigParser tests the YAML config parser against random/malformed inputs.
//
// Run with: go test -fuzz=FuzzConfigParser -fuzztime=30s
func FuzzConfigParser(f *testing.F) {
	f.Add([]byte(`recipes_file: Recipes.txt
log_level: warn
signature:
  public_key: pub.asc
  verify_on_load: true
watch:
  debounce_ms: 100
`))

	// Seed with edge cases
	f.Add([]byte(``))                        // Empty input
	f.Add([]byte(`{}`))                      // Empty mapping
	f.Add([]byte(`[]`))                      // Array instead of object
	f.Add([]byte(`log_level: 3`))            // Wrong type
	f.Add([]byte(`watch: {debounce_ms: x}`)) // Bad number

	parser := NewConfigParser()

	f.Fuzz(func(t *testing.T, data []byte) {
		cfg, err := parser.Parse(data)
		if err != nil {
			return
		}
		if cfg.RecipesFile == "" {
			t.Error("accepted config must have a recipes file")
		}
		if cfg.Debounce <= 0 {
			t.Errorf("accepted config has debounce %v", cfg.Debounce)
		}
	})
}
