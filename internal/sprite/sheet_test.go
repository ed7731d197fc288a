package sprite

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlSheet = `sprites:
  - name: alien_a
    rows: ["@.@", ".@."]
  - name: alien_b
    rows: [".@.", "@.@"]
  - name: alien_dead
    rows: ["@...@", ".@.@."]
  - name: player
    width: 3
    height: 1
    data: [1, 1, 1]
  - name: projectile
    width: 1
    height: 2
    data: [1, 1]
`

const tomlSheet = `[[sprites]]
name = "alien_a"
rows = ["@.@", ".@."]

[[sprites]]
name = "alien_b"
rows = [".@.", "@.@"]

[[sprites]]
name = "alien_dead"
rows = ["@...@", ".@.@."]

[[sprites]]
name = "player"
width = 3
height = 1
data = [1, 1, 1]

[[sprites]]
name = "projectile"
width = 1
height = 2
data = [1, 1]
`

func writeSheet(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadSheetFormats(t *testing.T) {
	tests := []struct {
		file string
		body string
	}{
		{"sheet.yaml", yamlSheet},
		{"sheet.yml", yamlSheet},
		{"sheet.toml", tomlSheet},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			st, err := LoadSheet(writeSheet(t, tc.file, tc.body))
			if err != nil {
				t.Fatalf("LoadSheet() failed: %v", err)
			}
			if st.Len() != 5 {
				t.Errorf("Len() = %d, expected 5", st.Len())
			}
			dead := st.MustGet(AlienDead)
			if dead.Width() != 5 || dead.Height() != 2 {
				t.Errorf("alien_dead = %dx%d, expected 5x2", dead.Width(), dead.Height())
			}
			if !st.MustGet(Player).Ink(2, 0) {
				t.Error("player data should be ink at (2, 0)")
			}
		})
	}
}

func TestLoadSheetMismatchIsFatal(t *testing.T) {
	body := `sprites:
  - name: player
    width: 3
    height: 2
    data: [1, 1, 1]
`
	_, err := LoadSheet(writeSheet(t, "bad.yaml", body))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("LoadSheet() error = %v, expected ErrDimensionMismatch", err)
	}
}

func TestLoadSheetMissingAsset(t *testing.T) {
	body := `sprites:
  - name: player
    rows: ["@@@"]
`
	_, err := LoadSheet(writeSheet(t, "partial.yaml", body))
	if !errors.Is(err, ErrMissingAsset) {
		t.Errorf("LoadSheet() error = %v, expected ErrMissingAsset", err)
	}
}

func TestLoadSheetUnknownFormat(t *testing.T) {
	_, err := LoadSheet(writeSheet(t, "sheet.json", "{}"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadSheet() error = %v, expected ErrUnknownFormat", err)
	}
	for _, ext := range SheetExtensions() {
		if err != nil && !strings.Contains(err.Error(), ext) {
			t.Errorf("LoadSheet() error %q should list %s", err, ext)
		}
	}

	if _, err := LoadSheet(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadSheet() should fail for a missing file")
	}
}
