package translate_test

import (
	"testing"

	"fontsources/internal/fontsquirrel"
	"fontsources/internal/translate"
)

func TestPopularity(t *testing.T) {
	tenFiles := make([]any, 10)
	for i := range tenFiles {
		tenFiles[i] = map[string]any{}
	}
	cases := []struct {
		name string
		rec  fontsquirrel.Record
		want int
	}{
		{"empty", fontsquirrel.Record{}, 50},
		{"free", fontsquirrel.Record{"is_free": true}, 70},
		{"short description counts", fontsquirrel.Record{"short_description": "x"}, 60},
		{"designer only", fontsquirrel.Record{"designer": "Jane"}, 60},
		{"foundry only", fontsquirrel.Record{"foundry": "F"}, 55},
		{"single file has no bonus", fontsquirrel.Record{"font_files": []any{map[string]any{}}}, 50},
		{"two files", fontsquirrel.Record{"font_files": []any{map[string]any{}, map[string]any{}}}, 54},
		{"file bonus is capped", fontsquirrel.Record{"font_files": tenFiles}, 65},
		{"everything clamps to 100", fontsquirrel.Record{
			"is_free":     true,
			"description": "d",
			"designer":    "Jane",
			"foundry":     "F",
			"font_files":  tenFiles,
		}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := translate.Popularity(tc.rec)
			if err != nil {
				t.Fatalf("Popularity returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Popularity = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPopularityRejectsWrongTypes(t *testing.T) {
	if _, err := translate.Popularity(fontsquirrel.Record{"designer": map[string]any{"name": "x"}}); err == nil {
		t.Fatal("expected type error")
	}
}
