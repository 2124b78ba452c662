package translate

import "fontsources/internal/fontsquirrel"

const (
	baseScore        = 50
	freeBonus        = 20
	descriptionBonus = 10
	designerBonus    = 10
	foundryBonus     = 5
	perFileBonus     = 2
	maxFileBonus     = 15
)

// Popularity estimates a 0-100 score from how complete and open a record is.
// Font Squirrel does not publish download counts, so this is a heuristic.
func Popularity(rec fontsquirrel.Record) (int, error) {
	r := newReader(rec)
	free := r.flag("is_free")
	described := r.str("description") != "" || r.str("short_description") != ""
	designer := r.str("designer")
	foundry := r.str("foundry")
	if r.failed() {
		return 0, *r.err
	}

	score := baseScore
	if free {
		score += freeBonus
	}
	if described {
		score += descriptionBonus
	}
	if designer != "" {
		score += designerBonus
	}
	if foundry != "" {
		score += foundryBonus
	}
	if files := rec.Len("font_files"); files > 1 {
		score += min(perFileBonus*files, maxFileBonus)
	}
	return max(0, min(score, 100)), nil
}
