package adaptive

import (
	"strings"
	"testing"
)

func TestPersonaFor_AllLevelsDistinct(t *testing.T) {
	levels := []Level{LevelStruggling, LevelComfortable, LevelAdvanced, LevelMastery}

	seen := make(map[string]Level)
	for _, lvl := range levels {
		p := PersonaFor(lvl)
		if !strings.HasPrefix(p, BasePersona) {
			t.Errorf("PersonaFor(%q) does not start with base persona", lvl)
		}
		if p == BasePersona {
			t.Errorf("PersonaFor(%q) has no level modifier", lvl)
		}
		if prev, dup := seen[p]; dup {
			t.Errorf("PersonaFor(%q) equals PersonaFor(%q)", lvl, prev)
		}
		seen[p] = lvl
	}
}

func TestPersonaFor_UndefinedLevelFallsBack(t *testing.T) {
	for _, lvl := range []Level{"", "expert", "unknown"} {
		if got := PersonaFor(lvl); got != BasePersona {
			t.Errorf("PersonaFor(%q) = %q, want base persona", lvl, got)
		}
	}
}

func TestPersonaFor_Deterministic(t *testing.T) {
	if PersonaFor(LevelStruggling) != PersonaFor(LevelStruggling) {
		t.Error("PersonaFor should be pure")
	}
}
