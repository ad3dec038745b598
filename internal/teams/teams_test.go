package teams

import "testing"

func TestResolvePrefersNumericID(t *testing.T) {
	id := Resolve(1610612738, "some stale label")
	if id.Name != "Boston Celtics" || id.Abbreviation != "BOS" {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestResolveExactNameVariants(t *testing.T) {
	cases := map[string]string{
		"Golden State Warriors": "GSW",
		"golden state warriors": "GSW",
		"LA Clippers":           "LAC",
		"Los Angeles Clippers":  "LAC",
	}
	for name, abbr := range cases {
		if got := Resolve(0, name); got.Abbreviation != abbr {
			t.Fatalf("name %q expected %s, got %+v", name, abbr, got)
		}
	}
}

func TestResolveDisambiguatesLosAngeles(t *testing.T) {
	if got := Resolve(0, "Los Angeles Lakers Basketball"); got.Abbreviation != "LAL" {
		t.Fatalf("expected LAL, got %+v", got)
	}
	if got := Resolve(0, "LA Clippers (West)"); got.Abbreviation != "LAC" {
		t.Fatalf("expected LAC, got %+v", got)
	}
}

func TestResolvePartialMatchIsDeterministic(t *testing.T) {
	// "ers" sits inside several canonical names; the sorted scan always
	// lands on the first one alphabetically.
	first := Resolve(0, "ers")
	if first.Name != "Cleveland Cavaliers" {
		t.Fatalf("unexpected partial match %+v", first)
	}
	for i := 0; i < 50; i++ {
		if got := Resolve(0, "ers"); got != first {
			t.Fatalf("partial match varied: %+v vs %+v", got, first)
		}
	}
}

func TestResolveDerivesAbbreviationForUnknownName(t *testing.T) {
	got := Resolve(0, "Springfield Dunkers")
	if got.Name != "Springfield Dunkers" || got.Abbreviation != "SPR" {
		t.Fatalf("unexpected fallback identity %+v", got)
	}
	if Known(got) != true {
		t.Fatalf("passthrough names still count as resolved labels")
	}
}

func TestResolveEmptyName(t *testing.T) {
	got := Resolve(0, "  ")
	if Known(got) {
		t.Fatalf("expected unknown identity, got %+v", got)
	}
}
