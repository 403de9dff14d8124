package topics

import "testing"

func TestCatalogSize(t *testing.T) {
	if len(Catalog) != 15 {
		t.Errorf("catalog has %d topics, want 15", len(Catalog))
	}
}

func TestCatalogNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range Catalog {
		if seen[topic] {
			t.Errorf("duplicate topic %q", topic)
		}
		seen[topic] = true
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0] = "mutated"
	if Catalog[0] == "mutated" {
		t.Error("All() must not expose the backing array")
	}
}

func TestContains(t *testing.T) {
	if !Contains("Estadística Descriptiva") {
		t.Error("expected catalog topic to be found")
	}
	if Contains("Astrofísica") {
		t.Error("unexpected topic reported as known")
	}
}
