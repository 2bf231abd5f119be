package utils

import (
	"strings"
	"testing"
)

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID(7)
	if !strings.HasPrefix(id, "IVM-") {
		t.Fatalf("expected IVM- prefix, got %s", id)
	}
	if !strings.HasSuffix(id, "7") {
		t.Fatalf("expected user id suffix, got %s", id)
	}
}

func TestGenerateOrderID_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateOrderID(1)
		if seen[id] {
			t.Fatalf("duplicate order id %s", id)
		}
		seen[id] = true
	}
}

func TestRoundFloat(t *testing.T) {
	if got := RoundFloat(10.0/3.0, 2); got != 3.33 {
		t.Errorf("RoundFloat(10/3, 2) = %v", got)
	}
	if got := RoundFloat(1.005001, 2); got != 1.01 {
		t.Errorf("RoundFloat(1.005001, 2) = %v", got)
	}
}
