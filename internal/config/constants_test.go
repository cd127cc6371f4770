package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if CellWidth < 3 {
		t.Fatalf("CellWidth must fit two digits and a gap")
	}
	if MaxInputLength != len(DefaultPlaceholder) {
		t.Fatalf("MaxInputLength should match the display layout")
	}
	if PrevArrow == NextArrow {
		t.Fatalf("arrows must differ")
	}
}
