package ui

import "testing"

func TestToggle(t *testing.T) {
	th := Light()
	if th.Toggle().Name != "dark" {
		t.Error("light did not toggle to dark")
	}
	if th.Toggle().Toggle().Name != th.Name {
		t.Error("double toggle did not restore the original theme")
	}
}

func TestByName(t *testing.T) {
	if ByName("dark").Name != "dark" {
		t.Error("ByName(dark) != dark")
	}
	if ByName("DARK").Name != "dark" {
		t.Error("ByName is case-sensitive")
	}
	if ByName("").Name != "light" || ByName("solarized").Name != "light" {
		t.Error("unknown names should fall back to light")
	}
}
