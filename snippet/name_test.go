package snippet

import (
	"regexp"
	"testing"
)

var nameFormat = regexp.MustCompile(`^snippet_\d+_[a-z]{6}$`)

func TestGenerateName_Format(t *testing.T) {
	name := GenerateName()
	if !nameFormat.MatchString(name) {
		t.Errorf("GenerateName() = %q, want snippet_<ms>_<6 lowercase letters>", name)
	}
}

func TestGenerateName_Distinct(t *testing.T) {
	// Same-millisecond calls still differ through the random suffix
	// (collision chance 1/26^6 per pair).
	seen := make(map[string]bool)
	for range 50 {
		name := GenerateName()
		if seen[name] {
			t.Fatalf("GenerateName() produced duplicate %q", name)
		}
		seen[name] = true
	}
}

func TestXIDName_Distinct(t *testing.T) {
	a, b := XIDName(), XIDName()
	if a == b {
		t.Errorf("XIDName() produced duplicate %q", a)
	}
	if len(a) != len("snippet_")+20 {
		t.Errorf("XIDName() = %q, want snippet_ plus 20-char xid", a)
	}
}

func TestNewBuilderUsesGeneratedName(t *testing.T) {
	s, err := NewBuilder().SetPrefix("p").AddLine("l").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !nameFormat.MatchString(s.Name) {
		t.Errorf("default Name = %q, want generated format", s.Name)
	}
}
