package redact

import "testing"

func TestTag_Deterministic(t *testing.T) {
	a := Tag("hunter2")
	b := Tag("hunter2")
	if a != b {
		t.Fatalf("Tag is not deterministic: %q != %q", a, b)
	}
	if len(a) != tagLen {
		t.Fatalf("expected tag of length %d, got %d (%q)", tagLen, len(a), a)
	}
}

func TestTag_DistinctSecrets(t *testing.T) {
	a := Tag("alice")
	b := Tag("bob")
	if a == b {
		t.Fatalf("expected distinct tags for distinct secrets, got %q for both", a)
	}
}

func TestTag_DoesNotContainSecret(t *testing.T) {
	secret := "correct-horse-battery-staple"
	tag := Tag(secret)
	if tag == secret {
		t.Fatalf("tag must not equal the raw secret")
	}
}
