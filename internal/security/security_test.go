package security

import "testing"

const testIterations = 1000

func TestHashAndVerify(t *testing.T) {
	salt, digest := Hash("Sup3rSecret", testIterations)
	if salt == "" || digest == "" {
		t.Fatal("Hash returned empty salt or digest")
	}

	ok, err := Verify(salt, digest, "Sup3rSecret", testIterations)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("Expected correct password to verify")
	}

	ok, err = Verify(salt, digest, "WrongPass1", testIterations)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestHash_SaltIsUnique(t *testing.T) {
	salt1, digest1 := Hash("Sup3rSecret", testIterations)
	salt2, digest2 := Hash("Sup3rSecret", testIterations)

	if salt1 == salt2 {
		t.Error("Expected distinct salts for repeated hashing")
	}
	if digest1 == digest2 {
		t.Error("Expected distinct digests under distinct salts")
	}
}

func TestVerify_RejectsMalformedStoredValues(t *testing.T) {
	if _, err := Verify("not-hex", "abcd", "password", testIterations); err == nil {
		t.Error("Expected error for malformed salt")
	}
	if _, err := Verify("abcd", "not-hex", "password", testIterations); err == nil {
		t.Error("Expected error for malformed digest")
	}
}

func TestNewID(t *testing.T) {
	id1 := NewID()
	id2 := NewID()

	if len(id1) != 32 {
		t.Errorf("Expected 32 hex characters, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("Expected unique ids")
	}
}
