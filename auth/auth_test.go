package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	v := &StaticVerifier{Username: "admin", PasswordHash: hash}

	if !v.Verify("admin", "secret") {
		t.Fatal("expected correct credentials to verify")
	}
	if v.Verify("admin", "wrong") {
		t.Fatal("wrong password accepted")
	}
	if v.Verify("operator", "secret") {
		t.Fatal("wrong username accepted")
	}
}
