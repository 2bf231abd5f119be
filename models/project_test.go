package models

import "testing"

func TestRemainingQuota(t *testing.T) {
	p := Project{TargetAmount: 500000000, CurrentAmount: 350000000}
	if got := p.RemainingQuota(); got != 150000000 {
		t.Fatalf("expected 150000000, got %v", got)
	}
}

func TestUserPasswordHashing(t *testing.T) {
	u := User{Password: "password123"}
	if err := u.HashPassword(); err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if u.Password == "password123" {
		t.Fatal("password should be hashed")
	}
	if !u.ValidatePassword("password123") {
		t.Fatal("correct password rejected")
	}
	if u.ValidatePassword("wrong") {
		t.Fatal("wrong password accepted")
	}
}
