package utils

import (
	"strings"
	"testing"
)

type registerForm struct {
	Name            string `validate:"required,nameok"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,pwdmin"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func TestValidateStruct_Valid(t *testing.T) {
	form := registerForm{
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
	if err := ValidateStruct(&form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateStruct_Required(t *testing.T) {
	form := registerForm{
		Email:           "john@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
	err := ValidateStruct(&form)
	if err == nil || !strings.Contains(err.Error(), "Name") {
		t.Fatalf("expected Name required error, got %v", err)
	}
}

func TestValidateStruct_Email(t *testing.T) {
	bad := []string{"plain", "no@tld", "@nouser.com", "two words@example.com"}
	for _, e := range bad {
		form := registerForm{
			Name:            "John Doe",
			Email:           e,
			Password:        "password123",
			ConfirmPassword: "password123",
		}
		if err := ValidateStruct(&form); err == nil {
			t.Errorf("expected email %q to be rejected", e)
		}
	}
}

func TestValidateStruct_PasswordTooShort(t *testing.T) {
	form := registerForm{
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "abc",
		ConfirmPassword: "abc",
	}
	err := ValidateStruct(&form)
	if err == nil || !strings.Contains(err.Error(), "Password") {
		t.Fatalf("expected password length error, got %v", err)
	}
}

func TestValidateStruct_ConfirmMismatch(t *testing.T) {
	form := registerForm{
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "password123",
		ConfirmPassword: "different123",
	}
	err := ValidateStruct(&form)
	if err == nil || !strings.Contains(err.Error(), "ConfirmPassword") {
		t.Fatalf("expected confirm mismatch error, got %v", err)
	}
}
