package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/billkeeper/internal/storage/memory"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "hunter2" {
		t.Fatal("digest must not equal the plaintext")
	}

	// Salted: hashing the same plaintext twice yields different digests.
	digest2, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == digest2 {
		t.Fatal("two digests of the same plaintext must differ")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := CheckPassword("correct horse", digest)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected match for the original plaintext")
	}

	ok, err = CheckPassword("battery staple", digest)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch for a different plaintext")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	ok, err := CheckPassword("anything", "not-a-bcrypt-digest")
	if err == nil {
		t.Fatal("expected error for malformed digest, got nil")
	}
	if ok {
		t.Fatal("malformed digest must never verify")
	}
}

func TestPasswordAuthenticator_Register(t *testing.T) {
	t.Parallel()

	store := memory.New()
	a := NewPasswordAuthenticator(store)
	ctx := context.Background()

	user, err := a.Register(ctx, "Ada", "Lovelace", "ada@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.PasswordHash == "pw123456" {
		t.Fatal("stored credential must be hashed")
	}

	// Second registration with the same email is rejected.
	_, err = a.Register(ctx, "Ada", "Again", "ada@x.com", "other")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestPasswordAuthenticator_Authenticate(t *testing.T) {
	t.Parallel()

	store := memory.New()
	a := NewPasswordAuthenticator(store)
	ctx := context.Background()

	if _, err := a.Register(ctx, "Ada", "Lovelace", "ada@x.com", "pw123456"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, err := a.Authenticate(ctx, "ada@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.Email != "ada@x.com" {
		t.Fatalf("email mismatch: got %q", user.Email)
	}

	if _, err := a.Authenticate(ctx, "ada@x.com", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if _, err := a.Authenticate(ctx, "nobody@x.com", "pw123456"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
