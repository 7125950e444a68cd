package services

import (
	"context"
	"testing"
	"time"

	"movie-discovery-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

func newAuthService(store UserStore) *AuthService {
	return NewAuthService(store, NewTokenManager("test-secret", time.Hour))
}

func TestAuthService_Register(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected token in register response")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("User.Email = %q, want %q", resp.User.Email, "alice@example.com")
	}
	if resp.User.ID.IsZero() {
		t.Error("expected user id to be assigned")
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	req := &models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password1"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	req2 := &models.RegisterRequest{Username: "bob", Email: "alice@example.com", Password: "password2"}
	if _, err := svc.Register(context.Background(), req2); err != ErrUserExists {
		t.Errorf("second Register error = %v, want ErrUserExists", err)
	}
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	req := &models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password1"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	req2 := &models.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "password2"}
	if _, err := svc.Register(context.Background(), req2); err != ErrUserExists {
		t.Errorf("second Register error = %v, want ErrUserExists", err)
	}
}

// duplicateKeyStore simulates the unique index rejecting an insert that the
// pre-insert lookups did not see (a concurrent register).
type duplicateKeyStore struct {
	*fakeUserStore
}

func (s *duplicateKeyStore) CreateUser(context.Context, *models.User) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key error"}},
	}
}

func TestAuthService_RegisterConcurrentDuplicate(t *testing.T) {
	svc := newAuthService(&duplicateKeyStore{newFakeUserStore()})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	if err != ErrUserExists {
		t.Errorf("duplicate-key insert error = %v, want ErrUserExists", err)
	}
}

func TestAuthService_RegisterNeverStoresPlaintext(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	if _, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := store.FindByEmail(context.Background(), "alice@example.com")
	if err != nil || user == nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if user.Password == "password1" {
		t.Error("password stored as plaintext")
	}
	if user.Password == "" {
		t.Error("expected stored password hash")
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	if _, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected token in login response")
	}
	if resp.User.Username != "alice" {
		t.Errorf("User.Username = %q, want %q", resp.User.Username, "alice")
	}
}

// Wrong password and unknown email must be indistinguishable.
func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	if _, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	_, unknownEmail := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password1",
	})

	if wrongPassword != ErrInvalidCredentials {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if unknownEmail != ErrInvalidCredentials {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownEmail)
	}
	if wrongPassword != unknownEmail {
		t.Error("wrong-password and unknown-email must return the identical error")
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), resp.User.ID.Hex())
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "alice@example.com")
	}

	if _, err := svc.CurrentUser(context.Background(), "ffffffffffffffffffffffff"); err != ErrNotFound {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
	if _, err := svc.CurrentUser(context.Background(), "not-an-object-id"); err != ErrNotFound {
		t.Errorf("bad id error = %v, want ErrNotFound", err)
	}
}
