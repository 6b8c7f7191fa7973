package service

import (
	"errors"
	"strconv"
	"testing"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	auth, _ := newTestServices(t)

	user, err := auth.Register("alice", "correct-horse")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Register() should assign an id")
	}
	if user.PasswordHash == "correct-horse" {
		t.Fatal("password must not be stored in plaintext")
	}

	loggedIn, token, err := auth.Login("alice", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Login() user id = %d, want %d", loggedIn.ID, user.ID)
	}
	// Plain scheme: the token is the decimal user id
	if token != strconv.FormatInt(user.ID, 10) {
		t.Errorf("token = %q, want %q", token, strconv.FormatInt(user.ID, 10))
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	auth, _ := newTestServices(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "whitespace username", username: "   ", password: "secret"},
		{name: "empty password", username: "alice", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(tt.username, tt.password)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Register(%q, %q) = %v, want ErrValidation", tt.username, tt.password, err)
			}
		})
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	auth, _ := newTestServices(t)

	_, err := auth.Register("alice", "secret-one")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err = auth.Register("alice", "secret-two")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Register() duplicate = %v, want ErrUsernameTaken", err)
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	auth, _ := newTestServices(t)

	_, err := auth.Register("alice", "right-password")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, _, err = auth.Login("alice", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() wrong password = %v, want ErrInvalidCredentials", err)
	}

	_, _, err = auth.Login("nobody", "right-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() unknown user = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_ResolveToken(t *testing.T) {
	auth, _ := newTestServices(t)
	userID := registerTestUser(t, auth, "alice")

	resolved, err := auth.ResolveToken(strconv.FormatInt(userID, 10))
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if resolved != userID {
		t.Errorf("ResolveToken() = %d, want %d", resolved, userID)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "not an integer", token: "abc"},
		{name: "empty", token: ""},
		{name: "unknown user id", token: "99999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.ResolveToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ResolveToken(%q) = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}
