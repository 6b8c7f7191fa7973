package validation

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid", username: "alice", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "whitespace only", username: "   ", wantErr: true},
		{name: "at limit", username: strings.Repeat("a", 80), wantErr: false},
		{name: "over limit", username: strings.Repeat("a", 81), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "secret", wantErr: false},
		{name: "empty", password: "", wantErr: true},
		{name: "at bcrypt limit", password: strings.Repeat("p", 72), wantErr: false},
		{name: "over bcrypt limit", password: strings.Repeat("p", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid", title: "Learn Go", wantErr: false},
		{name: "empty", title: "", wantErr: true},
		{name: "whitespace only", title: "  \t ", wantErr: true},
		{name: "at limit", title: strings.Repeat("t", 200), wantErr: false},
		{name: "over limit", title: strings.Repeat("t", 201), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
		})
	}
}
