package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"valid", "Rugby2026!", true},
		{"too short", "Ab!", false},
		{"no uppercase", "rugby2026!", false},
		{"no symbol", "Rugby2026", false},
		{"symbol class includes punctuation", "Password.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validatePassword(tt.password)
			if tt.wantOK {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}
