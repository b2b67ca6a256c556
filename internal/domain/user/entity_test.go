package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"正常邮箱", "ada@example.com", false},
		{"只有@也算合法", "@", false},
		{"缺少@", "not-an-email", true},
		{"空邮箱", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser("ada", tt.email, "2024-01-15", "")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidEmail))
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, u.Email)
		})
	}
}
