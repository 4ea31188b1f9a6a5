package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpay/nexpay-backend/internal/models"
)

func TestPublicProjectionOmitsCredential(t *testing.T) {
	u := models.User{
		ID:           "1",
		Name:         "Alice",
		Email:        "alice@nexpay.com",
		PasswordHash: "$2a$10$secret",
		Role:         models.RoleCustomer,
		Balance:      1000,
	}

	pub := u.Public()
	assert.Equal(t, u.ID, pub.ID)
	assert.Equal(t, u.Balance, pub.Balance)

	raw, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	// The internal record is shielded as well.
	raw, err = json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr bool
	}{
		{"valid", models.User{Name: "Alice", Email: "a@b.com", Role: models.RoleCustomer}, false},
		{"short name", models.User{Name: "A", Email: "a@b.com", Role: models.RoleCustomer}, true},
		{"bad email", models.User{Name: "Alice", Email: "nope", Role: models.RoleCustomer}, true},
		{"bad role", models.User{Name: "Alice", Email: "a@b.com", Role: "root"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleStartingBalance(t *testing.T) {
	assert.Equal(t, int64(1000), models.RoleCustomer.StartingBalance())
	assert.Equal(t, int64(0), models.RoleMerchant.StartingBalance())
	assert.Equal(t, int64(0), models.RoleAdmin.StartingBalance())
}
