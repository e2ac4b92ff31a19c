package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usermodel "github.com/certward/certward-api/api/model/userModel"
	"github.com/certward/certward-api/test/helpers"
)

// TestUser_CreateAndGetByUsername covers the registration path
func TestUser_CreateAndGetByUsername(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	repo := usermodel.NewUserRepository(db)

	created, err := repo.Create("ada", "hashed-password", "Ada", "Lovelace")
	require.NoError(t, err, "Failed to create user")
	require.NotEmpty(t, created.ID)

	retrieved, err := repo.GetByUsername("ada")
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, "Ada", retrieved.Firstname)

	byId, err := repo.GetById(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byId)
	assert.Equal(t, "ada", byId.Username)
}

// TestUser_GetByUsername_NotFound verifies the nil, nil contract
func TestUser_GetByUsername_NotFound(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	repo := usermodel.NewUserRepository(db)

	user, err := repo.GetByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

// TestUser_DuplicateUsername hits the unique index
func TestUser_DuplicateUsername(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	repo := usermodel.NewUserRepository(db)

	_, err := repo.Create("ada", "hashed-password", "Ada", "Lovelace")
	require.NoError(t, err)

	_, err = repo.Create("ada", "other-hash", "Other", "Person")
	assert.Error(t, err, "Expected unique constraint violation")
}
