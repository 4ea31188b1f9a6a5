package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpay/nexpay-backend/internal/auth"
	"github.com/nexpay/nexpay-backend/internal/models"
	"github.com/nexpay/nexpay-backend/internal/repository/memory"
	"github.com/nexpay/nexpay-backend/internal/services"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-access", "test-refresh", "nexpay-test", 15*time.Minute, time.Hour)
}

func newUserService(store *memory.Store) *services.UserService {
	return services.NewUserService(store.Directory(), newTokenManager())
}

func TestSignupIssuesSession(t *testing.T) {
	svc := newUserService(memory.New(nil, nil))

	sess, err := svc.Signup("Carol", "carol@nexpay.com", "hunter22", models.RoleCustomer)
	require.NoError(t, err)

	assert.Equal(t, "Carol", sess.User.Name)
	assert.Equal(t, models.RoleCustomer, sess.User.Role)
	assert.Equal(t, int64(1000), sess.User.Balance)
	assert.NotEmpty(t, sess.AccessToken)
	assert.NotEmpty(t, sess.RefreshToken)

	claims, err := newTokenManager().ParseAccess(sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestSignupMerchantStartsEmpty(t *testing.T) {
	svc := newUserService(memory.New(nil, nil))

	sess, err := svc.Signup("Corner Shop", "shop@nexpay.com", "hunter22", models.RoleMerchant)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sess.User.Balance)
}

func TestSignupRejectsBadInput(t *testing.T) {
	svc := newUserService(memory.New(nil, nil))

	_, err := svc.Signup("Carol", "carol@nexpay.com", "short", models.RoleCustomer)
	assert.Error(t, err)

	_, err = svc.Signup("Carol", "not-an-email", "hunter22", models.RoleCustomer)
	assert.Error(t, err)

	_, err = svc.Signup("Carol", "carol@nexpay.com", "hunter22", "root")
	assert.Error(t, err)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := newUserService(memory.New(nil, nil))

	_, err := svc.Signup("Carol", "carol@nexpay.com", "hunter22", models.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.Signup("Impostor", "carol@nexpay.com", "hunter22", models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newUserService(memory.New(nil, nil))
	_, err := svc.Signup("Carol", "carol@nexpay.com", "hunter22", models.RoleCustomer)
	require.NoError(t, err)

	sess, err := svc.Login("carol@nexpay.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "Carol", sess.User.Name)

	_, err = svc.Login("carol@nexpay.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login("nobody@nexpay.com", "hunter22")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc := newUserService(memory.New(nil, nil))
	first, err := svc.Signup("Carol", "carol@nexpay.com", "hunter22", models.RoleCustomer)
	require.NoError(t, err)

	sess, err := svc.Refresh(first.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, sess.User.ID)

	_, err = svc.Refresh(first.AccessToken)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Refresh("garbage")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
