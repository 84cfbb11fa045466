package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare-app/mindcare/internal/common"
	"github.com/mindcare-app/mindcare/internal/models"
)

func str(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	d, clock := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	identity, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "Ana", identity.Name)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.True(t, identity.Verified, "demo accounts are verified on creation")
	assert.Equal(t, clock.Now(), identity.CreatedAt)

	// Registration opens a session.
	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Ana", session.User.Name)
	assert.NotEmpty(t, session.Token)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Another Ana", "a@x.com", "different8")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	// The first identity is unaffected and can still log in.
	identity, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "Ana", identity.Name)
}

func TestAuthService_Register_Validation(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	tests := []struct {
		name, userName, email, password string
	}{
		{"missing name", "", "a@x.com", "pw123456"},
		{"bad email", "Ana", "not-an-email", "pw123456"},
		{"short password", "Ana", "a@x.com", "pw1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestAuthService_Login_SingleFailureKind(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	// Wrong password and unknown email report the exact same error, so
	// callers cannot probe which accounts exist.
	_, wrongPw := svc.Login(ctx, "a@x.com", "nope1234")
	_, unknown := svc.Login(ctx, "ghost@x.com", "pw123456")

	require.ErrorIs(t, wrongPw, common.ErrInvalidCredentials)
	require.ErrorIs(t, unknown, common.ErrInvalidCredentials)
	assert.Equal(t, wrongPw, unknown)
}

func TestAuthService_Login_UnverifiedRejected(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	users, err := json.Marshal([]models.Identity{{
		ID: "u-1", Name: "Ana", Email: "a@x.com", Password: "pw123456", Verified: false,
	}})
	require.NoError(t, err)
	putRaw(t, d.DB, "mindcare_users", users)

	_, err = svc.Login(ctx, "a@x.com", "pw123456")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))

	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	profile, err := svc.UpdateProfile(ctx, models.ProfilePatch{Name: str("Ana Maria")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", profile.Name)
	assert.Equal(t, "a@x.com", profile.Email, "unpatched fields stay put")

	// Both the snapshot and the collection entry carry the change.
	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", session.User.Name)

	require.NoError(t, svc.Logout(ctx))
	identity, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", identity.Name)
}

func TestAuthService_UpdateProfile_RequiresSession(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)

	_, err := svc.UpdateProfile(context.Background(), models.ProfilePatch{Name: str("x")})
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestAuthService_UpdateProfile_EmailStaysUnique(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Bob", "b@x.com", "pw123456")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, models.ProfilePatch{Email: str("b@x.com")})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	// Re-setting one's own email is fine.
	_, err = svc.UpdateProfile(ctx, models.ProfilePatch{Email: str("a@x.com")})
	require.NoError(t, err)
}

func TestAuthService_ChangePassword(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	t.Run("mismatched confirmation", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "pw123456", "newpass1", "newpass2")
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("too short", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "pw123456", "short", "short")
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "wrong999", "newpass1", "newpass1")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, "pw123456", "newpass1", "newpass1"))

		require.NoError(t, svc.Logout(ctx))
		_, err := svc.Login(ctx, "a@x.com", "pw123456")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
		_, err = svc.Login(ctx, "a@x.com", "newpass1")
		require.NoError(t, err)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	exists, err := svc.RequestPasswordReset(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.RequestPasswordReset(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAuthService_CorruptUsersCollectionFallsBackToEmpty(t *testing.T) {
	d, _ := testDeps(t)
	svc := NewAuthService(d)
	ctx := context.Background()

	putRaw(t, d.DB, "mindcare_users", []byte("{definitely not json"))

	// A corrupt collection must not crash registration; it starts over.
	_, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
}
