package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindcare-app/mindcare/internal/auth"
	"github.com/mindcare-app/mindcare/internal/common"
	"github.com/mindcare-app/mindcare/internal/dbx"
	"github.com/mindcare-app/mindcare/internal/models"
	"github.com/mindcare-app/mindcare/internal/repositories/kv"
)

// AuthService manages the identity collection and the single active session.
//
// Contract:
//   - Register: fails with common.ErrDuplicateEmail when the email is taken;
//     otherwise creates a verified identity and opens a session for it.
//   - Login: matches exact (email, password) on verified identities; every
//     failure shape reports the same common.ErrInvalidCredentials so account
//     existence does not leak.
//   - Logout: idempotent.
//   - UpdateProfile: explicit field-by-field patch; requires a session.
//   - ChangePassword: verifies the current secret, validates the new one.
//   - RequestPasswordReset: existence check only, nothing is delivered.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.Identity, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error)
	ChangePassword(ctx context.Context, current, newPassword, confirm string) error
	RequestPasswordReset(ctx context.Context, email string) (bool, error)
}

type authService struct {
	d Deps
	k keys
}

// NewAuthService constructs an AuthService over the given dependencies.
func NewAuthService(d Deps) AuthService {
	d = d.normalize()
	return &authService{d: d, k: keys{prefix: d.KeyPrefix}}
}

const minPasswordLen = 6

func (s *authService) loadUsers(ctx context.Context, repo kv.Repository) ([]models.Identity, error) {
	var users []models.Identity
	if _, err := getJSON(ctx, repo, s.d.Log, s.k.users(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *authService) openSession(ctx context.Context, repo kv.Repository, identity models.Identity) (*models.Session, error) {
	token, err := auth.GenerateToken(identity.ID, s.d.TokenSecret, s.d.Clock.Now())
	if err != nil {
		return nil, fmt.Errorf("minting session token: %w", err)
	}
	if err := repo.Set(ctx, s.k.token(), []byte(token)); err != nil {
		return nil, err
	}
	profile := identity.Profile()
	if err := setJSON(ctx, repo, s.k.activeUser(), profile); err != nil {
		return nil, err
	}
	return &models.Session{Token: token, User: profile}, nil
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*models.Identity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	case email == "" || !strings.Contains(email, "@"):
		return nil, fmt.Errorf("%w: a valid email is required", common.ErrValidation)
	case len(password) < minPasswordLen:
		return nil, fmt.Errorf("%w: password must be at least %d characters long", common.ErrValidation, minPasswordLen)
	}

	var identity models.Identity
	err := dbx.WithTx(ctx, s.d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users, err := s.loadUsers(ctx, repo)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Email == email {
				return common.ErrDuplicateEmail
			}
		}

		identity = models.Identity{
			ID:        s.d.IDs(),
			Name:      name,
			Email:     email,
			Password:  password,
			Verified:  true, // demo policy, no verification flow exists
			CreatedAt: s.d.Clock.Now(),
		}

		if err := setJSON(ctx, repo, s.k.users(), append(users, identity)); err != nil {
			return err
		}

		// Auto-login after registration.
		_, err = s.openSession(ctx, repo, identity)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.d.Log.Info(ctx, "identity registered", "id", identity.ID)
	return &identity, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	var identity models.Identity
	err := dbx.WithTx(ctx, s.d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users, err := s.loadUsers(ctx, repo)
		if err != nil {
			return err
		}

		for _, u := range users {
			if u.Email == email && u.Password == password && u.Verified {
				identity = u
				_, err := s.openSession(ctx, repo, u)
				return err
			}
		}
		return common.ErrInvalidCredentials
	})
	if err != nil {
		return nil, err
	}

	s.d.Log.Info(ctx, "session opened", "id", identity.ID)
	return &identity, nil
}

func (s *authService) Logout(ctx context.Context) error {
	repo := kv.NewSQLiteRepository(s.d.DB)
	if err := repo.Delete(ctx, s.k.token()); err != nil {
		return err
	}
	return repo.Delete(ctx, s.k.activeUser())
}

// CurrentSession returns the active session, or nil when nobody is logged in.
func (s *authService) CurrentSession(ctx context.Context) (*models.Session, error) {
	repo := kv.NewSQLiteRepository(s.d.DB)

	token, err := repo.Get(ctx, s.k.token())
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	var profile models.Profile
	ok, err := getJSON(ctx, repo, s.d.Log, s.k.activeUser(), &profile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return &models.Session{Token: string(token), User: profile}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, common.ErrNotAuthenticated
	}

	var updated models.Profile
	err = dbx.WithTx(ctx, s.d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users, err := s.loadUsers(ctx, repo)
		if err != nil {
			return err
		}

		if patch.Email != nil {
			for _, u := range users {
				if u.Email == *patch.Email && u.ID != session.User.ID {
					return common.ErrDuplicateEmail
				}
			}
		}

		for i := range users {
			if users[i].ID != session.User.ID {
				continue
			}
			applyPatch(&users[i], patch)
			updated = users[i].Profile()

			if err := setJSON(ctx, repo, s.k.users(), users); err != nil {
				return err
			}
			return setJSON(ctx, repo, s.k.activeUser(), updated)
		}
		return fmt.Errorf("%w: identity %s", common.ErrNotFound, session.User.ID)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// applyPatch merges non-nil patch fields into the identity, one field at a
// time.
func applyPatch(identity *models.Identity, patch models.ProfilePatch) {
	if patch.Name != nil {
		identity.Name = *patch.Name
	}
	if patch.Email != nil {
		identity.Email = *patch.Email
	}
	if patch.ProfilePicture != nil {
		identity.ProfilePicture = *patch.ProfilePicture
	}
}

func (s *authService) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return common.ErrNotAuthenticated
	}

	if newPassword != confirm {
		return fmt.Errorf("%w: new passwords do not match", common.ErrValidation)
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters long", common.ErrValidation, minPasswordLen)
	}

	return dbx.WithTx(ctx, s.d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users, err := s.loadUsers(ctx, repo)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != session.User.ID {
				continue
			}
			if users[i].Password != current {
				return common.ErrInvalidCredentials
			}
			users[i].Password = newPassword
			return setJSON(ctx, repo, s.k.users(), users)
		}
		return fmt.Errorf("%w: identity %s", common.ErrNotFound, session.User.ID)
	})
}

// RequestPasswordReset reports whether an identity with the email exists.
// No mail is sent; delivery is an external concern this client does not have.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (bool, error) {
	repo := kv.NewSQLiteRepository(s.d.DB)
	users, err := s.loadUsers(ctx, repo)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
