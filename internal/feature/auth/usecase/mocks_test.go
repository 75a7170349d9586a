package usecase

import (
	"context"
	"strings"

	"cleanneat_backend/internal/feature/auth/domain/entity"
	"cleanneat_backend/internal/shared/audit"
)

// mockUserRepository is a mock implementation of UserRepository.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc       func(ctx context.Context, id string) (*entity.User, error)
	ListFunc           func(ctx context.Context) ([]entity.User, error)
	SetActiveFunc      func(ctx context.Context, id string, active bool) (*entity.User, error)
	UpdatePasswordFunc func(ctx context.Context, id, hash string) error
	DeleteFunc         func(ctx context.Context, id string) error

	mutations int
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.mutations++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default: return user not found error
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) SetActive(ctx context.Context, id string, active bool) (*entity.User, error) {
	m.mutations++
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return &entity.User{ID: id, IsActive: active}, nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	m.mutations++
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hash)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	m.mutations++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer.
type mockTokenIssuer struct {
	IssueFunc func(userID, email string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID, email string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// fakeHasher "hashes" by prefixing so tests stay fast; Verify records the
// digest it was asked to compare against.
type fakeHasher struct {
	verified []string
}

func (h *fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (h *fakeHasher) Verify(plain, digest string) bool {
	h.verified = append(h.verified, digest)
	return strings.TrimPrefix(digest, "hashed:") == plain && strings.HasPrefix(digest, "hashed:")
}

// recordingAudit captures audit entries.
type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Record(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}

type mockNotifier struct {
	SendFunc func(ctx context.Context, to, name, loginEmail, plain string) error
	sent     []string
}

func (m *mockNotifier) SendUserCredentials(ctx context.Context, to, name, loginEmail, plain string) error {
	m.sent = append(m.sent, plain)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, name, loginEmail, plain)
	}
	return nil
}
