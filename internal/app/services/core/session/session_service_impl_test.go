package session

import (
	"context"
	"errors"
	"saude-connect/internal/app/services/shared/localstorage"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validUser = `{"id":1,"email":"a@b.com","user_type":"patient"}`

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockStorage) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func storedKeys(t *testing.T, svc *sessionService) map[string]bool {
	t.Helper()
	keys := map[string]bool{}
	for _, key := range []string{constvars.SessionTokenKey, constvars.SessionUserKey, constvars.SessionLegacyUserKey} {
		_, found, err := svc.Storage.Get(context.Background(), key)
		require.NoError(t, err)
		keys[key] = found
	}
	return keys
}

func newService(values map[string]string) *sessionService {
	return NewSessionService(localstorage.NewMemoryStorageWith(values), zap.NewNop()).(*sessionService)
}

func TestSessionServiceCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Session", func(t *testing.T) {
		svc := newService(map[string]string{
			constvars.SessionTokenKey: "abc123456789",
			constvars.SessionUserKey:  validUser,
		})

		assert.True(t, svc.IsAuthenticated(ctx))
		token, ok := svc.Token(ctx)
		assert.True(t, ok)
		assert.Equal(t, "abc123456789", token)
		userType, ok := svc.UserType(ctx)
		assert.True(t, ok)
		assert.Equal(t, constvars.UserTypePatient, userType)
	})

	t.Run("Empty Storage", func(t *testing.T) {
		svc := newService(nil)

		assert.False(t, svc.IsAuthenticated(ctx))
		_, ok := svc.User(ctx)
		assert.False(t, ok)
	})

	corrupt := []struct {
		name   string
		values map[string]string
	}{
		{"Missing Email And Type", map[string]string{constvars.SessionTokenKey: "abc123456789", constvars.SessionUserKey: `{"id":1}`}},
		{"Unparsable User", map[string]string{constvars.SessionTokenKey: "abc123456789", constvars.SessionUserKey: `{"id":`}},
		{"Unknown User Type", map[string]string{constvars.SessionTokenKey: "abc", constvars.SessionUserKey: `{"id":1,"email":"a@b.com","user_type":"nurse"}`}},
		{"Token Without User", map[string]string{constvars.SessionTokenKey: "abc123456789"}},
		{"User Without Token", map[string]string{constvars.SessionUserKey: validUser}},
		{"Blank Token", map[string]string{constvars.SessionTokenKey: "  ", constvars.SessionUserKey: validUser}},
	}
	for _, tt := range corrupt {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.values)

			assert.False(t, svc.IsAuthenticated(ctx))

			keys := storedKeys(t, svc)
			assert.False(t, keys[constvars.SessionTokenKey], "token must be cleared")
			assert.False(t, keys[constvars.SessionUserKey], "user must be cleared")

			_, ok := svc.Token(ctx)
			assert.False(t, ok, "reads stay unauthenticated after healing")
			_, ok = svc.User(ctx)
			assert.False(t, ok)
		})
	}

	t.Run("Legacy User Key Is Migrated", func(t *testing.T) {
		svc := newService(map[string]string{
			constvars.SessionTokenKey:      "abc123456789",
			constvars.SessionLegacyUserKey: validUser,
		})

		user, ok := svc.User(ctx)

		require.True(t, ok)
		assert.Equal(t, int64(1), user.ID)
		keys := storedKeys(t, svc)
		assert.True(t, keys[constvars.SessionUserKey])
		assert.False(t, keys[constvars.SessionLegacyUserKey])
	})

	t.Run("Storage Read Failure Does Not Clear", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("Get", mock.Anything, constvars.SessionTokenKey).Return("", false, errors.New("disk gone"))
		svc := NewSessionService(storage, zap.NewNop())

		assert.False(t, svc.IsAuthenticated(ctx))
		storage.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
		storage.AssertExpectations(t)
	})
}

func TestSessionServiceSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Raw User Unmodified", func(t *testing.T) {
		svc := newService(map[string]string{constvars.SessionLegacyUserKey: `{"id":9}`})
		raw := []byte(`{"id":2,"email":"p@b.com","user_type":"professional","bio":"Pilates"}`)

		session, err := svc.Save(ctx, "tok", raw)

		require.NoError(t, err)
		assert.Equal(t, "tok", session.Token)
		stored, found, err := svc.Storage.Get(ctx, constvars.SessionUserKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, string(raw), stored)
		assert.False(t, storedKeys(t, svc)[constvars.SessionLegacyUserKey])
	})

	t.Run("Rejects Invalid User", func(t *testing.T) {
		svc := newService(nil)

		_, err := svc.Save(ctx, "tok", []byte(`{"id":2}`))

		require.Error(t, err)
		assert.False(t, svc.IsAuthenticated(ctx))
		assert.False(t, storedKeys(t, svc)[constvars.SessionTokenKey])
	})

	t.Run("Rejects Missing Token", func(t *testing.T) {
		svc := newService(nil)

		_, err := svc.Save(ctx, "", []byte(validUser))

		assert.Error(t, err)
	})

	t.Run("Write Failure Clears Partial State", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("Set", mock.Anything, constvars.SessionTokenKey, "tok").Return(nil)
		storage.On("Set", mock.Anything, constvars.SessionUserKey, validUser).Return(errors.New("quota"))
		storage.On("Remove", mock.Anything, mock.Anything).Return(nil)
		svc := NewSessionService(storage, zap.NewNop())

		_, err := svc.Save(ctx, "tok", []byte(validUser))

		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindServer))
		storage.AssertCalled(t, "Remove", mock.Anything, constvars.SessionTokenKey)
	})
}

func TestSessionServiceClear(t *testing.T) {
	ctx := context.Background()

	t.Run("Logout Always Unauthenticates", func(t *testing.T) {
		svc := newService(map[string]string{
			constvars.SessionTokenKey: "abc123456789",
			constvars.SessionUserKey:  validUser,
		})
		require.True(t, svc.IsAuthenticated(ctx))

		svc.Clear(ctx)

		assert.False(t, svc.IsAuthenticated(ctx))
		svc.Clear(ctx)
		assert.False(t, svc.IsAuthenticated(ctx))
	})

	t.Run("Remove Errors Are Swallowed", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("Remove", mock.Anything, mock.Anything).Return(errors.New("read only"))
		svc := NewSessionService(storage, zap.NewNop())

		assert.NotPanics(t, func() { svc.Clear(ctx) })
		storage.AssertNumberOfCalls(t, "Remove", 3)
	})
}

func TestSessionServiceReplace(t *testing.T) {
	ctx := context.Background()
	svc := newService(map[string]string{
		constvars.SessionTokenKey: "abc",
		constvars.SessionUserKey:  validUser,
	})
	user, ok := svc.User(ctx)
	require.True(t, ok)

	user.Raw = []byte(`{"id":1,"email":"a@b.com","user_type":"patient","phone":"11999990000"}`)
	require.NoError(t, svc.Replace(ctx, user))

	refreshed, ok := svc.User(ctx)
	require.True(t, ok)
	assert.Equal(t, "11999990000", refreshed.Phone)
	token, _ := svc.Token(ctx)
	assert.Equal(t, "abc", token)
}

func TestSessionServiceTokenClaims(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes JWT Without Verifying", func(t *testing.T) {
		expiresAt := time.Now().Add(time.Hour).Unix()
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id":   1,
			"user_type": "patient",
			"exp":       expiresAt,
		}).SignedString([]byte("server-secret"))
		require.NoError(t, err)

		svc := newService(map[string]string{
			constvars.SessionTokenKey: signed,
			constvars.SessionUserKey:  validUser,
		})

		claims, err := svc.TokenClaims(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "patient", claims.UserType)
		require.NotNil(t, claims.ExpiresAt)
		assert.Equal(t, expiresAt, claims.ExpiresAt.Unix())
		assert.False(t, claims.Expired(time.Now()))
	})

	t.Run("Opaque Token", func(t *testing.T) {
		svc := newService(map[string]string{
			constvars.SessionTokenKey: "abc123456789",
			constvars.SessionUserKey:  validUser,
		})

		_, err := svc.TokenClaims(ctx)

		assert.Error(t, err)
		assert.True(t, svc.IsAuthenticated(ctx), "an opaque token is still a valid session")
	})

	t.Run("No Session", func(t *testing.T) {
		_, err := newService(nil).TokenClaims(ctx)

		assert.True(t, exceptions.IsKind(err, exceptions.KindAuthRequired))
	})
}
