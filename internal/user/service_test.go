package user

import (
	"context"
	"errors"
	"testing"

	"stockview-be/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockAuthenticator) Signup(ctx context.Context, name, email, password string) (User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockAuthenticator) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Current() (User, bool) {
	args := m.Called()
	return args.Get(0).(User), args.Bool(1)
}

func (m *MockSession) SetUser(ctx context.Context, u User, persist bool) error {
	args := m.Called(ctx, u, persist)
	return args.Error(0)
}

func (m *MockSession) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

const testSecret = "test-secret"

var demoUser = User{ID: "1", Name: "Demo User", Email: "demo@example.com", Role: RoleAdmin}

func newTestService() (*MockAuthenticator, *MockSession, *notify.Recorder, Service) {
	auth := new(MockAuthenticator)
	sess := new(MockSession)
	rec := notify.NewRecorder(0)
	return auth, sess, rec, NewService(auth, sess, rec, testSecret)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		auth, sess, rec, svc := newTestService()
		auth.On("Login", ctx, "demo@example.com", "password").Return(demoUser, nil)
		sess.On("SetUser", ctx, demoUser, true).Return(nil)

		token, u, err := svc.Login(ctx, "demo@example.com", "password", true)

		require.NoError(t, err)
		assert.Equal(t, demoUser, u)

		claims, err := ParseJWT(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "1", claims.UserID)
		assert.Equal(t, RoleAdmin, claims.Role)

		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, notify.LevelSuccess, got[0].Level)
		assert.Equal(t, "Successfully logged in!", got[0].Message)

		auth.AssertExpectations(t)
		sess.AssertExpectations(t)
	})

	t.Run("Without remember me", func(t *testing.T) {
		auth, sess, _, svc := newTestService()
		auth.On("Login", ctx, "demo@example.com", "password").Return(demoUser, nil)
		sess.On("SetUser", ctx, demoUser, false).Return(nil)

		_, _, err := svc.Login(ctx, "demo@example.com", "password", false)

		require.NoError(t, err)
		sess.AssertExpectations(t)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		auth, sess, rec, svc := newTestService()
		auth.On("Login", ctx, "demo@example.com", "wrong").Return(User{}, ErrInvalidCredentials)

		token, _, err := svc.Login(ctx, "demo@example.com", "wrong", true)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)

		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, notify.LevelError, got[0].Level)
		assert.Equal(t, "Login failed. Please check your credentials.", got[0].Message)
		sess.AssertNotCalled(t, "SetUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Session error", func(t *testing.T) {
		auth, sess, rec, svc := newTestService()
		auth.On("Login", ctx, "demo@example.com", "password").Return(demoUser, nil)
		sess.On("SetUser", ctx, demoUser, true).Return(errors.New("disk full"))

		_, _, err := svc.Login(ctx, "demo@example.com", "password", true)

		assert.EqualError(t, err, "disk full")
		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, notify.LevelError, got[0].Level)
	})

	t.Run("Missing secret", func(t *testing.T) {
		auth := new(MockAuthenticator)
		sess := new(MockSession)
		svc := NewService(auth, sess, nil, "")
		auth.On("Login", ctx, "demo@example.com", "password").Return(demoUser, nil)

		_, _, err := svc.Login(ctx, "demo@example.com", "password", true)

		assert.ErrorIs(t, err, ErrMissingSecret)
		sess.AssertNotCalled(t, "SetUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()
	newUser := User{ID: "abc", Name: "Jane Doe", Email: "jane@example.com", Role: RoleUser, Avatar: AvatarURL("Jane Doe")}

	t.Run("Success persists session", func(t *testing.T) {
		auth, sess, rec, svc := newTestService()
		auth.On("Signup", ctx, "Jane Doe", "jane@example.com", "secret1").Return(newUser, nil)
		sess.On("SetUser", ctx, newUser, true).Return(nil)

		token, u, err := svc.Signup(ctx, "Jane Doe", "jane@example.com", "secret1")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, newUser, u)

		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, "Account created successfully!", got[0].Message)
		sess.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		auth, _, rec, svc := newTestService()
		auth.On("Signup", ctx, "Jane Doe", "jane@example.com", "secret1").Return(User{}, errors.New("backend down"))

		_, _, err := svc.Signup(ctx, "Jane Doe", "jane@example.com", "secret1")

		assert.Error(t, err)
		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, notify.LevelError, got[0].Level)
		assert.Equal(t, "Signup failed. Please try again.", got[0].Message)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		_, sess, rec, svc := newTestService()
		sess.On("Clear", ctx).Return(nil)

		require.NoError(t, svc.Logout(ctx))

		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, notify.LevelInfo, got[0].Level)
		assert.Equal(t, "You have been logged out", got[0].Message)
	})

	t.Run("Clear error", func(t *testing.T) {
		_, sess, rec, svc := newTestService()
		sess.On("Clear", ctx).Return(errors.New("redis down"))

		assert.Error(t, svc.Logout(ctx))
		assert.Empty(t, rec.Drain())
	})
}

func TestService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		auth, _, rec, svc := newTestService()
		auth.On("ForgotPassword", ctx, "demo@example.com").Return(nil)

		require.NoError(t, svc.ForgotPassword(ctx, "demo@example.com"))

		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, "Password reset instructions sent to your email", got[0].Message)
	})

	t.Run("Failure", func(t *testing.T) {
		auth, _, rec, svc := newTestService()
		auth.On("ForgotPassword", ctx, "demo@example.com").Return(errors.New("smtp"))

		assert.Error(t, svc.ForgotPassword(ctx, "demo@example.com"))

		got := rec.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, "Failed to send reset instructions. Please try again.", got[0].Message)
	})
}

func TestService_Current(t *testing.T) {
	_, sess, _, svc := newTestService()
	sess.On("Current").Return(demoUser, true)

	u, ok := svc.Current()

	assert.True(t, ok)
	assert.Equal(t, demoUser, u)
}
