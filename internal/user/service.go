package user

import (
	"context"

	"stockview-be/internal/logger"
	"stockview-be/internal/notify"

	"go.uber.org/zap"
)

// Authenticator performs the credential round trips.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (User, error)
	Signup(ctx context.Context, name, email, password string) (User, error)
	ForgotPassword(ctx context.Context, email string) error
}

// Session holds the current user slot.
type Session interface {
	Current() (User, bool)
	SetUser(ctx context.Context, u User, persist bool) error
	Clear(ctx context.Context) error
}

type Service interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (string, User, error)
	Signup(ctx context.Context, name, email, password string) (string, User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	Current() (User, bool)
}

type service struct {
	auth      Authenticator
	session   Session
	sink      notify.Sink
	jwtSecret string
}

func NewService(auth Authenticator, session Session, sink notify.Sink, jwtSecret string) Service {
	if sink == nil {
		sink = notify.Nop{}
	}
	return &service{auth: auth, session: session, sink: sink, jwtSecret: jwtSecret}
}

// Login checks credentials and fills the session. The record is persisted
// only when rememberMe is set.
func (s *service) Login(ctx context.Context, email, password string, rememberMe bool) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("email", email),
	)

	u, err := s.auth.Login(ctx, email, password)
	if err != nil {
		log.Warn("login failed", zap.Error(err))
		s.sink.Notify(ctx, notify.LevelError, "Login failed. Please check your credentials.")
		return "", User{}, err
	}

	token, err := s.startSession(ctx, u, rememberMe)
	if err != nil {
		log.Error("failed to start session", zap.Error(err))
		s.sink.Notify(ctx, notify.LevelError, "Login failed. Please check your credentials.")
		return "", User{}, err
	}

	log.Info("login success", zap.String("user_id", u.ID), zap.Bool("remember_me", rememberMe))
	s.sink.Notify(ctx, notify.LevelSuccess, "Successfully logged in!")
	return token, u, nil
}

// Signup creates the account and always persists the session record.
func (s *service) Signup(ctx context.Context, name, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Signup"),
		zap.String("email", email),
	)

	u, err := s.auth.Signup(ctx, name, email, password)
	if err != nil {
		log.Warn("signup failed", zap.Error(err))
		s.sink.Notify(ctx, notify.LevelError, "Signup failed. Please try again.")
		return "", User{}, err
	}

	token, err := s.startSession(ctx, u, true)
	if err != nil {
		log.Error("failed to start session", zap.Error(err))
		s.sink.Notify(ctx, notify.LevelError, "Signup failed. Please try again.")
		return "", User{}, err
	}

	log.Info("signup success", zap.String("user_id", u.ID))
	s.sink.Notify(ctx, notify.LevelSuccess, "Account created successfully!")
	return token, u, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		logger.FromCtx(ctx).Error("failed to clear session", zap.Error(err))
		return err
	}
	s.sink.Notify(ctx, notify.LevelInfo, "You have been logged out")
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	if err := s.auth.ForgotPassword(ctx, email); err != nil {
		logger.FromCtx(ctx).Warn("forgot password failed", zap.String("email", email), zap.Error(err))
		s.sink.Notify(ctx, notify.LevelError, "Failed to send reset instructions. Please try again.")
		return err
	}
	s.sink.Notify(ctx, notify.LevelSuccess, "Password reset instructions sent to your email")
	return nil
}

func (s *service) Current() (User, bool) {
	return s.session.Current()
}

func (s *service) startSession(ctx context.Context, u User, persist bool) (string, error) {
	token, err := GenerateJWT(u, s.jwtSecret, TokenTTL)
	if err != nil {
		return "", err
	}
	if err := s.session.SetUser(ctx, u, persist); err != nil {
		return "", err
	}
	return token, nil
}
