// Package backend is the asynchronous collaborator behind the dashboard:
// product creation and the credential round trips.
package backend

import (
	"context"
	"errors"
	"time"

	"stockview-be/internal/logger"
	"stockview-be/internal/product"
	"stockview-be/internal/user"

	"go.uber.org/zap"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"

	DefaultDelay = time.Second
)

var ErrUnavailable = errors.New("backend unavailable")

type Backend interface {
	AddProduct(ctx context.Context, in product.NewProductInput) (product.Product, error)
	Login(ctx context.Context, email, password string) (user.User, error)
	Signup(ctx context.Context, name, email, password string) (user.User, error)
	ForgotPassword(ctx context.Context, email string) error
}

// DemoUser is the account every successful login resolves to.
var DemoUser = user.User{
	ID:     "1",
	Name:   "John Doe",
	Email:  "john@example.com",
	Role:   user.RoleAdmin,
	Avatar: user.AvatarURL("John Doe"),
}

type Option func(*Mock)

func WithDelay(d time.Duration) Option {
	return func(m *Mock) {
		if d >= 0 {
			m.delay = d
		}
	}
}

// WithFailure makes every call fail with ErrUnavailable after the delay.
func WithFailure(fail bool) Option {
	return func(m *Mock) { m.fail = fail }
}

func WithClock(now func() time.Time) Option {
	return func(m *Mock) {
		if now != nil {
			m.now = now
		}
	}
}

// Mock simulates a remote backend with a fixed latency. Products are
// written to repo, so a failed call leaves the catalogue untouched.
type Mock struct {
	repo         product.Repository
	delay        time.Duration
	fail         bool
	now          func() time.Time
	passwordHash string
}

func NewMock(repo product.Repository, opts ...Option) (*Mock, error) {
	hash, err := user.HashPassword(DemoPassword)
	if err != nil {
		return nil, err
	}
	m := &Mock{
		repo:         repo,
		delay:        DefaultDelay,
		now:          time.Now,
		passwordHash: hash,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Mock) AddProduct(ctx context.Context, in product.NewProductInput) (product.Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "backend"), zap.String("method", "AddProduct"))

	if err := m.roundTrip(ctx); err != nil {
		log.Warn("add product failed", zap.Error(err))
		return product.Product{}, err
	}

	p := product.NewProduct(in, m.now())
	created, err := m.repo.Create(ctx, p)
	if err != nil {
		log.Error("failed to store product", zap.Error(err))
		return product.Product{}, err
	}

	log.Info("product created", zap.String("product_id", created.ID), zap.String("sku", created.SKU))
	return created, nil
}

func (m *Mock) Login(ctx context.Context, email, password string) (user.User, error) {
	if err := m.roundTrip(ctx); err != nil {
		return user.User{}, err
	}
	if email != DemoEmail || !user.CheckPasswordHash(password, m.passwordHash) {
		return user.User{}, user.ErrInvalidCredentials
	}
	return DemoUser, nil
}

func (m *Mock) Signup(ctx context.Context, name, email, _ string) (user.User, error) {
	if err := m.roundTrip(ctx); err != nil {
		return user.User{}, err
	}
	u := DemoUser
	u.Name = name
	u.Email = email
	u.Avatar = user.AvatarURL(name)
	return u, nil
}

func (m *Mock) ForgotPassword(ctx context.Context, _ string) error {
	return m.roundTrip(ctx)
}

func (m *Mock) roundTrip(ctx context.Context) error {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if m.fail {
		return ErrUnavailable
	}
	return nil
}
