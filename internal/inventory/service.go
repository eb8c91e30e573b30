// Package inventory is the inventory page workspace: it owns the filter
// engine and turns page actions into views and notifications.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stockview-be/internal/filter"
	"stockview-be/internal/logger"
	"stockview-be/internal/notify"
	"stockview-be/internal/product"

	"go.uber.org/zap"
)

// ProductCreator persists a new product and returns it with its identity.
type ProductCreator interface {
	AddProduct(ctx context.Context, in product.NewProductInput) (product.Product, error)
}

type Service interface {
	Load(ctx context.Context) error
	View() View
	Search(ctx context.Context, query string) View
	ApplyFilters(ctx context.Context, u filter.Update) (View, error)
	SetDateRange(ctx context.Context, r filter.DateRange, start, end *time.Time) (View, error)
	ResetFilters(ctx context.Context) View
	GoToPage(n int) View
	NextPage() View
	PrevPage() View
	AddProduct(ctx context.Context, in product.NewProductInput) (product.Product, error)
	Product(id string) (product.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	EditProduct(ctx context.Context, id string) error
	Export(ctx context.Context, format ExportFormat) error
}

type service struct {
	mu      sync.Mutex
	engine  *filter.Engine
	repo    product.Repository
	creator ProductCreator
	sink    notify.Sink
}

func NewService(repo product.Repository, creator ProductCreator, sink notify.Sink, pageSize int, opts ...filter.Option) Service {
	if sink == nil {
		sink = notify.Nop{}
	}
	return &service{
		engine:  filter.NewEngine(pageSize, opts...),
		repo:    repo,
		creator: creator,
		sink:    sink,
	}
}

// Load replaces the working set with the product source's contents.
func (s *service) Load(ctx context.Context) error {
	start := time.Now()
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "Load"))

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.engine.SetCollection(products)
	s.mu.Unlock()

	log.Info("inventory loaded", zap.Int("count", len(products)), zap.Duration("duration", time.Since(start)))
	return nil
}

func (s *service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildView(s.engine)
}

// Search applies the free-text query on every keystroke, without feedback.
func (s *service) Search(ctx context.Context, query string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.UpdateCriteria(filter.Update{TextQuery: &query})
	logger.FromCtx(ctx).Debug("search applied",
		zap.String("query", query),
		zap.Int("matches", len(s.engine.Filtered())),
	)
	return buildView(s.engine)
}

func (s *service) ApplyFilters(ctx context.Context, u filter.Update) (View, error) {
	if err := validateUpdate(u); err != nil {
		return View{}, err
	}

	s.mu.Lock()
	s.engine.UpdateCriteria(u)
	v := buildView(s.engine)
	s.mu.Unlock()

	logger.FromCtx(ctx).Info("filters applied",
		zap.String("layer", "service"),
		zap.Any("criteria", v.Criteria),
		zap.Int("matches", v.TotalCount),
	)
	s.sink.Notify(ctx, notify.LevelSuccess, "Filters applied successfully")
	return v, nil
}

// SetDateRange selects a date preset. Any preset other than custom drops
// the custom bounds; custom takes start and end as given.
func (s *service) SetDateRange(ctx context.Context, r filter.DateRange, start, end *time.Time) (View, error) {
	if !r.Valid() {
		return View{}, fmt.Errorf("%w: %q", ErrInvalidDateRange, r)
	}

	u := filter.Update{DateRange: &r}
	if r == filter.DateRangeCustom {
		u.StartDate, u.EndDate = start, end
	} else {
		u.ClearCustomDates = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.UpdateCriteria(u)

	logger.FromCtx(ctx).Debug("date range set", zap.String("range", string(r)))
	return buildView(s.engine), nil
}

func (s *service) ResetFilters(ctx context.Context) View {
	s.mu.Lock()
	s.engine.ResetCriteria()
	v := buildView(s.engine)
	s.mu.Unlock()

	s.sink.Notify(ctx, notify.LevelInfo, "Filters reset")
	return v
}

func (s *service) GoToPage(n int) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetPage(n)
	return buildView(s.engine)
}

func (s *service) NextPage() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetPage(s.engine.PageNumber() + 1)
	return buildView(s.engine)
}

func (s *service) PrevPage() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetPage(s.engine.PageNumber() - 1)
	return buildView(s.engine)
}

// AddProduct waits on the creator without holding the workspace lock. The
// working set only changes once the creator succeeds.
func (s *service) AddProduct(ctx context.Context, in product.NewProductInput) (product.Product, error) {
	start := time.Now()
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "AddProduct"))

	p, err := s.creator.AddProduct(ctx, in)
	if err != nil {
		log.Warn("failed to add product", zap.Error(err), zap.Duration("duration", time.Since(start)))
		s.sink.Notify(ctx, notify.LevelError, "Failed to add product. Please try again.")
		return product.Product{}, err
	}

	s.mu.Lock()
	s.engine.AddProduct(p)
	s.mu.Unlock()

	log.Info("product added", zap.String("product_id", p.ID), zap.Duration("duration", time.Since(start)))
	s.sink.Notify(ctx, notify.LevelSuccess, "Product added successfully!")
	return p, nil
}

func (s *service) Product(id string) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.engine.Find(id)
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

// DeleteProduct confirms the deletion to the user but keeps the product in
// the working set; there is no removal endpoint behind it yet.
func (s *service) DeleteProduct(ctx context.Context, id string) error {
	p, err := s.Product(id)
	if err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("delete requested", zap.String("product_id", id))
	s.sink.Notify(ctx, notify.LevelSuccess, fmt.Sprintf("%s has been deleted successfully", p.Name))
	return nil
}

func (s *service) EditProduct(ctx context.Context, id string) error {
	if _, err := s.Product(id); err != nil {
		return err
	}
	s.sink.Notify(ctx, notify.LevelInfo, "Edit functionality will be implemented soon")
	return nil
}

func (s *service) Export(ctx context.Context, format ExportFormat) error {
	format, err := ParseExportFormat(string(format))
	if err != nil {
		return err
	}

	s.mu.Lock()
	count := len(s.engine.Filtered())
	s.mu.Unlock()

	logger.FromCtx(ctx).Info("inventory exported", zap.String("format", string(format)), zap.Int("rows", count))
	s.sink.Notify(ctx, notify.LevelSuccess, fmt.Sprintf("Inventory data exported to %s successfully.", format.Target()))
	return nil
}

func validateUpdate(u filter.Update) error {
	if u.Status != nil && *u.Status != "" && *u.Status != filter.All && !product.Status(*u.Status).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *u.Status)
	}
	if u.DateRange != nil && *u.DateRange != "" && !u.DateRange.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDateRange, *u.DateRange)
	}
	return nil
}
