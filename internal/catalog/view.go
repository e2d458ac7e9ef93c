package catalog

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/fjod/go_storefront/internal/domain"
)

// ErrStaleView marks a response that arrived after the user navigated away
// from the view that requested it.
var ErrStaleView = errors.New("view superseded by later navigation")

// Views guard against the stale-response race: a fetch started for one
// screen must not apply its result after the user has moved on. Each
// navigation opens a new view, invalidating every earlier one.
type Views struct {
	svc *Service
	gen atomic.Uint64
}

func NewViews(svc *Service) *Views {
	return &Views{svc: svc}
}

// Open starts a new view generation, superseding all previous views.
func (vs *Views) Open() *View {
	return &View{views: vs, gen: vs.gen.Add(1)}
}

type View struct {
	views *Views
	gen   uint64
}

// Live reports whether this view is still the current one.
func (v *View) Live() bool {
	return v.views.gen.Load() == v.gen
}

// Product fetches a product detail for this view. When the view has been
// superseded mid-flight the result is discarded and ErrStaleView returned.
func (v *View) Product(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := v.views.svc.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.Live() {
		return nil, ErrStaleView
	}
	return p, nil
}

// Products fetches a filtered listing for this view with the same staleness
// guard.
func (v *View) Products(ctx context.Context, category, search string) ([]domain.Product, error) {
	ps, err := v.views.svc.ListProducts(ctx, category, search)
	if err != nil {
		return nil, err
	}
	if !v.Live() {
		return nil, ErrStaleView
	}
	return ps, nil
}
