package tui

import (
	"context"
	"time"

	"github.com/colonyops/campus/internal/core/logging"
	"github.com/colonyops/campus/internal/core/media"
	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/tui/views"
	"github.com/colonyops/campus/internal/tui/views/classroom"
	"github.com/colonyops/campus/internal/tui/views/placeholder"
	"github.com/colonyops/campus/internal/tui/views/recommendations"
	"github.com/colonyops/campus/internal/tui/views/settings"
	"github.com/colonyops/campus/pkg/kv"
)

// viewRegistry owns the mounted screen. Screens hold only local state, so a
// screen is built fresh on every visit and torn down when left.
type viewRegistry struct {
	mounted *kv.Store[navigation.View, views.Model]
	factory func(navigation.State) views.Model
}

func newViewRegistry(factory func(navigation.State) views.Model) *viewRegistry {
	return &viewRegistry{
		mounted: kv.New[navigation.View, views.Model](),
		factory: factory,
	}
}

// Mount tears down every other screen and returns the screen for the
// current view of s, creating it if needed.
func (r *viewRegistry) Mount(s navigation.State) views.Model {
	stale := r.mounted.PopFunc(func(v navigation.View, _ views.Model) bool {
		return v != s.Current
	})
	teardown(stale...)

	return r.mounted.GetOrCreate(s.Current, func() views.Model {
		return r.factory(s)
	})
}

// Len reports how many screens are mounted.
func (r *viewRegistry) Len() int {
	return r.mounted.Len()
}

// TeardownAll releases every mounted screen.
func (r *viewRegistry) TeardownAll() {
	teardown(r.mounted.PopFunc(func(navigation.View, views.Model) bool { return true })...)
}

func teardown(screens ...views.Model) {
	for _, m := range screens {
		if t, ok := m.(views.Teardowner); ok {
			t.Teardown()
		}
	}
}

// newScreenFactory returns the constructor for every known view. Unknown
// views get the generic placeholder.
func newScreenFactory(ctx context.Context, device media.Device, generateDelay time.Duration, info func() settings.Info) func(navigation.State) views.Model {
	return func(s navigation.State) views.Model {
		switch s.Current {
		case navigation.ViewClassroom:
			return classroom.New(s.Course)
		case navigation.ViewVirtualClassroom:
			session := media.NewSession(device, logging.Component("media"))
			return classroom.NewVirtual(ctx, session, s.Course)
		case navigation.ViewRecommendations:
			return recommendations.New(generateDelay)
		case navigation.ViewSettings:
			return settings.New(info())
		default:
			return placeholder.New(s.Current)
		}
	}
}
