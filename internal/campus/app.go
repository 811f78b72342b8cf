// Package campus wires the core services into a single App that commands and
// the TUI consume.
package campus

import (
	"github.com/colonyops/campus/internal/core/config"
	"github.com/colonyops/campus/internal/core/kv"
	"github.com/colonyops/campus/internal/core/logging"
	"github.com/colonyops/campus/internal/core/media"
	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/onboarding"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the central entry point for all campus operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config        *config.Config
	Notifications *notify.Store
	Navigation    *navigation.Controller
	Onboarding    *onboarding.Controller
	Media         media.Device
	KV            kv.KV
	Build         BuildInfo
}

// NewApp constructs an App from explicit dependencies. The navigation
// controller starts on the dashboard.
func NewApp(cfg *config.Config, store kv.KV, device media.Device, build BuildInfo) *App {
	notifications := notify.NewStore()

	nav := navigation.NewController(navigation.ViewDashboard, navigation.Options{
		Delayer:       cfg.Delayer(),
		Notifications: notifications,
		Logger:        logging.Component("nav"),
	})

	return &App{
		Config:        cfg,
		Notifications: notifications,
		Navigation:    nav,
		Onboarding:    onboarding.New(store, logging.Component("onboarding")),
		Media:         device,
		KV:            store,
		Build:         build,
	}
}
