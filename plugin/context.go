package plugin

import (
	"errors"
	"log/slog"

	"go.uber.org/zap"

	unity "github.com/reglet-dev/unity-native-go"
	"github.com/reglet-dev/unity-native-go/config"
	"github.com/reglet-dev/unity-native-go/profiler"
)

// Context is what a loaded plugin works with.
type Context struct {
	Interfaces *unity.Interfaces
	Logger     *slog.Logger
	Zap        *zap.Logger
	// Profiler is nil when profiling is disabled in config or the host
	// has no profiler interface.
	Profiler *profiler.Profiler
	Config   config.Config
	// Category is the category to create markers in.
	Category profiler.CategoryID
}

// ErrNoProfiler is returned by CreateMarker when the context has no profiler.
var ErrNoProfiler = errors.New("profiler not available")

// CreateMarker creates a marker in the plugin's category.
func (c *Context) CreateMarker(name string, shape profiler.Shape, opts ...profiler.MarkerOption) (*profiler.Marker, error) {
	if c.Profiler == nil {
		return nil, ErrNoProfiler
	}
	opts = append([]profiler.MarkerOption{profiler.WithCategory(c.Category)}, opts...)
	return c.Profiler.CreateMarkerWithData(name, shape, opts...)
}
