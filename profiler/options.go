package profiler

// CategoryID identifies a marker category.
type CategoryID uint16

// Built-in categories.
const (
	CategoryRender    CategoryID = 0
	CategoryScripts   CategoryID = 1
	CategoryGUI       CategoryID = 4
	CategoryPhysics   CategoryID = 5
	CategoryAnimation CategoryID = 6
	CategoryAI        CategoryID = 7
	CategoryAudio     CategoryID = 8
	CategoryVideo     CategoryID = 11
	CategoryParticles CategoryID = 12
	CategoryNetwork   CategoryID = 14
	CategoryLoading   CategoryID = 15
	CategoryOther     CategoryID = 16
	CategoryGC        CategoryID = 17
	CategoryInput     CategoryID = 30
)

// MarkerFlags modify how the host treats a marker.
type MarkerFlags uint16

const (
	FlagDefault            MarkerFlags = 0
	FlagScriptUser         MarkerFlags = 1 << 1
	FlagAvailabilityEditor MarkerFlags = 1 << 2
	FlagAvailabilityNonDev MarkerFlags = 1 << 3
	FlagWarning            MarkerFlags = 1 << 4
	FlagCounter            MarkerFlags = 1 << 7
	FlagVerbosityDebug     MarkerFlags = 1 << 10
	FlagVerbosityInternal  MarkerFlags = 1 << 11
	FlagVerbosityAdvanced  MarkerFlags = 1 << 12
)

type markerConfig struct {
	category CategoryID
	flags    MarkerFlags
}

func defaultMarkerConfig() markerConfig {
	return markerConfig{
		category: CategoryOther,
		flags:    FlagDefault,
	}
}

// MarkerOption configures marker creation.
type MarkerOption func(*markerConfig)

// WithCategory files the marker under category instead of CategoryOther.
func WithCategory(category CategoryID) MarkerOption {
	return func(c *markerConfig) {
		c.category = category
	}
}

// WithFlags sets the marker flags.
func WithFlags(flags MarkerFlags) MarkerOption {
	return func(c *markerConfig) {
		c.flags = flags
	}
}
