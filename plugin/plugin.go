package plugin

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	unity "github.com/reglet-dev/unity-native-go"
	"github.com/reglet-dev/unity-native-go/config"
	"github.com/reglet-dev/unity-native-go/ffi"
	hostlog "github.com/reglet-dev/unity-native-go/log"
	"github.com/reglet-dev/unity-native-go/profiler"
)

var (
	// ErrAlreadyLoaded is returned by Load on a plugin that is loaded.
	ErrAlreadyLoaded = errors.New("plugin already loaded")
	// ErrNotRegistered is returned by the package-level Load when no
	// plugin was registered.
	ErrNotRegistered = errors.New("no plugin registered")
)

// LoadFunc is the plugin's load hook. Returning an error aborts the load.
type LoadFunc func(ctx *Context) error

// UnloadFunc is the plugin's unload hook.
type UnloadFunc func(ctx *Context)

// Plugin owns the state built at load and torn down at unload.
type Plugin struct {
	onLoad   LoadFunc
	onUnload UnloadFunc
	cfg      pluginConfig

	ctx    *Context
	thread profiler.ThreadID
	// threadRegistered is set when load registered its thread.
	threadRegistered bool
	mu               sync.Mutex
}

// New creates a plugin with the given hooks. Either may be nil.
func New(onLoad LoadFunc, onUnload UnloadFunc, opts ...Option) *Plugin {
	cfg := defaultPluginConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Plugin{onLoad: onLoad, onUnload: onUnload, cfg: cfg}
}

// Loaded reports whether Load succeeded and Unload has not run since.
func (p *Plugin) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctx != nil
}

// Context returns the context built at load, or nil when not loaded.
func (p *Plugin) Context() *Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctx
}

// Load builds the plugin context from the host's root table and runs the
// load hook. Thread registration, when configured, applies to the calling
// OS thread; the host invokes the load entry point on its main thread.
func (p *Plugin) Load(raw *ffi.Interfaces) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx != nil {
		return ErrAlreadyLoaded
	}

	cfg := p.cfg.config
	if p.cfg.configFile != "" {
		var err error
		if cfg, err = config.Load(p.cfg.configFile); err != nil {
			return err
		}
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	ifaces, err := unity.New(raw)
	if err != nil {
		return err
	}

	ctx := &Context{
		Interfaces: ifaces,
		Config:     cfg,
		Category:   profiler.CategoryOther,
	}
	ctx.Logger, ctx.Zap = newLoggers(ifaces, cfg.Log)

	if !cfg.Profiler.Disabled {
		ctx.Profiler = resolveProfiler(ifaces, ctx.Logger)
	}

	if ctx.Profiler != nil && cfg.Profiler.Category != "" {
		id, err := ctx.Profiler.CreateCategory(cfg.Profiler.Category)
		if err != nil {
			return fmt.Errorf("failed to create profiler category %q: %w", cfg.Profiler.Category, err)
		}
		ctx.Category = id
	}

	var (
		thread     profiler.ThreadID
		registered bool
	)
	if ctx.Profiler != nil && cfg.Profiler.RegistersThread() {
		thread, err = ctx.Profiler.RegisterCurrentThread(cfg.Profiler.ThreadGroup, cfg.Profiler.ThreadName)
		if err != nil {
			return fmt.Errorf("failed to register thread %s/%s: %w", cfg.Profiler.ThreadGroup, cfg.Profiler.ThreadName, err)
		}
		registered = true
	}

	if p.onLoad != nil {
		if err := p.onLoad(ctx); err != nil {
			if registered {
				unregisterThread(ctx, thread)
			}
			return fmt.Errorf("plugin load hook failed: %w", err)
		}
	}

	p.ctx = ctx
	p.thread = thread
	p.threadRegistered = registered
	ctx.Logger.Debug("plugin loaded",
		"profiler", ctx.Profiler != nil,
		"category", uint16(ctx.Category),
		"thread", uint64(thread),
	)
	return nil
}

// Unload runs the unload hook, unregisters the thread registered at load
// and drops the context. It is a no-op when the plugin is not loaded.
func (p *Plugin) Unload() {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx := p.ctx
	if ctx == nil {
		return
	}
	if p.onUnload != nil {
		p.onUnload(ctx)
	}
	if p.threadRegistered {
		unregisterThread(ctx, p.thread)
	}
	ctx.Logger.Debug("plugin unloaded")
	_ = ctx.Zap.Sync()

	p.ctx = nil
	p.thread = 0
	p.threadRegistered = false
}

func unregisterThread(ctx *Context, id profiler.ThreadID) {
	if err := ctx.Profiler.UnregisterThread(id); err != nil {
		ctx.Logger.Warn("failed to unregister profiler thread", "thread", uint64(id), "error", err)
	}
}

func resolveProfiler(ifaces *unity.Interfaces, logger *slog.Logger) *profiler.Profiler {
	prof, err := profiler.FromInterfaces(ifaces)
	if err != nil {
		logger.Debug("profiler interface not provided", "error", err)
		return nil
	}
	if !prof.Available() {
		logger.Debug("profiler not available")
		return nil
	}
	return prof
}

// newLoggers builds the slog and zap loggers. Both write to the host log
// when the backend is "host" and the host provides a usable one, and to
// stderr otherwise. A host log table that is present but unusable is
// reported once on the fallback logger.
func newLoggers(ifaces *unity.Interfaces, cfg config.Log) (*slog.Logger, *zap.Logger) {
	var hostErr error
	if cfg.Backend != config.BackendStderr {
		hl, err := hostlog.FromInterfaces(ifaces)
		if err == nil {
			logger := slog.New(hostlog.NewHandler(hl,
				hostlog.WithLevel(cfg.SlogLevel()),
				hostlog.WithSource(cfg.Source),
			))
			var opts []zap.Option
			if !cfg.Source {
				opts = append(opts, zap.WithCaller(false))
			}
			return logger, hostlog.NewZap(hl, cfg.ZapLevel(), opts...)
		}
		var convErr *unity.ConversionError
		if errors.As(err, &convErr) {
			hostErr = err
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: cfg.Source,
	}))
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		cfg.ZapLevel(),
	)
	if hostErr != nil {
		logger.Warn("host log unusable, logging to stderr", "error", hostErr)
	}
	return logger, zap.New(core, zap.WithCaller(cfg.Source))
}
