package cursor

// Environment is the host state that decides whether a cursor is mounted.
type Environment struct {
	// ViewportWidth is the layout width in pixels.
	ViewportWidth int
	// ReducedMotion is the user's reduced-motion preference.
	ReducedMotion bool
	// DarkMode is the active theme.
	DarkMode bool
}

// Gate reports why env must not mount a cursor, or nil if it may.
func (c Config) Gate(env Environment) error {
	if env.ReducedMotion {
		return ErrReducedMotion
	}
	if env.ViewportWidth <= c.Breakpoint {
		return ErrNarrowViewport
	}
	return nil
}

// Controller owns at most one mounted Engine and the event subscription that
// feeds it. Mounting creates both; unmounting removes the subscription and
// disposes the engine before anything new is created.
type Controller struct {
	host   Host
	source EventSource
	cfg    Config

	env    Environment
	engine *Engine
	handle Handle
}

// NewController validates cfg and returns an unmounted controller. Call Sync
// to mount.
func NewController(host Host, source EventSource, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{host: host, source: source, cfg: cfg}, nil
}

// Sync brings the mount in line with env. A failing gate unmounts and
// returns ErrReducedMotion or ErrNarrowViewport; the native cursor stays in
// use. A passing gate mounts if needed, otherwise pushes the theme to the
// live engine.
func (c *Controller) Sync(env Environment) error {
	c.env = env
	if err := c.cfg.Gate(env); err != nil {
		c.Unmount()
		debugLogMount(c.cfg.Debug, env, err)
		return err
	}
	if c.engine != nil {
		c.engine.SetDarkMode(env.DarkMode)
		return nil
	}
	return c.mount()
}

func (c *Controller) mount() error {
	cfg := c.cfg
	cfg.DarkMode = c.env.DarkMode
	e, err := New(c.host, cfg)
	if err != nil {
		return err
	}
	c.engine = e
	c.handle = c.source.Subscribe(e.Handle)
	debugLogMount(c.cfg.Debug, c.env, nil)
	return nil
}

// Remount fully tears down the current engine, then mounts a fresh one for
// the last synced environment.
func (c *Controller) Remount() error {
	c.Unmount()
	return c.Sync(c.env)
}

// SetDarkMode records the theme and pushes it to the live engine, if any.
func (c *Controller) SetDarkMode(dark bool) {
	c.env.DarkMode = dark
	if c.engine != nil {
		c.engine.SetDarkMode(dark)
	}
}

// Unmount removes the event subscription and disposes the engine. It is a
// no-op when nothing is mounted.
func (c *Controller) Unmount() {
	if c.handle != nil {
		c.handle.Remove()
		c.handle = nil
	}
	if c.engine != nil {
		c.engine.Dispose()
		c.engine = nil
	}
}

// Engine returns the mounted engine, or nil.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Mounted reports whether an engine is live.
func (c *Controller) Mounted() bool {
	return c.engine != nil
}
