package pixgui

import "fmt"

// offscreen is a cached render target and the size it was created with.
type offscreen struct {
	target TargetID
	w, h   int
}

// targetCache owns the offscreen targets of scroll areas, keyed by widget.
type targetCache struct {
	r     Renderer
	store *FrameStore[offscreen]
}

func newTargetCache(r Renderer) *targetCache {
	c := &targetCache{r: r}
	c.store = NewFrameStore(c.evict)
	return c
}

// acquire returns the target for id sized w x h, creating it on first use
// and replacing it when the size changed. The replacement is created before
// the old target is deleted, so a failed creation leaves the cache intact.
func (c *targetCache) acquire(id ID, w, h int) (TargetID, error) {
	if cur, ok := c.store.Lookup(id); ok && cur.w == w && cur.h == h {
		c.store.Get(id, cur)
		return cur.target, nil
	}

	t, err := c.r.CreateTarget(w, h)
	if err != nil {
		return 0, fmt.Errorf("create %dx%d target: %w", w, h, err)
	}

	if old, ok := c.store.Lookup(id); ok {
		guiLogger.Debug("resizing offscreen target", "id", id,
			"from", Point{X: old.w, Y: old.h}, "to", Point{X: w, Y: h})
		c.release(old)
	} else {
		guiLogger.Debug("created offscreen target", "id", id, "target", t, "w", w, "h", h)
	}
	c.store.Set(id, offscreen{target: t, w: w, h: h})
	return t, nil
}

func (c *targetCache) nextFrame() {
	c.store.NextFrame()
}

func (c *targetCache) releaseAll() {
	c.store.Clear()
}

func (c *targetCache) evict(id ID, o offscreen) {
	guiLogger.Debug("evicting offscreen target", "id", id, "target", o.target)
	c.release(o)
}

func (c *targetCache) release(o offscreen) {
	if err := c.r.DeleteTarget(o.target); err != nil {
		guiLogger.Warn("delete offscreen target", "target", o.target, "err", err)
	}
}

// len returns the number of live targets.
func (c *targetCache) len() int {
	return c.store.Len()
}
