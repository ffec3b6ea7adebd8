package state

// NoSelection marks that no sticker is selected.
const NoSelection = -1

type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Interaction is transient pointer state. It is not part of the scene.
type Interaction struct {
	Selected int
	Mode     Mode
	OffsetX  float64
	OffsetY  float64
}

func NewInteraction() *Interaction {
	return &Interaction{Selected: NoSelection}
}

func (ix *Interaction) reset() {
	ix.Selected = NoSelection
	ix.Mode = ModeIdle
	ix.OffsetX, ix.OffsetY = 0, 0
}

// Controller turns pointer events in surface coordinates into scene
// mutations. OnChange runs after every mutation so the caller can repaint.
type Controller struct {
	scene    *Scene
	ix       *Interaction
	OnChange func()
}

func NewController(scene *Scene, ix *Interaction) *Controller {
	return &Controller{scene: scene, ix: ix}
}

func (c *Controller) Interaction() Interaction {
	return *c.ix
}

// Press selects the topmost sticker under the point and starts dragging it.
// A miss leaves the controller idle.
func (c *Controller) Press(x, y float64) {
	c.press(x, y, ModeDragging)
}

// PressResize selects like Press but starts resizing, with the sticker's
// top-left corner as the fixed anchor.
func (c *Controller) PressResize(x, y float64) {
	c.press(x, y, ModeResizing)
}

func (c *Controller) press(x, y float64, mode Mode) {
	index := c.scene.HitTest(x, y)
	if index == NoSelection {
		return
	}
	st, ok := c.scene.Sticker(index)
	if !ok {
		return
	}
	c.ix.Selected = index
	c.ix.OffsetX = x - st.X
	c.ix.OffsetY = y - st.Y
	c.ix.Mode = mode
	c.scene.log.Debug("[INPUT] Press at (%.1f, %.1f): sticker %d, %s", x, y, index, mode)
}

// Move applies the current drag or resize and reports whether the scene
// changed.
func (c *Controller) Move(x, y float64) bool {
	if c.ix.Selected == NoSelection {
		return false
	}

	var changed bool
	switch c.ix.Mode {
	case ModeDragging:
		changed = c.scene.MoveSticker(c.ix.Selected, x-c.ix.OffsetX, y-c.ix.OffsetY)
	case ModeResizing:
		st, ok := c.scene.Sticker(c.ix.Selected)
		if !ok {
			return false
		}
		changed = c.scene.ResizeSticker(c.ix.Selected, x-st.X, y-st.Y)
	}

	if changed && c.OnChange != nil {
		c.OnChange()
	}
	return changed
}

// Release ends any drag or resize.
func (c *Controller) Release() {
	c.ix.reset()
}
