// Package mouse provides hit testing and mouse event decoding for
// overlay-style views.
//
// Regions are tested in reverse insertion order: a region added later sits
// on top of everything added before it. Registering a full-screen backdrop
// first and a dialog panel after it makes the panel a containment boundary;
// a click inside the panel never resolves to the backdrop.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// doubleClickThreshold is the max interval between clicks on one region.
const doubleClickThreshold = 400 * time.Millisecond

// Rect is a screen rectangle. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named, hit-testable rectangle with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in priority order.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later regions take priority.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the top-most region at (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Find returns the first region registered with id, or nil.
func (hm *HitMap) Find(id string) *Region {
	for i := range hm.regions {
		if hm.regions[i].ID == id {
			return &hm.regions[i]
		}
	}
	return nil
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns the registered regions in insertion order.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// ActionType classifies a decoded mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

// Action is the result of decoding a tea.MouseMsg against the hit map.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// ClickResult is returned by HandleClick.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler owns a hit map plus click-timing state.
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time
	now           func() time.Time
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// Clear drops all hit regions. Call at the start of each render.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleClick resolves a left click and tracks double clicks.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	now := h.now()

	if region == nil {
		h.lastClickID = ""
		return ClickResult{}
	}

	double := region.ID == h.lastClickID && now.Sub(h.lastClickTime) < doubleClickThreshold
	if double {
		// A third click starts a new sequence
		h.lastClickID = ""
	} else {
		h.lastClickID = region.ID
		h.lastClickTime = now
	}

	return ClickResult{Region: region, IsDoubleClick: double}
}

// HandleMouse decodes a mouse message into an Action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			click := h.HandleClick(msg.X, msg.Y)
			action.Region = click.Region
			action.Type = ActionClick
			if click.IsDoubleClick {
				action.Type = ActionDoubleClick
			}
		case tea.MouseButtonWheelUp:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type = ActionScrollUp
			if msg.Shift {
				action.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type = ActionScrollDown
			if msg.Shift {
				action.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type = ActionScrollRight
		}
	case tea.MouseActionMotion:
		action.Region = h.HitMap.Test(msg.X, msg.Y)
		action.Type = ActionHover
	}

	return action
}
