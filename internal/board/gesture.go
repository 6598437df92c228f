package board

import (
	"math"

	"talentboard/internal/domain/nominee"
)

// activationDistance is the pointer travel required before a press becomes
// a drag; shorter movements count as plain clicks.
const activationDistance = 8.0

// Gesture turns raw pointer samples into drag intents. It is the
// interchangeable recognition collaborator in front of the board: the host
// feeds pointer events and column hits, and the callbacks drive BeginDrag /
// CancelDrag / CompleteDrag.
type Gesture struct {
	OnStart func(nomineeID int)
	OnOver  func(target nominee.Status)
	OnEnd   func(nomineeID int, target nominee.Status)

	pressed  bool
	dragging bool
	cardID   int
	originX  float64
	originY  float64
	over     nominee.Status
}

// PointerDown arms the recognizer on a card. No drag starts yet.
func (g *Gesture) PointerDown(nomineeID int, x, y float64) {
	g.pressed = true
	g.dragging = false
	g.cardID = nomineeID
	g.originX = x
	g.originY = y
	g.over = ""
}

// PointerMove promotes the press to a drag once the pointer has travelled
// past the activation distance. Returns whether a drag is active.
func (g *Gesture) PointerMove(x, y float64) bool {
	if !g.pressed {
		return false
	}
	if !g.dragging {
		dx := x - g.originX
		dy := y - g.originY
		if math.Hypot(dx, dy) < activationDistance {
			return false
		}
		g.dragging = true
		if g.OnStart != nil {
			g.OnStart(g.cardID)
		}
	}
	return true
}

// Enter records the column currently under the pointer.
func (g *Gesture) Enter(target nominee.Status) {
	if !g.dragging {
		return
	}
	g.over = target
	if g.OnOver != nil {
		g.OnOver(target)
	}
}

// Leave clears the droppable when the pointer exits all columns.
func (g *Gesture) Leave() {
	if !g.dragging {
		return
	}
	g.over = ""
}

// PointerUp releases the press. A completed drag emits OnEnd with whatever
// column the pointer was over; an empty target means "dropped outside",
// which the board treats as a no-op.
func (g *Gesture) PointerUp() {
	if !g.pressed {
		return
	}
	dragged := g.dragging
	cardID := g.cardID
	target := g.over
	g.pressed = false
	g.dragging = false
	g.cardID = 0
	g.over = ""
	if dragged && g.OnEnd != nil {
		g.OnEnd(cardID, target)
	}
}
