package board

import (
	"testing"

	"talentboard/internal/domain/nominee"
)

type gestureRecorder struct {
	starts []int
	overs  []nominee.Status
	ends   []gestureEnd
}

type gestureEnd struct {
	nomineeID int
	target    nominee.Status
}

func recordedGesture() (*Gesture, *gestureRecorder) {
	rec := &gestureRecorder{}
	g := &Gesture{
		OnStart: func(nomineeID int) { rec.starts = append(rec.starts, nomineeID) },
		OnOver:  func(target nominee.Status) { rec.overs = append(rec.overs, target) },
		OnEnd: func(nomineeID int, target nominee.Status) {
			rec.ends = append(rec.ends, gestureEnd{nomineeID: nomineeID, target: target})
		},
	}
	return g, rec
}

func TestGestureClickNeverStartsDrag(t *testing.T) {
	g, rec := recordedGesture()

	g.PointerDown(1, 100, 100)
	if g.PointerMove(103, 104) {
		t.Fatal("5px travel promoted to drag")
	}
	g.PointerUp()

	if len(rec.starts) != 0 || len(rec.ends) != 0 {
		t.Fatalf("click fired callbacks: starts=%v ends=%v", rec.starts, rec.ends)
	}
}

func TestGestureActivatesPastThreshold(t *testing.T) {
	g, rec := recordedGesture()

	g.PointerDown(1, 100, 100)
	if !g.PointerMove(100, 109) {
		t.Fatal("9px travel did not promote to drag")
	}
	if len(rec.starts) != 1 || rec.starts[0] != 1 {
		t.Fatalf("starts = %v", rec.starts)
	}

	g.Enter(nominee.StatusInterview)
	g.PointerUp()

	if len(rec.ends) != 1 {
		t.Fatalf("ends = %v", rec.ends)
	}
	if rec.ends[0] != (gestureEnd{nomineeID: 1, target: nominee.StatusInterview}) {
		t.Fatalf("end = %+v", rec.ends[0])
	}
}

func TestGestureDiagonalDistanceUsesHypot(t *testing.T) {
	g, _ := recordedGesture()

	g.PointerDown(1, 0, 0)
	// 5,5 is ~7.07px of travel, still under the threshold.
	if g.PointerMove(5, 5) {
		t.Fatal("7.07px diagonal promoted to drag")
	}
	// 6,6 is ~8.49px.
	if !g.PointerMove(6, 6) {
		t.Fatal("8.49px diagonal did not promote to drag")
	}
}

func TestGestureDropOutsideEmitsEmptyTarget(t *testing.T) {
	g, rec := recordedGesture()

	g.PointerDown(2, 100, 100)
	g.PointerMove(120, 100)
	g.Enter(nominee.StatusTrial)
	g.Leave()
	g.PointerUp()

	if len(rec.ends) != 1 {
		t.Fatalf("ends = %v", rec.ends)
	}
	if rec.ends[0].target != "" {
		t.Fatalf("drop outside carried target %q", rec.ends[0].target)
	}
}

func TestGestureEnterBeforeDragIsIgnored(t *testing.T) {
	g, rec := recordedGesture()

	g.PointerDown(1, 100, 100)
	g.Enter(nominee.StatusInterview)
	if len(rec.overs) != 0 {
		t.Fatalf("hover before activation fired OnOver: %v", rec.overs)
	}
	g.PointerUp()
	if len(rec.ends) != 0 {
		t.Fatalf("press without drag fired OnEnd: %v", rec.ends)
	}
}

func TestGestureResetsBetweenUses(t *testing.T) {
	g, rec := recordedGesture()

	g.PointerDown(1, 0, 0)
	g.PointerMove(20, 0)
	g.Enter(nominee.StatusInterview)
	g.PointerUp()

	g.PointerDown(2, 0, 0)
	g.PointerMove(20, 0)
	g.PointerUp()

	if len(rec.ends) != 2 {
		t.Fatalf("ends = %v", rec.ends)
	}
	// The second drop never hovered a column, so the stale target from the
	// first drag must not leak into it.
	if rec.ends[1] != (gestureEnd{nomineeID: 2, target: ""}) {
		t.Fatalf("second end = %+v", rec.ends[1])
	}
}
