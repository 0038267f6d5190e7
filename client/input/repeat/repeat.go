// Package repeat implements delayed auto-repeat for held buttons, counted in frames.
package repeat

// Repeater decides on which frames a held button fires.
// It fires on the first frame, waits Delay frames, then fires every Interval frames.
type Repeater struct {
	Delay    int
	Interval int
}

// Fires reports whether a button held for heldFrames frames (1 on the frame
// it was pressed, 0 when released) fires on this frame.
func (r Repeater) Fires(heldFrames int) bool {
	switch {
	case heldFrames <= 0:
		return false
	case heldFrames == 1:
		return true
	case heldFrames <= r.Delay:
		return false
	case r.Interval <= 0:
		return false
	default:
		return (heldFrames-r.Delay-1)%r.Interval == 0
	}
}
