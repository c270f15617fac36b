package go_bankshot

import (
	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

//Barrier is a vertical reflecting obstacle standing on the ground
//at some distance along the flight path
type Barrier struct {
	name     string
	distance unit.Distance
	height   unit.Distance
}

//CreateBarrier creates a barrier
func CreateBarrier(name string, distance unit.Distance, height unit.Distance) Barrier {
	return Barrier{name: name, distance: distance, height: height}
}

//Name returns the name of the barrier
func (v Barrier) Name() string {
	return v.name
}

//Distance returns the distance between the launch point and the barrier
func (v Barrier) Distance() unit.Distance {
	return v.distance
}

//Height returns the height of the barrier
func (v Barrier) Height() unit.Distance {
	return v.height
}

//IsPresent returns false for a barrier of zero height.
//
//A zero height barrier is ignored by the trajectory calculator. It is not
//checked at all, so it never cuts short a landing step which crosses its
//plane below the ground tolerance.
func (v Barrier) IsPresent() bool {
	return v.height.In(unit.DistanceMeter) > 0
}

//Intersect checks whether the straight step from previous to next crosses
//the barrier below its top.
//
//When it does, the point just in front of the barrier plane where the
//projectile is reflected is returned together with true. Otherwise next
//is returned unchanged.
func (v Barrier) Intersect(previous, next vector.Vector, tolerances Tolerances) (vector.Vector, bool) {
	x := v.distance.In(unit.DistanceMeter)
	yMax := v.height.In(unit.DistanceMeter)

	if (previous.X-x)*(next.X-x) > 0 {
		return next, false
	}
	//a step starting on the plane and moving off it is leaving the barrier
	if previous.X == x && next.X != x {
		return next, false
	}

	direction := 1.0
	if previous.X-x < 0 {
		direction = -1.0
	}
	adjustedX := x + direction*tolerances.BarrierBuffer

	y := previous.Y
	if next.X != previous.X {
		ratio := (adjustedX - previous.X) / (next.X - previous.X)
		y = previous.Y + ratio*(next.Y-previous.Y)
	}

	if y <= yMax+tolerances.HeightAllowance {
		return vector.Create(adjustedX, y), true
	}
	return next, false
}
