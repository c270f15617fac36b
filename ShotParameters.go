package go_bankshot

import "github.com/gehtsoft-usa/go_bankshot/bmath/unit"

//ShotParameters struct keeps parameters of the shot to be calculated
type ShotParameters struct {
	angle            unit.Angular
	recordTrajectory bool
}

//CreateShotParameters creates parameters of the shot
//
//angle - is the angle between the launch velocity and the ground
func CreateShotParameters(angle unit.Angular) ShotParameters {
	return ShotParameters{angle: angle}
}

//CreateRecordedShotParameters creates parameters of the shot which keeps
//every position of the projectile in the result
func CreateRecordedShotParameters(angle unit.Angular) ShotParameters {
	return ShotParameters{angle: angle, recordTrajectory: true}
}

//Angle returns the launch angle
func (v ShotParameters) Angle() unit.Angular {
	return v.angle
}

//RecordTrajectory returns the flag indicating whether the positions are kept
func (v ShotParameters) RecordTrajectory() bool {
	return v.recordTrajectory
}
