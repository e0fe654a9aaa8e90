package ingest

import "brevetalign/models"

// FIT records encode position as semicircles (position_lat/11930465,
// position_long/11930465) plus a timestamp and an accumulated distance,
// but no FIT-decoding library is present in the retrieved example corpus,
// so no decoder is implemented here. A producer wiring one in should project each FIT
// record through PointFromFIT below rather than constructing models.Point
// directly, so the semicircle conversion stays in one place.
const fitSemicircleToDegree = 1.0 / 11930465.0

// PointFromFIT builds a Point from FIT's native units: position fields are
// semicircles (multiply by 1/11930465 to get decimal degrees). distance
// is passed through already converted to meters by the caller.
func PointFromFIT(positionLat, positionLong int32, timestamp int64, distanceMeters float64) models.Point {
	return models.Point{
		Lat: float64(positionLat) * fitSemicircleToDegree,
		Lng: float64(positionLong) * fitSemicircleToDegree,
		T:   float64(timestamp),
		D:   distanceMeters,
	}
}
