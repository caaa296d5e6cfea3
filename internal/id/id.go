package id

import "time"

// Next returns the ID for a record created at now, given the highest ID
// assigned so far. IDs are Unix-millisecond timestamps, bumped past last
// when two creations land on the same millisecond, so they stay unique
// and strictly increasing in creation order.
func Next(last int64, now time.Time) int64 {
	next := now.UnixMilli()
	if next <= last {
		next = last + 1
	}
	return next
}

// Time returns the creation time encoded in an ID.
func Time(id int64) time.Time {
	return time.UnixMilli(id)
}
