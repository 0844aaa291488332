// Package classifier decides what to do with a single device punch given
// the attendance rows already committed for that user and work date. It is
// pure decision logic: the caller performs the store lookup and passes the
// result in, and the caller commits whatever the decision says.
package classifier

import (
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/models"
)

// Decision is the outcome of classifying one punch.
type Decision struct {
	Accepted bool
	Status   models.PunchStatus // valid only when Accepted
	Reason   string             // set only when rejected
}

func accept(status models.PunchStatus) Decision {
	return Decision{Accepted: true, Status: status}
}

func reject(reason string) Decision {
	return Decision{Accepted: false, Reason: reason}
}

// Classify decides whether the punch at the given time is a time_in, a
// time_out, or a duplicate/out-of-order record to drop. existing must hold
// the already-committed rows for the same user and work date, sorted
// ascending by timestamp.
func Classify(at time.Time, existing []*models.AttendanceLog) Decision {
	if len(existing) == 0 {
		return accept(models.TimeIn)
	}

	var hasIn, hasOut bool
	for _, row := range existing {
		switch row.Status {
		case models.TimeIn:
			hasIn = true
		case models.TimeOut:
			hasOut = true
		}
	}

	switch {
	case hasIn && hasOut:
		return reject("already complete for this day")
	case hasIn:
		latest := existing[len(existing)-1]
		if at.After(latest.Timestamp) {
			return accept(models.TimeOut)
		}
		return reject("new punch precedes existing time_in")
	default:
		// A time_out without a time_in should not happen with sequential
		// processing, but out-of-order delivery from the device can
		// produce it. Treat the punch as a fresh time_in.
		return accept(models.TimeIn)
	}
}
