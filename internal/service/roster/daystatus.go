package roster

// DayStatus classifies a calendar day against "today".
type DayStatus string

const (
	DayPast    DayStatus = "past"
	DayCurrent DayStatus = "current"
	DayFuture  DayStatus = "future"
)

// ClassifyDay compares canonical day keys. Lexicographic order on
// YYYY-MM-DD keys matches chronological order, so no parsing is needed.
// The caller supplies todayKey (see datekey.Today) so tests can pin the
// clock.
func ClassifyDay(dayKey, todayKey string) DayStatus {
	switch {
	case dayKey < todayKey:
		return DayPast
	case dayKey > todayKey:
		return DayFuture
	default:
		return DayCurrent
	}
}

// Work status labels derived per day.
const (
	WorkStatusWorked    = "worked"
	WorkStatusMissed    = "missed"
	WorkStatusWorking   = "working"
	WorkStatusScheduled = "scheduled"
	WorkStatusUnknown   = ""
)

// WorkStatus derives the display label and styling tone for a day. Past
// days answer to the worked flag, the current day to the working flag.
// Future days always get the empty label whatever their flags say: a future
// assignment is not authoritative yet.
func WorkStatus(status DayStatus, isWorked, isWorking bool) (label, tone string) {
	switch status {
	case DayPast:
		if isWorked {
			return WorkStatusWorked, "success"
		}
		return WorkStatusMissed, "danger"
	case DayCurrent:
		if isWorking {
			return WorkStatusWorking, "active"
		}
		return WorkStatusScheduled, "pending"
	default:
		return WorkStatusUnknown, ""
	}
}
