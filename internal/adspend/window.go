package adspend

import "github.com/angelmondragon/adspend-backend/pkg/types"

// WindowDays is the length of each comparison window.
const WindowDays = 30

// Window is an inclusive date range.
type Window struct {
	Start types.Date `json:"start"`
	End   types.Date `json:"end"`
}

// Windows are the two adjacent comparison ranges anchored at the data's max date:
// last = [max-29, max], prev = [max-59, max-30].
type Windows struct {
	MaxDate types.Date
	Last    Window
	Prev    Window
}

func WindowsFor(maxDate types.Date) Windows {
	lastStart := maxDate.AddDays(-(WindowDays - 1))
	prevEnd := lastStart.AddDays(-1)
	return Windows{
		MaxDate: maxDate,
		Last:    Window{Start: lastStart, End: maxDate},
		Prev:    Window{Start: prevEnd.AddDays(-(WindowDays - 1)), End: prevEnd},
	}
}

// Bounds is the /bounds payload. All fields are null when there is no dated data.
type Bounds struct {
	MaxDate *types.Date `json:"max_date"`
	Last30d *Window     `json:"last_30d"`
	Prev30d *Window     `json:"prev_30d"`
}

func BoundsFor(maxDate types.NullDate) Bounds {
	if !maxDate.Valid {
		return Bounds{}
	}
	w := WindowsFor(maxDate.Date)
	return Bounds{
		MaxDate: &w.MaxDate,
		Last30d: &w.Last,
		Prev30d: &w.Prev,
	}
}
