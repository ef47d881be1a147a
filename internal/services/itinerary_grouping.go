package services

import (
	"sort"

	dbm "tripplanner/internal/models/db_models"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

type placedEntry struct {
	date  string
	stop  *dbm.TripStop
	entry resp.ItineraryEntry
}

func entryRank(kind string) int {
	if kind == resp.EntryArrival {
		return 0
	}
	return 1
}

// groupByDate lays stops out on calendar days. A stop appears on its arrival day and, when it
// leaves on a later day, again on its departure day. Days ascend; within a day arrivals come
// first, then earlier arrival dates.
func groupByDate(stops []dbm.TripStop) []resp.ItineraryDay {
	placed := make([]placedEntry, 0, 2*len(stops))
	for i := range stops {
		s := &stops[i]
		detail := toStopResponse(s)
		arrival := utils.DateKey(s.ArrivalDate)
		placed = append(placed, placedEntry{
			date:  arrival,
			stop:  s,
			entry: resp.ItineraryEntry{Type: resp.EntryArrival, Stop: detail},
		})
		if departure := utils.DateKey(s.DepartureDate); departure != arrival {
			placed = append(placed, placedEntry{
				date:  departure,
				stop:  s,
				entry: resp.ItineraryEntry{Type: resp.EntryDeparture, Stop: detail},
			})
		}
	}

	sort.SliceStable(placed, func(i, j int) bool {
		a, b := placed[i], placed[j]
		if a.date != b.date {
			return a.date < b.date
		}
		if ra, rb := entryRank(a.entry.Type), entryRank(b.entry.Type); ra != rb {
			return ra < rb
		}
		if !a.stop.ArrivalDate.Equal(b.stop.ArrivalDate) {
			return a.stop.ArrivalDate.Before(b.stop.ArrivalDate)
		}
		return a.stop.OrderIndex < b.stop.OrderIndex
	})

	days := make([]resp.ItineraryDay, 0, len(placed))
	for _, p := range placed {
		if n := len(days); n > 0 && days[n-1].Date == p.date {
			days[n-1].Entries = append(days[n-1].Entries, p.entry)
			continue
		}
		days = append(days, resp.ItineraryDay{Date: p.date, Entries: []resp.ItineraryEntry{p.entry}})
	}
	return days
}
