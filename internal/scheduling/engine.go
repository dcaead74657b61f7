package scheduling

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskhub/pkg/log"
)

const (
	// horizonDays bounds the forward search.
	horizonDays = 30

	busyCacheSize = 64
	busyCacheTTL  = 5 * time.Minute
)

// Interval is a half-open busy span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Slot is a computed calendar slot. End - Start equals the requested
// duration.
type Slot struct {
	Start time.Time
	End   time.Time
}

// BusyLister supplies existing busy intervals for one day window.
type BusyLister interface {
	BusyIntervals(ctx context.Context, windowStart, windowEnd time.Time) ([]Interval, error)
}

// Engine finds free calendar slots inside working hours. Busy data is
// cached per day for a few minutes so a burst of saves (a meeting's
// worth of tasks) does not refetch the same days; slots handed out are
// reserved in the cache so the burst does not double-book.
type Engine struct {
	lister BusyLister
	loc    *time.Location
	l      log.Logger

	cache *expirable.LRU[string, []Interval]
	now   func() time.Time
}

func New(lister BusyLister, loc *time.Location, l log.Logger) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		lister: lister,
		loc:    loc,
		l:      l,
		cache:  expirable.NewLRU[string, []Interval](busyCacheSize, nil, busyCacheTTL),
		now:    time.Now,
	}
}

// FindSlot returns the earliest free slot of the given duration within
// working hours, scanning up to 30 days ahead. Weekends are skipped.
// It never fails: when no day has room the slot is simply "now".
func (e *Engine) FindSlot(ctx context.Context, duration time.Duration, productiveHours int, workStartTime string) Slot {
	now := e.now().In(e.loc)
	startHour, startMinute := parseWorkStart(workStartTime)

	for day := 0; day < horizonDays; day++ {
		date := now.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		windowStart := time.Date(date.Year(), date.Month(), date.Day(), startHour, startMinute, 0, 0, e.loc)
		windowEnd := windowStart.Add(time.Duration(productiveHours) * time.Hour)

		busy := e.busyFor(ctx, windowStart, windowEnd)

		capacity := time.Duration(productiveHours)*time.Hour - clippedBusy(busy, windowStart, windowEnd)
		if capacity < duration {
			continue
		}

		cursor := windowStart
		if day == 0 && now.After(windowStart) {
			cursor = roundUpQuarter(now)
		}
		if !windowEnd.After(cursor) {
			continue
		}

		if slot, ok := firstGap(busy, cursor, windowEnd, duration); ok {
			e.reserve(windowStart, slot)
			return slot
		}
	}

	e.l.Warnf(ctx, "scheduling: no free slot within %d days, scheduling immediately", horizonDays)
	return Slot{Start: now, End: now.Add(duration)}
}

// busyFor returns the day's busy intervals, serving from cache when
// fresh. A listing failure is treated as a free day so scheduling
// still proceeds.
func (e *Engine) busyFor(ctx context.Context, windowStart, windowEnd time.Time) []Interval {
	key := dayKey(windowStart)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	busy, err := e.lister.BusyIntervals(ctx, windowStart, windowEnd)
	if err != nil {
		e.l.Warnf(ctx, "scheduling: busy lookup failed for %s, assuming free day: %v", key, err)
		busy = nil
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })
	e.cache.Add(key, busy)
	return busy
}

// reserve records a handed-out slot as busy so later calls within the
// cache TTL do not return the same gap.
func (e *Engine) reserve(windowStart time.Time, slot Slot) {
	key := dayKey(windowStart)
	busy, _ := e.cache.Get(key)
	busy = append(busy, Interval{Start: slot.Start, End: slot.End})
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })
	e.cache.Add(key, busy)
}

// firstGap walks intervals sorted by start and returns the first gap
// of at least duration between cursor and windowEnd.
func firstGap(busy []Interval, cursor, windowEnd time.Time, duration time.Duration) (Slot, bool) {
	for _, iv := range busy {
		if iv.End.IsZero() || iv.Start.IsZero() {
			// All-day entries carry no times and block nothing here;
			// they were already counted against capacity by clipping.
			continue
		}
		if !iv.Start.Before(windowEnd) {
			break
		}
		if iv.Start.Sub(cursor) >= duration {
			return Slot{Start: cursor, End: cursor.Add(duration)}, true
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}
	if windowEnd.Sub(cursor) >= duration {
		return Slot{Start: cursor, End: cursor.Add(duration)}, true
	}
	return Slot{}, false
}

// clippedBusy sums each interval's overlap with the window.
func clippedBusy(busy []Interval, windowStart, windowEnd time.Time) time.Duration {
	var total time.Duration
	for _, iv := range busy {
		start, end := iv.Start, iv.End
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if end.After(start) {
			total += end.Sub(start)
		}
	}
	return total
}

// roundUpQuarter rounds up to the next 15-minute boundary, dropping
// seconds.
func roundUpQuarter(t time.Time) time.Time {
	minutes := ((t.Minute() + 14) / 15) * 15
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return base.Add(time.Duration(minutes) * time.Minute)
}

// parseWorkStart parses "HH:MM", defaulting to 09:00 on bad input.
func parseWorkStart(s string) (hour, minute int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 9, 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 9, 0
	}
	return h, m
}

func dayKey(windowStart time.Time) string {
	return windowStart.Format("2006-01-02")
}
