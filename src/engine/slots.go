package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// SlotInterval is the booking granularity.
const SlotInterval = 30 * time.Minute

var openingHoursPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)

type OpeningHours struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// DefaultOpeningHours is the window used when a restaurant's opening-hours
// string does not parse. Falling back instead of erroring is deliberate:
// an operator typo must never make a restaurant unbookable.
var DefaultOpeningHours = OpeningHours{StartHour: 11, EndHour: 22}

// ParseOpeningHours parses "H:MM-H:MM" / "HH:MM-HH:MM" strings such as
// "10:00-22:00". Anything that does not match the pattern yields
// DefaultOpeningHours.
func ParseOpeningHours(s string) OpeningHours {
	match := openingHoursPattern.FindStringSubmatch(s)
	if match == nil {
		return DefaultOpeningHours
	}
	startHour, _ := strconv.Atoi(match[1])
	startMinute, _ := strconv.Atoi(match[2])
	endHour, _ := strconv.Atoi(match[3])
	endMinute, _ := strconv.Atoi(match[4])
	return OpeningHours{
		StartHour:   startHour,
		StartMinute: startMinute,
		EndHour:     endHour,
		EndMinute:   endMinute,
	}
}

func (h OpeningHours) Opening(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), h.StartHour, h.StartMinute, 0, 0, date.Location())
}

func (h OpeningHours) Closing(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), h.EndHour, h.EndMinute, 0, 0, date.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// SlotSequence walks the bookable start times of one calendar date in
// 30-minute steps. The sequence is finite and restartable; Next returns
// labels in chronological order with no duplicates.
type SlotSequence struct {
	hours OpeningHours
	date  time.Time
	now   time.Time
	cur   time.Time
}

func NewSlotSequence(hours OpeningHours, date, now time.Time) *SlotSequence {
	s := &SlotSequence{hours: hours, date: date, now: now}
	s.Reset()
	return s
}

func (s *SlotSequence) Reset() {
	s.cur = s.hours.Opening(s.date)
}

// Next returns the next slot label ("HH:MM") and false once the sequence
// is exhausted. A slot is only offered when a full interval fits before
// closing, and slots already in the past are skipped on the current day.
func (s *SlotSequence) Next() (string, bool) {
	closing := s.hours.Closing(s.date)
	today := sameDay(s.date, s.now)
	for {
		if s.cur.Add(SlotInterval).After(closing) {
			return "", false
		}
		slot := s.cur
		s.cur = s.cur.Add(SlotInterval)
		if today && slot.Before(s.now) {
			continue
		}
		return fmt.Sprintf("%02d:%02d", slot.Hour(), slot.Minute()), true
	}
}

// GenerateTimeSlots collects the whole sequence into a slice.
func GenerateTimeSlots(hours OpeningHours, date, now time.Time) []string {
	seq := NewSlotSequence(hours, date, now)
	slots := []string{}
	for {
		label, ok := seq.Next()
		if !ok {
			break
		}
		slots = append(slots, label)
	}
	return slots
}
