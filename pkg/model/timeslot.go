package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrInvalidClock   = errors.New("invalid clock")
	ErrInvalidSlot    = errors.New("invalid time-slot")
)

type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays holds every plannable day in grid order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayCodes = map[Weekday]string{
	Monday:    "seg",
	Tuesday:   "ter",
	Wednesday: "qua",
	Thursday:  "qui",
	Friday:    "sex",
	Saturday:  "sab",
}

var weekdayLabels = map[Weekday]string{
	Monday:    "Segunda",
	Tuesday:   "Terça",
	Wednesday: "Quarta",
	Thursday:  "Quinta",
	Friday:    "Sexta",
	Saturday:  "Sábado",
}

var weekdayAliases = map[string]Weekday{
	"seg": Monday, "segunda": Monday, "monday": Monday,
	"ter": Tuesday, "terca": Tuesday, "terça": Tuesday, "tuesday": Tuesday,
	"qua": Wednesday, "quarta": Wednesday, "wednesday": Wednesday,
	"qui": Thursday, "quinta": Thursday, "thursday": Thursday,
	"sex": Friday, "sexta": Friday, "friday": Friday,
	"sab": Saturday, "sáb": Saturday, "sabado": Saturday, "sábado": Saturday, "saturday": Saturday,
}

// Code returns the short day code used by the disciplines API (e.g. "seg")
func (day Weekday) Code() string {
	return weekdayCodes[day]
}

// Label returns the day name shown on the grid header
func (day Weekday) Label() string {
	return weekdayLabels[day]
}

func (day Weekday) String() string {
	if code, ok := weekdayCodes[day]; ok {
		return code
	}
	return fmt.Sprintf("Weekday(%d)", uint8(day))
}

func ParseWeekday(code string) (Weekday, error) {
	day, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, code)
	}
	return day, nil
}

// Clock is a wall-clock time of day with minute resolution (minutes since midnight)
type Clock uint16

const minutesPerDay = 24 * 60

func NewClock(hours, minutes int) Clock {
	return Clock(hours*60 + minutes)
}

// ParseClock accepts "HH:MM" and "HH:MM:SS" (seconds must be zero)
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	if len(parts) == 3 && parts[2] != "00" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return NewClock(hours, minutes), nil
}

func (clock Clock) Hours() int {
	return int(clock) / 60
}

func (clock Clock) Minutes() int {
	return int(clock) % 60
}

func (clock Clock) String() string {
	return fmt.Sprintf("%02d:%02d", clock.Hours(), clock.Minutes())
}

// TimeSlot is a weekly recurring interval [Start, End) on a given day
type TimeSlot struct {
	Day   Weekday
	Start Clock
	End   Clock
}

func NewTimeSlot(day Weekday, start, end Clock) (TimeSlot, error) {
	if start >= end || end > minutesPerDay {
		return TimeSlot{}, fmt.Errorf("%w: %v %v-%v", ErrInvalidSlot, day, start, end)
	}
	return TimeSlot{Day: day, Start: start, End: end}, nil
}

// ParseTimeSlot builds a time-slot from the API representation (day code and "HH:MM" clocks)
func ParseTimeSlot(day, start, end string) (TimeSlot, error) {
	weekday, err := ParseWeekday(day)
	if err != nil {
		return TimeSlot{}, err
	}
	startClock, err := ParseClock(start)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("start: %w", err)
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("end: %w", err)
	}
	return NewTimeSlot(weekday, startClock, endClock)
}

// Overlaps checks whether both slots share the same day and their half-open intervals intersect
func (slot TimeSlot) Overlaps(other TimeSlot) bool {
	return slot.Day == other.Day && slot.Start < other.End && other.Start < slot.End
}

// Intersection returns the overlapping interval of two slots. The second value is false when they do not overlap
func (slot TimeSlot) Intersection(other TimeSlot) (TimeSlot, bool) {
	if !slot.Overlaps(other) {
		return TimeSlot{}, false
	}
	return TimeSlot{
		Day:   slot.Day,
		Start: max(slot.Start, other.Start),
		End:   min(slot.End, other.End),
	}, true
}

func (slot TimeSlot) Duration() uint16 {
	return uint16(slot.End - slot.Start)
}

func (slot TimeSlot) String() string {
	return fmt.Sprintf("%v %v-%v", slot.Day, slot.Start, slot.End)
}

type timeSlotJson struct {
	Day   string `json:"dia"`
	Start string `json:"horario_inicio"`
	End   string `json:"horario_fim"`
}

// MarshalJSON renders the slot in the disciplines API shape
func (slot TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeSlotJson{Day: slot.Day.Code(), Start: slot.Start.String(), End: slot.End.String()})
}

func (slot *TimeSlot) UnmarshalJSON(data []byte) error {
	var raw timeSlotJson
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTimeSlot(raw.Day, raw.Start, raw.End)
	if err != nil {
		return err
	}
	*slot = parsed
	return nil
}
