package models

import "time"

// TimeSlot is one selectable pickup or delivery time shown on the detail
// forms. Value is what gets submitted, Label is what the customer sees.
type TimeSlot struct {
	Label string
	Value string
}

const upcomingSlotDays = 4

// UpcomingTimeSlots returns one slot per day for the next few days,
// starting tomorrow at 13:00 in the given time's location.
func UpcomingTimeSlots(now time.Time) []TimeSlot {
	slots := make([]TimeSlot, 0, upcomingSlotDays)

	for day := 1; day <= upcomingSlotDays; day++ {
		date := now.AddDate(0, 0, day)
		slot := time.Date(date.Year(), date.Month(), date.Day(), 13, 0, 0, 0, now.Location())

		slots = append(slots, TimeSlot{
			Label: slot.Format("Mon Jan 2, 3:04 PM"),
			Value: slot.Format(time.RFC3339),
		})
	}

	return slots
}
