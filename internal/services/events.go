package services

import (
	"math"
	"strconv"

	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
)

// CenturyTimeline groups events into century buckets. Keys look like
// "-2000s" or "0s"; events without a year land in "Unknowns".
type CenturyTimeline struct {
	Groups map[string][]models.Event `json:"groups"`
	Total  int                       `json:"total"`
}

func centuryKey(year *int) string {
	if year == nil {
		return "Unknowns"
	}
	// Floor division so -1950 buckets into -2000, not -1900.
	century := int(math.Floor(float64(*year)/100)) * 100
	return strconv.Itoa(century) + "s"
}

// GetEventsTimeline returns all events in year order, bucketed by
// century for timeline rendering.
func GetEventsTimeline(db *gorm.DB) (*CenturyTimeline, error) {
	var events []models.Event
	err := db.Preload("Location").
		Preload("Persons").
		Order("year asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]models.Event)
	for _, ev := range events {
		key := centuryKey(ev.Year)
		groups[key] = append(groups[key], ev)
	}

	return &CenturyTimeline{Groups: groups, Total: len(events)}, nil
}
