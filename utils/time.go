package utils

import (
	"time"

	"github.com/salahou-dine/hon-hon/models"
)

// Today текущая календарная дата в часовом поясе приложения
func Today(loc *time.Location) models.Date {
	if loc == nil {
		loc = time.UTC
	}
	return models.NewDate(time.Now().In(loc))
}

// LoadLocation часовой пояс по имени; Casablanca (UTC+1) если зона недоступна
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("WEST", 60*60)
	}
	return loc
}
