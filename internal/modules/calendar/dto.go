package calendar

import "courtbooking/internal/domain"

type DayTypeQuery struct {
	Date string `form:"date" binding:"required"`
}

type DayTypeResponse struct {
	Date    string         `json:"date"`
	DayType domain.DayType `json:"day_type"`
}
