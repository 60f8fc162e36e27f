package dto

// CreateHolidayRequest is the payload for adding a holiday
type CreateHolidayRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Date        string `json:"date" binding:"required"`
	HolidayType string `json:"holidayType" binding:"required,oneof=national religious international special bank"`
	Description string `json:"description" binding:"omitempty"`
	IsRecurring bool   `json:"isRecurring"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// UpdateHolidayRequest is the payload for editing a holiday
type UpdateHolidayRequest = CreateHolidayRequest

// HolidayResponse describes a holiday on the wire, including the derived
// upcoming fields the calendar screens show.
type HolidayResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	HolidayType string `json:"holidayType"`
	Description string `json:"description,omitempty"`
	IsRecurring bool   `json:"isRecurring"`
	IsActive    bool   `json:"isActive"`
	IsUpcoming  bool   `json:"isUpcoming"`
	DaysUntil   *int   `json:"daysUntil,omitempty"`
}

// HolidayListResponse is the holiday calendar screen payload
type HolidayListResponse struct {
	Holidays         []HolidayResponse            `json:"holidays"`
	HolidaysByMonth  map[string][]HolidayResponse `json:"holidaysByMonth"`
	UpcomingHolidays []HolidayResponse            `json:"upcomingHolidays"`
	CurrentYear      int                          `json:"currentYear"`
	TotalHolidays    int                          `json:"totalHolidays"`
	TypeCounts       map[string]int               `json:"holidayTypeCounts"`
	AvailableYears   []int                        `json:"availableYears"`
}
