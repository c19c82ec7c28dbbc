package model

// DefaultDestination is used when the vacations export leaves the
// destination column blank.
const DefaultDestination = "Desconocido"

// VacationEntry represents one trip-year cost record.
type VacationEntry struct {
	Year        int     `json:"year"`
	Destination string  `json:"destination"`
	Cost        float64 `json:"cost"`
}

// VacationYear groups a year's trips with their total cost. Entries are
// ordered by cost descending.
type VacationYear struct {
	Year    int             `json:"year"`
	Total   float64         `json:"total"`
	Entries []VacationEntry `json:"entries"`
}
