package model

// Course is one degree program offered by the college.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Seats       int    `json:"seats"`
	Image       string `json:"image"`
}

// Event is one upcoming campus event.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Attendees   int    `json:"attendees"`
}
