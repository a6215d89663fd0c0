package entity

// Statistics сводка для админ-панели
type Statistics struct {
	TotalEvents        int `json:"total_events"`
	UpcomingEvents     int `json:"upcoming_events"`
	OngoingEvents      int `json:"ongoing_events"`
	PastEvents         int `json:"past_events"`
	TeamMembers        int `json:"team_members"`
	ContactSubmissions int `json:"contact_submissions"`
	Subscribers        int `json:"subscribers"`
	Newsletters        int `json:"newsletters"`
}
