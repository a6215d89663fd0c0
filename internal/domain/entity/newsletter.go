package entity

import "time"

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Newsletter выпуск рассылки
type Newsletter struct {
	ID         string
	Subject    string
	Body       string
	BodyHTML   string
	Recipients int
	CreatedAt  time.Time
}
