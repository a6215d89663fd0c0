package entity

import "time"

// VisitorSession состояние сессии посетителя сайта.
// Живёт до истечения TTL или явного завершения.
type VisitorSession struct {
	ID                  string    `json:"id"`
	HeroAnimationPlayed bool      `json:"hero_animation_played"`
	CreatedAt           time.Time `json:"created_at"`
	ExpiresAt           time.Time `json:"expires_at"`
}
