package domain

import "time"

// InitialTickets is granted to every account when it is first seen.
const InitialTickets = 10

// UserAccount is the per-user game state, keyed by the platform account email.
// LastRefillDate and WeeklyBestScore are reserved fields: they are populated on
// creation and carried forward, but no refill or weekly-reset logic reads them yet.
type UserAccount struct {
	Email           string    `json:"email"`
	Tickets         int       `json:"tickets"`
	LastRefillDate  time.Time `json:"last_refill_date"`
	WeeklyBestScore int       `json:"weekly_best_score"`
}
