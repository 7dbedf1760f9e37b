package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owned by the identity provider.
// Password material never reaches this struct.
type User struct {
	ID        uuid.UUID
	Email     string
	Username  string
	CreatedAt time.Time
}

// Session is an authenticated session issued by the identity provider.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         User
}

// Dashboard aggregates a user's journal for the overview page.
type Dashboard struct {
	TotalDreams  int
	RecentDreams []Dream
	TopEmotions  []EmotionCount
}

// EmotionCount is how many dreams carry one emotion label.
type EmotionCount struct {
	Emotion string
	Count   int
}
