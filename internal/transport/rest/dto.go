package rest

import (
	"time"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/auth"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/dream"
)

type dreamRequest struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Tags        string   `json:"tags"`
	Emotions    []string `json:"emotions"`
}

func (r dreamRequest) toInput() dream.DreamInput {
	return dream.DreamInput{
		Title:       r.Title,
		Date:        r.Date,
		Description: r.Description,
		Tags:        r.Tags,
		Emotions:    r.Emotions,
	}
}

type dreamResponse struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"userId"`
	Title             string                   `json:"title"`
	Date              time.Time                `json:"date"`
	Description       string                   `json:"description"`
	Tags              []string                 `json:"tags"`
	Emotions          []string                 `json:"emotions"`
	AIInterpretation  *domain.AIInterpretation `json:"aiInterpretation"`
	GeneratedImageURL *string                  `json:"generatedImageUrl"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

func toDreamResponse(d *domain.Dream) dreamResponse {
	tags, emotions := d.Tags, d.Emotions
	if tags == nil {
		tags = []string{}
	}
	if emotions == nil {
		emotions = []string{}
	}
	return dreamResponse{
		ID:                d.ID.String(),
		UserID:            d.UserID.String(),
		Title:             d.Title,
		Date:              d.Date,
		Description:       d.Description,
		Tags:              tags,
		Emotions:          emotions,
		AIInterpretation:  d.Interpretation,
		GeneratedImageURL: d.ImageURL,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toDreamResponses(dreams []domain.Dream) []dreamResponse {
	out := make([]dreamResponse, 0, len(dreams))
	for i := range dreams {
		out = append(out, toDreamResponse(&dreams[i]))
	}
	return out
}

type imageRequest struct {
	ImageURL string `json:"imageUrl"`
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type emotionCountResponse struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

type dashboardResponse struct {
	TotalDreams  int                    `json:"totalDreams"`
	RecentDreams []dreamResponse        `json:"recentDreams"`
	TopEmotions  []emotionCountResponse `json:"topEmotions"`
}

func toDashboardResponse(d *domain.Dashboard) dashboardResponse {
	top := make([]emotionCountResponse, 0, len(d.TopEmotions))
	for _, e := range d.TopEmotions {
		top = append(top, emotionCountResponse{Emotion: e.Emotion, Count: e.Count})
	}
	return dashboardResponse{
		TotalDreams:  d.TotalDreams,
		RecentDreams: toDreamResponses(d.RecentDreams),
		TopEmotions:  top,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

type authResponse struct {
	AccessToken          string        `json:"accessToken,omitempty"`
	RefreshToken         string        `json:"refreshToken,omitempty"`
	ExpiresAt            *time.Time    `json:"expiresAt,omitempty"`
	User                 *userResponse `json:"user,omitempty"`
	ConfirmationRequired bool          `json:"confirmationRequired"`
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	resp := authResponse{
		AccessToken:          result.AccessToken,
		RefreshToken:         result.RefreshToken,
		ConfirmationRequired: result.ConfirmationRequired,
	}
	if !result.ExpiresAt.IsZero() {
		exp := result.ExpiresAt
		resp.ExpiresAt = &exp
	}
	if result.User != nil {
		u := toUserResponse(result.User)
		resp.User = &u
	}
	return resp
}
