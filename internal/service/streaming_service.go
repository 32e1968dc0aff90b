package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"github.com/cinestream/backend/internal/token"
	"gorm.io/gorm"
)

var ErrSubscriptionRequired = errors.New("subscription required to stream premium content")

// fallback playback location for catalog entries without a stored video URL
const cdnURLPattern = "https://cdn.example.com/hls/%d/master.m3u8"

type StreamingService struct {
	contentRepo repository.ContentRepository
	subRepo     repository.SubscriptionRepository
	codec       *token.Codec
}

func NewStreamingService(contentRepo repository.ContentRepository, subRepo repository.SubscriptionRepository, codec *token.Codec) *StreamingService {
	return &StreamingService{
		contentRepo: contentRepo,
		subRepo:     subRepo,
		codec:       codec,
	}
}

// PlaybackGrant is returned to clients that are entitled to stream.
type PlaybackGrant struct {
	PlaybackURL string `json:"playback_url"`
	ExpiresIn   int    `json:"expires_in"`
}

// CanStream reports whether a user holding the given subscriptions may play
// the content. Free content streams for everyone; premium content needs at
// least one active subscription. Admins get no bypass.
func CanStream(content *domain.Content, subs []*domain.Subscription) bool {
	if !content.IsPremium {
		return true
	}
	for _, sub := range subs {
		if sub.Status == domain.SubscriptionActive {
			return true
		}
	}
	return false
}

// StreamURL issues a signed playback URL for the content, or a denial. The
// playback token's cryptographic expiry and the advertised expires_in both
// come from the codec's default TTL.
func (s *StreamingService) StreamURL(ctx context.Context, user *domain.User, contentID uint) (*PlaybackGrant, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if content.IsPremium {
		subs, err := s.subRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if !CanStream(content, subs) {
			return nil, ErrSubscriptionRequired
		}
	}

	playbackToken, err := s.codec.Encode(map[string]any{
		"user_id":    user.ID,
		"content_id": content.ID,
	}, 0)
	if err != nil {
		return nil, err
	}

	baseURL := content.VideoURL
	if baseURL == "" {
		baseURL = fmt.Sprintf(cdnURLPattern, content.ID)
	}

	playbackURL, err := appendQuery(baseURL, "token", playbackToken)
	if err != nil {
		return nil, err
	}

	return &PlaybackGrant{
		PlaybackURL: playbackURL,
		ExpiresIn:   int(s.codec.DefaultTTL().Seconds()),
	}, nil
}

// appendQuery sets key=value on the URL's query string, preserving any
// existing parameters and overwriting a previous value for the same key.
func appendQuery(rawURL, key, value string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
