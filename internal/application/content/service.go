package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/notify"
)

var errDuplicateSubscriber = shared.NewDomainError("ALREADY_EXISTS", "이미 신청된 번호입니다.")

// Notifier receives subscriber events for the tracking spreadsheet
type Notifier interface {
	Dispatch(event notify.Event)
}

// Service manages the marketing content the admin curates: banners,
// popups, briefings, reviews, and the SMS subscriber list.
type Service struct {
	banners     content.BannerRepository
	popups      content.PopupRepository
	briefings   content.BriefingRepository
	reviews     content.ReviewRepository
	subscribers content.SubscriberRepository
	notifier    Notifier
	logger      *zap.Logger
}

// NewService creates a content service
func NewService(
	banners content.BannerRepository,
	popups content.PopupRepository,
	briefings content.BriefingRepository,
	reviews content.ReviewRepository,
	subscribers content.SubscriberRepository,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		banners:     banners,
		popups:      popups,
		briefings:   briefings,
		reviews:     reviews,
		subscribers: subscribers,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateBanner adds a main-page banner
func (s *Service) CreateBanner(ctx context.Context, title, imageURL, linkURL string, position int) (*content.Banner, error) {
	b, err := content.NewBanner(title, imageURL, linkURL, position)
	if err != nil {
		return nil, err
	}
	if err := s.banners.Create(ctx, b); err != nil {
		s.logger.Error("Failed to create banner", zap.Error(err))
		return nil, err
	}
	return b, nil
}

// DeleteBanner removes a banner
func (s *Service) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return s.banners.Delete(ctx, id)
}

// ListBanners lists banners by position
func (s *Service) ListBanners(ctx context.Context) ([]*content.Banner, error) {
	return s.banners.FindAll(ctx)
}

// CreatePopup adds a time-boxed popup
func (s *Service) CreatePopup(ctx context.Context, title, imageURL, linkURL string, startsAt, endsAt time.Time) (*content.Popup, error) {
	p, err := content.NewPopup(title, imageURL, linkURL, startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	if err := s.popups.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create popup", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// DeletePopup removes a popup
func (s *Service) DeletePopup(ctx context.Context, id uuid.UUID) error {
	return s.popups.Delete(ctx, id)
}

// ListPopups lists every popup regardless of display window. Admin only.
func (s *Service) ListPopups(ctx context.Context) ([]*content.Popup, error) {
	return s.popups.FindAll(ctx)
}

// ListActivePopups lists popups whose display window contains now
func (s *Service) ListActivePopups(ctx context.Context) ([]*content.Popup, error) {
	return s.popups.FindActive(ctx, time.Now())
}

// CreateBriefing adds an admissions briefing announcement
func (s *Service) CreateBriefing(ctx context.Context, title, heldAt, location, description string) (*content.Briefing, error) {
	b, err := content.NewBriefing(title, heldAt, location, description)
	if err != nil {
		return nil, err
	}
	if err := s.briefings.Create(ctx, b); err != nil {
		s.logger.Error("Failed to create briefing", zap.Error(err))
		return nil, err
	}
	return b, nil
}

// DeleteBriefing removes a briefing announcement
func (s *Service) DeleteBriefing(ctx context.Context, id uuid.UUID) error {
	return s.briefings.Delete(ctx, id)
}

// ListBriefings lists briefing announcements
func (s *Service) ListBriefings(ctx context.Context) ([]*content.Briefing, error) {
	return s.briefings.FindAll(ctx)
}

// CreateReview adds an admissions review post
func (s *Service) CreateReview(ctx context.Context, studentName, school, title, body string) (*content.Review, error) {
	r, err := content.NewReview(studentName, school, title, body)
	if err != nil {
		return nil, err
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, err
	}
	return r, nil
}

// DeleteReview removes a review post
func (s *Service) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return s.reviews.Delete(ctx, id)
}

// ListReviews lists review posts
func (s *Service) ListReviews(ctx context.Context) ([]*content.Review, error) {
	return s.reviews.FindAll(ctx)
}

// Subscribe opts a phone number in to announcement texts. The phone
// unique index makes double submissions harmless.
func (s *Service) Subscribe(ctx context.Context, phone string) error {
	sub, err := content.NewSmsSubscriber(phone)
	if err != nil {
		return err
	}

	if err := s.subscribers.Create(ctx, sub); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return errDuplicateSubscriber
		}
		s.logger.Error("Failed to create subscriber", zap.Error(err))
		return err
	}

	s.logger.Info("SMS subscriber added", zap.String("phone", sub.Phone))

	s.notifier.Dispatch(notify.Event{
		Kind:       "sms_subscriber",
		OccurredAt: sub.CreatedAt,
		Values:     []string{sub.Phone},
	})

	return nil
}

// Unsubscribe removes a subscriber. Admin only.
func (s *Service) Unsubscribe(ctx context.Context, id uuid.UUID) error {
	return s.subscribers.Delete(ctx, id)
}

// ListSubscribers lists the subscriber phone numbers. Admin only.
func (s *Service) ListSubscribers(ctx context.Context) ([]*content.SmsSubscriber, error) {
	return s.subscribers.FindAll(ctx)
}
