package content

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BannerRepository defines the interface for banner persistence
type BannerRepository interface {
	Create(ctx context.Context, b *Banner) error
	Update(ctx context.Context, b *Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Banner, error)

	// FindAll lists banners ordered by position
	FindAll(ctx context.Context) ([]*Banner, error)
}

// PopupRepository defines the interface for popup persistence
type PopupRepository interface {
	Create(ctx context.Context, p *Popup) error
	Update(ctx context.Context, p *Popup) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Popup, error)
	FindAll(ctx context.Context) ([]*Popup, error)

	// FindActive lists popups whose display window contains the given time
	FindActive(ctx context.Context, now time.Time) ([]*Popup, error)
}

// BriefingRepository defines the interface for briefing persistence
type BriefingRepository interface {
	Create(ctx context.Context, b *Briefing) error
	Update(ctx context.Context, b *Briefing) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Briefing, error)
	FindAll(ctx context.Context) ([]*Briefing, error)
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	Create(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindAll(ctx context.Context) ([]*Review, error)
}

// SubscriberRepository defines the interface for SMS subscriber persistence
type SubscriberRepository interface {
	// Create inserts the subscriber. A duplicate phone returns
	// shared.ErrAlreadyExists via the unique index.
	Create(ctx context.Context, s *SmsSubscriber) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*SmsSubscriber, error)
}
