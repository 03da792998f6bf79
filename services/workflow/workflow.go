package workflow

import (
	"context"
	"encoding/json"
	"time"

	availabilityRepo "wellnest/database/repository/availability"
	bookingRepo "wellnest/database/repository/booking"
	businessRepo "wellnest/database/repository/business"
	serviceRepo "wellnest/database/repository/service"
	"wellnest/models"
	"wellnest/services/notification"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const businessSummaryTTL = 5 * time.Minute

// DefaultBookingWorkflowService is the production implementation.
type DefaultBookingWorkflowService struct {
	Bookings     bookingRepo.BookingRepository
	Services     serviceRepo.ServiceRepository
	Businesses   businessRepo.BusinessRepository
	Availability availabilityRepo.AvailabilityRepository
	Notifier     notification.NotificationService
	Cache        *redis.Client // optional; listings degrade to direct lookups
	Logger       *zap.Logger
}

// authorize loads the caller's business, the booking and its service, and
// verifies that the booking belongs to the caller's business via the
// service's businessId chain.
func (s *DefaultBookingWorkflowService) authorize(ownerID, bookingID string) (*models.Business, *models.Booking, *models.Service, error) {
	business, err := s.Businesses.GetByOwner(ownerID)
	if err != nil {
		return nil, nil, nil, internal(err.Error())
	}
	if business == nil {
		return nil, nil, nil, notFound("Business profile not found")
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, nil, nil, internal(err.Error())
	}
	if booking == nil {
		return nil, nil, nil, notFound("Booking not found")
	}

	service, err := s.Services.GetByID(booking.ServiceID)
	if err != nil {
		return nil, nil, nil, internal(err.Error())
	}
	if service == nil {
		return nil, nil, nil, notFound("Service not found")
	}

	if service.BusinessID != business.ID {
		return nil, nil, nil, forbidden("You do not have access to this booking")
	}
	return business, booking, service, nil
}

// businessSummary resolves the currency/name sub-object for a row, going
// through the redis cache when one is wired.
func (s *DefaultBookingWorkflowService) businessSummary(businessID string) *models.BusinessSummary {
	key := "business:summary:" + businessID
	if s.Cache != nil {
		if data, err := s.Cache.Get(context.Background(), key).Result(); err == nil {
			var summary models.BusinessSummary
			if json.Unmarshal([]byte(data), &summary) == nil {
				return &summary
			}
		}
	}

	business, err := s.Businesses.GetByID(businessID)
	if err != nil {
		s.Logger.Warn("failed to join business for booking row",
			zap.String("businessId", businessID), zap.Error(err))
		return nil
	}
	if business == nil {
		return nil
	}
	summary := business.Summary()

	if s.Cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			s.Cache.Set(context.Background(), key, data, businessSummaryTTL)
		}
	}
	return summary
}

func (s *DefaultBookingWorkflowService) populate(booking *models.Booking, service *models.Service) *models.PopulatedBooking {
	row := &models.PopulatedBooking{Booking: *booking, Service: service}
	if service != nil {
		row.Business = s.businessSummary(service.BusinessID)
	}
	return row
}

func statusIn(status string, set ...string) bool {
	for _, s := range set {
		if status == s {
			return true
		}
	}
	return false
}
