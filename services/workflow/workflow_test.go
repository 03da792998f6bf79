package workflow

import (
	"context"
	"errors"
	"time"

	"wellnest/models"

	"go.uber.org/zap"
)

// In-memory fakes shared by the workflow tests.

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	order     []string
	updateErr error
	updates   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) add(b *models.Booking) {
	cp := *b
	f.bookings[b.ID] = &cp
	f.order = append(f.order, b.ID)
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.add(b)
	return nil
}

func (f *fakeBookingRepo) Update(b *models.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.bookings[b.ID]; !ok {
		return errors.New("booking not found")
	}
	f.updates++
	b.UpdatedAt = time.Now()
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func paginate(rows []models.Booking, page, limit int) ([]models.Booking, int64) {
	total := int64(len(rows))
	start := (page - 1) * limit
	if start >= len(rows) {
		return nil, total
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total
}

func (f *fakeBookingRepo) collect(match func(*models.Booking) bool) []models.Booking {
	var rows []models.Booking
	for _, id := range f.order {
		if b := f.bookings[id]; match(b) {
			rows = append(rows, *b)
		}
	}
	return rows
}

func (f *fakeBookingRepo) ListByServiceIDs(serviceIDs []string, statuses []string, page, limit int) ([]models.Booking, int64, error) {
	ids := map[string]bool{}
	for _, id := range serviceIDs {
		ids[id] = true
	}
	sts := map[string]bool{}
	for _, s := range statuses {
		sts[s] = true
	}
	rows := f.collect(func(b *models.Booking) bool {
		if !ids[b.ServiceID] {
			return false
		}
		return len(sts) == 0 || sts[b.Status]
	})
	out, total := paginate(rows, page, limit)
	return out, total, nil
}

func (f *fakeBookingRepo) ListByCustomer(customerID string, page, limit int) ([]models.Booking, int64, error) {
	rows := f.collect(func(b *models.Booking) bool { return b.CustomerID == customerID })
	out, total := paginate(rows, page, limit)
	return out, total, nil
}

func (f *fakeBookingRepo) ListWithBusinessResponse(therapistID string, page, limit int) ([]models.Booking, int64, error) {
	rows := f.collect(func(b *models.Booking) bool {
		return b.TherapistID == therapistID && b.HasBusinessResponse()
	})
	out, total := paginate(rows, page, limit)
	return out, total, nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeServiceRepo) ListByBusiness(businessID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.BusinessID == businessID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeBusinessRepo struct {
	businesses map[string]*models.Business
}

func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	b, ok := f.businesses[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) {
	for _, b := range f.businesses {
		if b.Owner == ownerID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBusinessRepo) AppendTherapist(string, models.TherapistAssociation) error { return nil }
func (f *fakeBusinessRepo) PullTherapist(string, string) error                        { return nil }
func (f *fakeBusinessRepo) SetTherapistStatus(string, string, string, string, *time.Time) (bool, error) {
	return false, nil
}

type fakeAvailabilityRepo struct {
	slots   []*models.TherapistAvailability
	findErr error
	setErr  error
}

func (f *fakeAvailabilityRepo) FindSlotCovering(therapistID string, date time.Time, at string) (*models.TherapistAvailability, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, slot := range f.slots {
		sameDay := slot.Date.Year() == date.Year() && slot.Date.YearDay() == date.YearDay()
		if slot.TherapistID == therapistID && sameDay && slot.Covers(at) {
			return slot, nil
		}
	}
	return nil, nil
}

func (f *fakeAvailabilityRepo) SetStatus(id, status string) error {
	if f.setErr != nil {
		return f.setErr
	}
	for _, slot := range f.slots {
		if slot.ID == id {
			slot.Status = status
			return nil
		}
	}
	return errors.New("slot not found")
}

type fakeNotifier struct {
	err    error
	called chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{called: make(chan string, 8)}
}

func (f *fakeNotifier) BookingCancelled(ctx context.Context, b *models.Booking) error {
	f.called <- "cancelled:" + b.ID
	return f.err
}

func (f *fakeNotifier) BookingRescheduled(ctx context.Context, b *models.Booking) error {
	f.called <- "rescheduled:" + b.ID
	return f.err
}

type fixture struct {
	svc          *DefaultBookingWorkflowService
	bookings     *fakeBookingRepo
	availability *fakeAvailabilityRepo
	notifier     *fakeNotifier
}

func newFixture() *fixture {
	bookings := newFakeBookingRepo()
	availability := &fakeAvailabilityRepo{}
	notifier := newFakeNotifier()

	businesses := &fakeBusinessRepo{businesses: map[string]*models.Business{
		"biz-1": {ID: "biz-1", Owner: "own-1", Name: "Calm Spa",
			Currency: models.Currency{Code: "USD", Symbol: "$"}},
		"biz-2": {ID: "biz-2", Owner: "own-2", Name: "Glow",
			Currency: models.Currency{Code: "EUR", Symbol: "€"}},
	}}
	services := &fakeServiceRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", BusinessID: "biz-1", Name: "Deep Tissue", Price: 80, Duration: 60},
		"svc-2": {ID: "svc-2", BusinessID: "biz-2", Name: "Hot Stone", Price: 95, Duration: 90},
	}}

	svc := &DefaultBookingWorkflowService{
		Bookings:     bookings,
		Services:     services,
		Businesses:   businesses,
		Availability: availability,
		Notifier:     notifier,
		Logger:       zap.NewNop(),
	}
	return &fixture{svc: svc, bookings: bookings, availability: availability, notifier: notifier}
}

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func (fx *fixture) seedBooking(id, status string, mutate ...func(*models.Booking)) *models.Booking {
	b := &models.Booking{
		ID:            id,
		CustomerID:    "cust-1",
		TherapistID:   "ther-1",
		ServiceID:     "svc-1",
		Date:          day("2025-05-10"),
		Time:          "10:00",
		Duration:      60,
		Status:        status,
		PaymentStatus: models.PaymentStatusPending,
	}
	for _, m := range mutate {
		m(b)
	}
	fx.bookings.add(b)
	return b
}

func statusOf(err error) int {
	var we *Error
	if errors.As(err, &we) {
		return we.Status
	}
	return 0
}
