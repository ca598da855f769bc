package booking

import (
	"context"
	"reflect"
	"testing"
	"time"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/events"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/timezone"
)

const testTZ = "America/Sao_Paulo"

// ======================================================
// FAKE REPOSITORY (em memória, mesma semântica de conflito)
// ======================================================

type fakeRepo struct {
	providers  map[uint]*models.Provider
	clients    map[uint]*models.Client
	categories map[uint]*models.Category

	appointments []*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		providers: map[uint]*models.Provider{
			1: {ID: 1, Name: "Marcos"},
			2: {ID: 2, Name: "Paula"},
		},
		clients: map[uint]*models.Client{
			10: {ID: 10, Name: "Ana"},
			11: {ID: 11, Name: "Bruno"},
		},
		categories: map[uint]*models.Category{
			100: {ID: 100, Name: "Elétrica"},
		},
		nextID: 1,
	}
}

func (r *fakeRepo) GetProviderByID(_ context.Context, id uint) (*models.Provider, error) {
	if p, ok := r.providers[id]; ok {
		return p, nil
	}
	return nil, httperr.ErrBusiness("provider_not_found")
}

func (r *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func (r *fakeRepo) GetCategoryByID(_ context.Context, id uint) (*models.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, httperr.ErrBusiness("category_not_found")
}

func (r *fakeRepo) AssertNoConflict(
	_ context.Context,
	providerID uint,
	clientID uint,
	date time.Time,
	period domain.Period,
) error {
	for _, ap := range r.appointments {
		if !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if ap.ProviderID == providerID && ap.Date.Equal(date) && ap.Period == string(period) {
			return httperr.ErrBusiness("provider_slot_taken")
		}
	}
	for _, ap := range r.appointments {
		if !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if ap.ClientID == clientID && ap.ProviderID == providerID && ap.Date.Equal(date) {
			return httperr.ErrBusiness("client_already_booked")
		}
	}
	return nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.AssertNoConflict(
		ctx, ap.ProviderID, ap.ClientID, ap.Date, domain.Period(ap.Period),
	); err != nil {
		return err
	}

	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) AssertSlotFree(
	_ context.Context,
	providerID uint,
	date time.Time,
	period domain.Period,
	excludeID uint,
) error {
	for _, ap := range r.appointments {
		if ap.ID == excludeID || !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if ap.ProviderID == providerID && ap.Date.Equal(date) && ap.Period == string(period) {
			return httperr.ErrBusiness("provider_slot_taken")
		}
	}
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (r *fakeRepo) GetAppointmentForProvider(ctx context.Context, id, providerID uint) (*models.Appointment, error) {
	ap, err := r.GetAppointmentByID(ctx, id)
	if err != nil || ap.ProviderID != providerID {
		return nil, httperr.ErrBusiness("not_found")
	}
	return ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (r *fakeRepo) ListForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListForProvider(_ context.Context, providerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProviderID == providerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListPendingForProvider(_ context.Context, providerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProviderID == providerID && ap.Status == string(domain.StatusPending) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOccupiedSlots(
	_ context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]domain.OccupiedSlot, error) {
	slots := []domain.OccupiedSlot{}
	for _, ap := range r.appointments {
		if ap.ProviderID != providerID || !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if ap.Date.Before(from) || ap.Date.After(to) {
			continue
		}
		slots = append(slots, domain.OccupiedSlot{
			Date:   ap.Date.Format("2006-01-02"),
			Period: ap.Period,
			Status: ap.Status,
		})
	}
	return slots, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

func futureDate(days int) string {
	return timezone.Today(testTZ).AddDate(0, 0, days).Format("2006-01-02")
}

func newUsecases(repo *fakeRepo) (*RequestBooking, *AcceptBooking, *DeclineBooking, *CancelBooking, *ListBookings, *GetAgenda) {
	d := events.NewDispatcher()
	return NewRequestBooking(repo, d, testTZ),
		NewAcceptBooking(repo, d, testTZ),
		NewDeclineBooking(repo, d, testTZ),
		NewCancelBooking(repo, d, testTZ),
		NewListBookings(repo, testTZ),
		NewGetAgenda(repo)
}

func mustRequest(t *testing.T, uc *RequestBooking, in RequestBookingInput) *models.Appointment {
	t.Helper()
	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("requestBooking: %v", err)
	}
	return ap
}

func baseInput() RequestBookingInput {
	return RequestBookingInput{
		ClientID:    10,
		ProviderID:  1,
		CategoryID:  100,
		Date:        futureDate(7),
		Period:      "morning",
		Description: "troca de fiação",
	}
}

// ======================================================
// REQUEST
// ======================================================

func TestRequestBookingCreatesPending(t *testing.T) {
	repo := newFakeRepo()
	request, _, _, _, _, _ := newUsecases(repo)

	ap := mustRequest(t, request, baseInput())

	if ap.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want pending", ap.Status)
	}
	if ap.Reference == "" {
		t.Error("reference must be generated")
	}
	if ap.ID == 0 {
		t.Error("appointment must be persisted")
	}
}

func TestRequestBookingSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	request, _, _, _, _, _ := newUsecases(repo)

	mustRequest(t, request, baseInput())

	// Segunda cliente, mesmo prestador/data/período
	in := baseInput()
	in.ClientID = 11

	_, err := request.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "provider_slot_taken") {
		t.Errorf("expected provider_slot_taken, got %v", err)
	}
}

func TestRequestBookingClientAlreadyBooked(t *testing.T) {
	repo := newFakeRepo()
	request, _, _, _, _, _ := newUsecases(repo)

	mustRequest(t, request, baseInput())

	// Mesma cliente, mesmo prestador, mesmo dia, período diferente
	in := baseInput()
	in.Period = "afternoon"

	_, err := request.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "client_already_booked") {
		t.Errorf("expected client_already_booked, got %v", err)
	}

	// Outro prestador no mesmo dia é permitido
	in.ProviderID = 2
	if _, err := request.Execute(context.Background(), in); err != nil {
		t.Errorf("different provider must be allowed, got %v", err)
	}
}

func TestRequestBookingValidation(t *testing.T) {
	repo := newFakeRepo()
	request, _, _, _, _, _ := newUsecases(repo)

	tests := []struct {
		name     string
		mutate   func(*RequestBookingInput)
		wantCode string
	}{
		{"past date", func(in *RequestBookingInput) { in.Date = futureDate(-1) }, "invalid_date"},
		{"malformed date", func(in *RequestBookingInput) { in.Date = "10/06/2025" }, "invalid_date"},
		{"bad period", func(in *RequestBookingInput) { in.Period = "night" }, "invalid_period"},
		{"unknown provider", func(in *RequestBookingInput) { in.ProviderID = 99 }, "provider_not_found"},
		{"unknown client", func(in *RequestBookingInput) { in.ClientID = 99 }, "client_not_found"},
		{"unknown category", func(in *RequestBookingInput) { in.CategoryID = 99 }, "category_not_found"},
	}

	for _, tt := range tests {
		in := baseInput()
		tt.mutate(&in)

		_, err := request.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, tt.wantCode) {
			t.Errorf("%s: expected %s, got %v", tt.name, tt.wantCode, err)
		}
	}
}

func TestRequestBookingTodayIsAllowed(t *testing.T) {
	repo := newFakeRepo()
	request, _, _, _, _, _ := newUsecases(repo)

	in := baseInput()
	in.Date = futureDate(0)

	if _, err := request.Execute(context.Background(), in); err != nil {
		t.Errorf("booking for today must be allowed, got %v", err)
	}
}

// ======================================================
// ACCEPT / DECLINE
// ======================================================

func TestAcceptPending(t *testing.T) {
	repo := newFakeRepo()
	request, accept, _, _, _, _ := newUsecases(repo)

	ap := mustRequest(t, request, baseInput())

	got, err := accept.Execute(context.Background(), 1, ap.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if got.Status != string(domain.StatusAccepted) {
		t.Errorf("status = %s, want accepted", got.Status)
	}

	// Aceitar de novo é transição ilegal
	if _, err := accept.Execute(context.Background(), 1, ap.ID); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("second accept: expected invalid_state, got %v", err)
	}
}

func TestAcceptWrongProvider(t *testing.T) {
	repo := newFakeRepo()
	request, accept, _, _, _, _ := newUsecases(repo)

	ap := mustRequest(t, request, baseInput())

	if _, err := accept.Execute(context.Background(), 2, ap.ID); !httperr.IsBusiness(err, "not_found") {
		t.Errorf("expected not_found for other provider, got %v", err)
	}
}

func TestDeclineOnlyPending(t *testing.T) {
	repo := newFakeRepo()
	request, accept, decline, _, _, _ := newUsecases(repo)

	ap := mustRequest(t, request, baseInput())

	if _, err := accept.Execute(context.Background(), 1, ap.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := decline.Execute(context.Background(), 1, ap.ID); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("decline accepted: expected invalid_state, got %v", err)
	}
}

// ======================================================
// CANCEL (libera o slot)
// ======================================================

func TestCancelFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	request, accept, _, cancel, _, agenda := newUsecases(repo)

	ap := mustRequest(t, request, baseInput())

	if _, err := accept.Execute(context.Background(), 1, ap.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	got, err := cancel.Execute(context.Background(), domain.RoleClient, 10, ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
	if got.CancelledBy == nil || *got.CancelledBy != "client" {
		t.Errorf("cancelled_by = %v, want client", got.CancelledBy)
	}

	// Slot liberado: some da agenda e aceita novo request
	from := timezone.Today(testTZ)
	slots, err := agenda.Execute(context.Background(), domain.AgendaInput{
		ProviderID: 1, From: from, To: from.AddDate(0, 0, 30),
	})
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("cancelled appointment still occupies slot: %v", slots)
	}

	in := baseInput()
	in.ClientID = 11
	if _, err := request.Execute(context.Background(), in); err != nil {
		t.Errorf("rebooking freed slot must succeed, got %v", err)
	}
}

func TestCancelForbiddenForStranger(t *testing.T) {
	repo := newFakeRepo()
	request, _, _, cancel, _, _ := newUsecases(repo)

	ap := mustRequest(t, request, baseInput())

	if _, err := cancel.Execute(context.Background(), domain.RoleClient, 11, ap.ID); !httperr.IsBusiness(err, "forbidden") {
		t.Errorf("expected forbidden, got %v", err)
	}
	if _, err := cancel.Execute(context.Background(), domain.RoleProvider, 2, ap.ID); !httperr.IsBusiness(err, "forbidden") {
		t.Errorf("expected forbidden, got %v", err)
	}
}

// ======================================================
// LISTAGENS / AGENDA
// ======================================================

func TestListForClientIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	request, _, _, _, list, _ := newUsecases(repo)

	mustRequest(t, request, baseInput())

	first, err := list.ForClient(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := list.ForClient(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two reads with no writes must return identical results")
	}
}

func TestPendingQueueForProvider(t *testing.T) {
	repo := newFakeRepo()
	request, accept, _, _, list, _ := newUsecases(repo)

	first := mustRequest(t, request, baseInput())

	in := baseInput()
	in.ClientID = 11
	in.Date = futureDate(8)
	mustRequest(t, request, in)

	if _, err := accept.Execute(context.Background(), 1, first.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	pending, err := list.PendingForProvider(context.Background(), 1)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].Status != string(domain.StatusPending) {
		t.Errorf("pending queue wrong: %+v", pending)
	}
}

func TestAgendaRejectsInvertedRange(t *testing.T) {
	repo := newFakeRepo()
	_, _, _, _, _, agenda := newUsecases(repo)

	from := timezone.Today(testTZ)
	_, err := agenda.Execute(context.Background(), domain.AgendaInput{
		ProviderID: 1, From: from, To: from.AddDate(0, 0, -1),
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("expected invalid_date for from > to, got %v", err)
	}
}

func TestAgendaListsActiveSlots(t *testing.T) {
	repo := newFakeRepo()
	request, _, decline, _, _, agenda := newUsecases(repo)

	kept := mustRequest(t, request, baseInput())

	in := baseInput()
	in.ClientID = 11
	in.Date = futureDate(8)
	in.Period = "afternoon"
	declined := mustRequest(t, request, in)

	if _, err := decline.Execute(context.Background(), 1, declined.ID); err != nil {
		t.Fatalf("decline: %v", err)
	}

	from := timezone.Today(testTZ)
	slots, err := agenda.Execute(context.Background(), domain.AgendaInput{
		ProviderID: 1, From: from, To: from.AddDate(0, 0, 30),
	})
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("expected 1 occupied slot, got %d", len(slots))
	}
	if slots[0].Date != kept.Date.Format("2006-01-02") || slots[0].Period != "morning" {
		t.Errorf("unexpected slot: %+v", slots[0])
	}
}
