package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/PunisherCE/Parqueaderos/internal/billing"
	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/repository"
)

var ErrInvalidPlate = errors.New("invalid or incomplete plate")
var ErrInvalidDuration = errors.New("duration must be at least 1")
var ErrInvalidUnit = errors.New("unit must be \"months\" or \"weeks\"")

// ErrPersistence marks a durable write that failed after the in-memory
// mutation was applied. The mutation is not rolled back; the next successful
// write reconciles storage.
var ErrPersistence = errors.New("persisting ledger state failed")

func errPersist(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

// OccupancyBroadcaster pushes occupancy changes to connected dashboards.
type OccupancyBroadcaster interface {
	BroadcastOccupancy(occ domain.Occupancy)
}

// LedgerService owns the two vehicle populations and the running revenue
// total. Hourly sessions and subscriptions are independent namespaces for
// plate uniqueness, but occupancy is summed across both. Every mutating
// operation persists the owning collection before returning. Mutations are
// serialized with a mutex so no two operations interleave.
type LedgerService struct {
	mu          sync.Mutex
	repo        repository.LedgerRepository
	pricing     *PricingService
	calc        *billing.Calculator
	guard       CapacityGuard
	broadcaster OccupancyBroadcaster
	logger      zerolog.Logger

	hourly []domain.HourlySession
	subs   []domain.Subscription
	total  float64
	saved  time.Time

	now func() time.Time
}

func NewLedgerService(repo repository.LedgerRepository, pricing *PricingService, calc *billing.Calculator, logger zerolog.Logger) *LedgerService {
	return &LedgerService{
		repo:    repo,
		pricing: pricing,
		calc:    calc,
		logger:  logger,
		now:     time.Now,
	}
}

// SetBroadcaster attaches the websocket occupancy push. Optional.
func (s *LedgerService) SetBroadcaster(b OccupancyBroadcaster) {
	s.broadcaster = b
}

// Load restores both populations and the revenue snapshot from storage.
// A key that was never written, or a failed read, yields empty state.
func (s *LedgerService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hourly, err := s.repo.LoadHourly(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error().Err(err).Msg("loading hourly vehicles failed, starting empty")
	}
	s.hourly = hourly

	subs, err := s.repo.LoadSubscriptions(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error().Err(err).Msg("loading subscription vehicles failed, starting empty")
	}
	s.subs = subs

	snap, err := s.repo.LoadRevenue(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error().Err(err).Msg("loading revenue total failed, starting at zero")
	}
	s.total = snap.Total
	s.saved = snap.SavedAt

	s.logger.Info().
		Int("hourly", len(s.hourly)).
		Int("subscriptions", len(s.subs)).
		Float64("revenue_total", s.total).
		Msg("ledger state restored")
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// RegisterHourly admits a vehicle under pay-on-exit billing and returns the
// ticket data the printing collaborator consumes.
func (s *LedgerService) RegisterHourly(ctx context.Context, plate string) (*domain.HourlyTicketDTO, error) {
	plate = normalizePlate(plate)
	if !domain.ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}
	vtype := domain.VehicleTypeFromPlate(plate)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.hourly {
		if v.Plate == plate {
			return nil, fmt.Errorf("%w: plate %s already parked", repository.ErrDuplicateEntry, plate)
		}
	}
	cfg := s.pricing.Current()
	if err := s.guard.Admit(cfg, vtype, s.occupancyLocked(vtype)); err != nil {
		return nil, err
	}

	session := domain.HourlySession{
		Plate:     plate,
		Type:      vtype,
		EntryTime: s.now().UTC(),
	}
	s.hourly = append([]domain.HourlySession{session}, s.hourly...)

	if err := s.repo.SaveHourly(ctx, s.hourly); err != nil {
		s.logger.Error().Err(err).Str("plate", plate).Msg("persisting hourly vehicles failed")
		return nil, errPersist(err)
	}
	s.broadcastLocked(cfg)

	return &domain.HourlyTicketDTO{
		TicketID:  uuid.NewString(),
		Plate:     session.Plate,
		Type:      session.Type,
		EntryTime: session.EntryTime,
		Barcode:   domain.BarcodeValue(session.Plate),
	}, nil
}

// BillHourly charges an active hourly session, removes it and credits the
// amount to the revenue total.
func (s *LedgerService) BillHourly(ctx context.Context, plate string) (*domain.BillReceiptDTO, error) {
	plate = normalizePlate(plate)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, v := range s.hourly {
		if v.Plate == plate {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: no active hourly session for plate %s", repository.ErrNotFound, plate)
	}

	session := s.hourly[idx]
	cfg := s.pricing.Current()
	amount, hours := s.calc.HourlyCharge(cfg, session, s.now())

	s.hourly = append(s.hourly[:idx], s.hourly[idx+1:]...)
	s.total += amount
	s.saved = s.now().UTC()

	receipt := &domain.BillReceiptDTO{
		Plate:        session.Plate,
		Type:         session.Type,
		Hours:        hours,
		Amount:       amount,
		RevenueTotal: s.total,
	}

	if err := s.persistHourlyAndRevenue(ctx); err != nil {
		return nil, err
	}
	s.broadcastLocked(cfg)
	return receipt, nil
}

// RegisterSubscription admits a vehicle under a prepaid monthly or weekly
// arrangement. Capacity is checked against the combined occupancy.
func (s *LedgerService) RegisterSubscription(ctx context.Context, dto domain.RegisterSubscriptionDTO) (*domain.Subscription, error) {
	plate := normalizePlate(dto.Plate)
	if !domain.ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}
	if dto.Duration < 1 {
		return nil, ErrInvalidDuration
	}
	if !dto.Unit.Valid() {
		return nil, ErrInvalidUnit
	}
	vtype := domain.VehicleTypeFromPlate(plate)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.subs {
		if v.Plate == plate {
			return nil, fmt.Errorf("%w: plate %s already has a subscription", repository.ErrDuplicateEntry, plate)
		}
	}
	cfg := s.pricing.Current()
	if err := s.guard.Admit(cfg, vtype, s.occupancyLocked(vtype)); err != nil {
		return nil, err
	}

	cedula := strings.TrimSpace(dto.Cedula)
	if cedula == "" {
		cedula = domain.NoCedula
	}
	expiry := billing.AddPeriod(s.now(), dto.Duration, dto.Unit)
	sub := domain.Subscription{
		Plate:           plate,
		Type:            vtype,
		HolderName:      dto.Name,
		Cedula:          cedula,
		Duration:        dto.Duration,
		ExpiresAt:       expiry,
		FormattedExpiry: s.calc.FormatExpiry(expiry),
		AmountDue:       s.calc.PeriodCharge(cfg, vtype, dto.Duration, dto.Unit),
	}
	s.subs = append([]domain.Subscription{sub}, s.subs...)

	if err := s.repo.SaveSubscriptions(ctx, s.subs); err != nil {
		s.logger.Error().Err(err).Str("plate", plate).Msg("persisting subscription vehicles failed")
		return nil, errPersist(err)
	}
	s.broadcastLocked(cfg)
	return &sub, nil
}

// RenewSubscription extends a subscription from its recorded expiry, not from
// now, so advance renewal keeps the unused remainder. A confirmed payment
// replaces the amount due; an unpaid renewal accumulates it.
func (s *LedgerService) RenewSubscription(ctx context.Context, plate string, dto domain.RenewSubscriptionDTO) (*domain.Subscription, error) {
	plate = normalizePlate(plate)
	if dto.Duration < 1 {
		return nil, ErrInvalidDuration
	}
	if !dto.Unit.Valid() {
		return nil, ErrInvalidUnit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, v := range s.subs {
		if v.Plate == plate {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: no subscription for plate %s", repository.ErrNotFound, plate)
	}

	cfg := s.pricing.Current()
	sub := s.subs[idx]
	extended := billing.AddPeriod(sub.ExpiresAt, dto.Duration, dto.Unit)
	sub.AmountDue = s.calc.RenewalAmount(cfg, sub, dto.Duration, dto.Unit, dto.Paid)
	sub.ExpiresAt = extended
	sub.FormattedExpiry = s.calc.FormatExpiry(extended)
	sub.Duration += dto.Duration
	s.subs[idx] = sub

	if err := s.repo.SaveSubscriptions(ctx, s.subs); err != nil {
		s.logger.Error().Err(err).Str("plate", plate).Msg("persisting subscription vehicles failed")
		return nil, errPersist(err)
	}
	return &sub, nil
}

// RemoveSubscription deletes a subscription, assuming its balance was settled
// in full, and credits the amount due to the revenue total.
func (s *LedgerService) RemoveSubscription(ctx context.Context, plate string) (*domain.RemovalReceiptDTO, error) {
	plate = normalizePlate(plate)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, v := range s.subs {
		if v.Plate == plate {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: no subscription for plate %s", repository.ErrNotFound, plate)
	}

	sub := s.subs[idx]
	s.subs = append(s.subs[:idx], s.subs[idx+1:]...)
	s.total += sub.AmountDue
	s.saved = s.now().UTC()

	receipt := &domain.RemovalReceiptDTO{
		Plate:          sub.Plate,
		AmountCredited: sub.AmountDue,
		RevenueTotal:   s.total,
	}

	if err := s.persistSubscriptionsAndRevenue(ctx); err != nil {
		return nil, err
	}
	s.broadcastLocked(s.pricing.Current())
	return receipt, nil
}

// ListHourly returns active hourly sessions, newest first, optionally
// filtered by a case-insensitive plate substring.
func (s *LedgerService) ListHourly(filter string) []domain.HourlySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter = strings.ToLower(strings.TrimSpace(filter))
	out := make([]domain.HourlySession, 0, len(s.hourly))
	for _, v := range s.hourly {
		if filter == "" || strings.Contains(strings.ToLower(v.Plate), filter) {
			out = append(out, v)
		}
	}
	return out
}

// ListSubscriptions returns active subscriptions, newest first, optionally
// filtered by a case-insensitive plate substring.
func (s *LedgerService) ListSubscriptions(filter string) []domain.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter = strings.ToLower(strings.TrimSpace(filter))
	out := make([]domain.Subscription, 0, len(s.subs))
	for _, v := range s.subs {
		if filter == "" || strings.Contains(strings.ToLower(v.Plate), filter) {
			out = append(out, v)
		}
	}
	return out
}

// Occupancy reports both per-type counts against the configured limits.
func (s *LedgerService) Occupancy() domain.Occupancy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupancySnapshotLocked(s.pricing.Current())
}

// Revenue returns the running collected total and when it was last saved.
func (s *LedgerService) Revenue() domain.RevenueSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.RevenueSnapshot{Total: s.total, SavedAt: s.saved}
}

func (s *LedgerService) occupancyLocked(t domain.VehicleType) int {
	count := 0
	for _, v := range s.hourly {
		if v.Type == t {
			count++
		}
	}
	for _, v := range s.subs {
		if v.Type == t {
			count++
		}
	}
	return count
}

func (s *LedgerService) occupancySnapshotLocked(cfg domain.PriceConfig) domain.Occupancy {
	return domain.Occupancy{
		Cars:      s.occupancyLocked(domain.TypeCar),
		CarLimit:  cfg.MaxFor(domain.TypeCar),
		Motos:     s.occupancyLocked(domain.TypeMotorcycle),
		MotoLimit: cfg.MaxFor(domain.TypeMotorcycle),
	}
}

func (s *LedgerService) broadcastLocked(cfg domain.PriceConfig) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastOccupancy(s.occupancySnapshotLocked(cfg))
}

func (s *LedgerService) persistHourlyAndRevenue(ctx context.Context) error {
	if err := s.repo.SaveHourly(ctx, s.hourly); err != nil {
		s.logger.Error().Err(err).Msg("persisting hourly vehicles failed")
		return errPersist(err)
	}
	if err := s.repo.SaveRevenue(ctx, domain.RevenueSnapshot{Total: s.total, SavedAt: s.saved}); err != nil {
		s.logger.Error().Err(err).Msg("persisting revenue total failed")
		return errPersist(err)
	}
	return nil
}

func (s *LedgerService) persistSubscriptionsAndRevenue(ctx context.Context) error {
	if err := s.repo.SaveSubscriptions(ctx, s.subs); err != nil {
		s.logger.Error().Err(err).Msg("persisting subscription vehicles failed")
		return errPersist(err)
	}
	if err := s.repo.SaveRevenue(ctx, domain.RevenueSnapshot{Total: s.total, SavedAt: s.saved}); err != nil {
		s.logger.Error().Err(err).Msg("persisting revenue total failed")
		return errPersist(err)
	}
	return nil
}
