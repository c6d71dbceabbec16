package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
	"github.com/styleverse/marketplace-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria. Replican el contrato de los repos de postgres:
// los Get* devuelven (nil, nil) cuando el registro no existe, y los Update*
// / Delete devuelven ErrNotFound si no afectan filas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeRequestRepo struct {
	seq      int64
	requests map[int64]*entity.CustomizationRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[int64]*entity.CustomizationRequest{}}
}

func (f *fakeRequestRepo) Create(_ context.Context, r *entity.CustomizationRequest) error {
	f.seq++
	r.RequestID = f.seq
	clone := *r
	f.requests[r.RequestID] = &clone
	return nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*entity.CustomizationRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRequestRepo) ListByUser(_ context.Context, userID int64) ([]*entity.CustomizationRequest, error) {
	var out []*entity.CustomizationRequest
	for id := int64(1); id <= f.seq; id++ {
		if r, ok := f.requests[id]; ok && r.UserID == userID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	r, ok := f.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRequestRepo) UpdateStatusFrom(_ context.Context, id int64, from, to string) error {
	r, ok := f.requests[id]
	if !ok || r.Status != from {
		return domain.ErrConflict
	}
	r.Status = to
	return nil
}

func (f *fakeRequestRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.requests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeProposalRepo struct {
	seq       int64
	proposals map[int64]*entity.DesignerProposal
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{proposals: map[int64]*entity.DesignerProposal{}}
}

func (f *fakeProposalRepo) Create(_ context.Context, p *entity.DesignerProposal) error {
	f.seq++
	p.ProposalID = f.seq
	clone := *p
	f.proposals[p.ProposalID] = &clone
	return nil
}

func (f *fakeProposalRepo) GetByID(_ context.Context, id int64) (*entity.DesignerProposal, error) {
	p, ok := f.proposals[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProposalRepo) ListByRequest(_ context.Context, requestID int64) ([]*entity.DesignerProposal, error) {
	var out []*entity.DesignerProposal
	for id := int64(1); id <= f.seq; id++ {
		if p, ok := f.proposals[id]; ok && p.RequestID == requestID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeProposalRepo) UpdateStatusFrom(_ context.Context, id int64, from, to string) error {
	p, ok := f.proposals[id]
	if !ok || p.Status != from {
		return domain.ErrConflict
	}
	p.Status = to
	return nil
}

type fakeOrderRepo struct {
	seq    int64
	orders map[int64]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.seq++
	o.OrderID = f.seq
	clone := *o
	f.orders[o.OrderID] = &clone
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Order, error) {
	var out []*entity.Order
	for id := int64(1); id <= f.seq; id++ {
		if o, ok := f.orders[id]; ok && o.UserID == userID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatusFrom(_ context.Context, id int64, from, to string) error {
	o, ok := f.orders[id]
	if !ok || o.Status != from {
		return domain.ErrConflict
	}
	o.Status = to
	return nil
}

type fakePaymentRepo struct {
	seq      int64
	payments []*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo { return &fakePaymentRepo{} }

func (f *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	f.seq++
	p.PaymentID = f.seq
	clone := *p
	f.payments = append(f.payments, &clone)
	return nil
}

func (f *fakePaymentRepo) ListByOrder(_ context.Context, orderID int64) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.OrderID == orderID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) SumCompletedByOrder(_ context.Context, orderID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range f.payments {
		if p.OrderID == orderID && p.Status == entity.PaymentStatusCompleted {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

type fakeMerchantRepo struct {
	seq       int64
	merchants map[int64]*entity.Merchant
}

func newFakeMerchantRepo() *fakeMerchantRepo {
	return &fakeMerchantRepo{merchants: map[int64]*entity.Merchant{}}
}

func (f *fakeMerchantRepo) Create(_ context.Context, m *entity.Merchant) error {
	f.seq++
	m.MerchantID = f.seq
	clone := *m
	f.merchants[m.MerchantID] = &clone
	return nil
}

func (f *fakeMerchantRepo) GetByID(_ context.Context, id int64) (*entity.Merchant, error) {
	m, ok := f.merchants[id]
	if !ok {
		return nil, nil
	}
	clone := *m
	return &clone, nil
}

func (f *fakeMerchantRepo) GetByUserID(_ context.Context, userID int64) (*entity.Merchant, error) {
	for _, m := range f.merchants {
		if m.UserID == userID {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeMerchantRepo) ListProfiles(_ context.Context) ([]repository.DesignerProfile, error) {
	var out []repository.DesignerProfile
	for id := int64(1); id <= f.seq; id++ {
		if m, ok := f.merchants[id]; ok {
			out = append(out, repository.DesignerProfile{
				MerchantID: m.MerchantID,
				Bio:        m.Bio,
				Specialty:  m.Specialty,
				Rating:     m.Rating,
			})
		}
	}
	return out, nil
}

func (f *fakeMerchantRepo) UpdateRating(_ context.Context, merchantID int64, rating decimal.Decimal) error {
	m, ok := f.merchants[merchantID]
	if !ok {
		return domain.ErrNotFound
	}
	m.Rating = rating
	return nil
}

type fakeUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.seq++
	u.UserID = f.seq
	clone := *u
	f.users[u.UserID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

type fakeReviewRepo struct {
	seq     int64
	reviews []*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo { return &fakeReviewRepo{} }

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	f.seq++
	r.ReviewID = f.seq
	clone := *r
	f.reviews = append(f.reviews, &clone)
	return nil
}

func (f *fakeReviewRepo) ListByMerchant(_ context.Context, merchantID int64) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.MerchantID == merchantID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) AverageRating(_ context.Context, merchantID int64) (decimal.Decimal, error) {
	sum, n := decimal.Zero, 0
	for _, r := range f.reviews {
		if r.MerchantID == merchantID {
			sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
			n++
		}
	}
	if n == 0 {
		return decimal.Zero, nil
	}
	return sum.Div(decimal.NewFromInt(int64(n))), nil
}

type fakeNotificationRepo struct {
	seq           int64
	notifications []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo { return &fakeNotificationRepo{} }

func (f *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	f.seq++
	n.NotificationID = f.seq
	clone := *n
	f.notifications = append(f.notifications, &clone)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Notification, error) {
	var out []*entity.Notification
	// Más recientes primero, como el repo real.
	for i := len(f.notifications) - 1; i >= 0; i-- {
		if f.notifications[i].UserID == userID {
			clone := *f.notifications[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) forUser(userID int64) []*entity.Notification {
	out, _ := f.ListByUser(context.Background(), userID)
	return out
}

// fakeSettlementRunner ejecuta fn directamente sobre los mismos repos fake;
// la atomicidad real la cubre postgres.TxRunner.
type fakeSettlementRunner struct {
	requests  *fakeRequestRepo
	proposals *fakeProposalRepo
	orders    *fakeOrderRepo
}

func (f *fakeSettlementRunner) RunSettlement(ctx context.Context, fn func(
	requests repository.RequestRepository,
	proposals repository.ProposalRepository,
	orders repository.OrderRepository,
) error) error {
	return fn(f.requests, f.proposals, f.orders)
}

// fakePublisher acumula los eventos publicados.
type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, _ any) error {
	f.keys = append(f.keys, key)
	return nil
}

// fakeDirectoryCache cuenta invalidaciones y sirve un snapshot fijo.
type fakeDirectoryCache struct {
	profiles    []repository.DesignerProfile
	hit         bool
	sets        int
	invalidates int
}

func (f *fakeDirectoryCache) GetProfiles(_ context.Context) ([]repository.DesignerProfile, bool) {
	if !f.hit {
		return nil, false
	}
	return f.profiles, true
}

func (f *fakeDirectoryCache) SetProfiles(_ context.Context, profiles []repository.DesignerProfile) {
	f.profiles = profiles
	f.hit = true
	f.sets++
}

func (f *fakeDirectoryCache) Invalidate(_ context.Context) {
	f.profiles = nil
	f.hit = false
	f.invalidates++
}

func testNotifier(repo *fakeNotificationRepo, pub usecase.EventPublisher) *usecase.Notifier {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return usecase.NewNotifier(repo, pub, log)
}
