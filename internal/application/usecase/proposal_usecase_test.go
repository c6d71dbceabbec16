package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

type proposalFixture struct {
	uc            *usecase.ProposalUseCase
	requests      *fakeRequestRepo
	proposals     *fakeProposalRepo
	orders        *fakeOrderRepo
	merchants     *fakeMerchantRepo
	notifications *fakeNotificationRepo
	publisher     *fakePublisher
}

func newProposalFixture(t *testing.T) *proposalFixture {
	t.Helper()
	f := &proposalFixture{
		requests:      newFakeRequestRepo(),
		proposals:     newFakeProposalRepo(),
		orders:        newFakeOrderRepo(),
		merchants:     newFakeMerchantRepo(),
		notifications: newFakeNotificationRepo(),
		publisher:     &fakePublisher{},
	}
	// Merchant 1 pertenece al usuario del principal disenador.
	require.NoError(t, f.merchants.Create(context.Background(), &entity.Merchant{UserID: disenador.UserID}))
	runner := &fakeSettlementRunner{requests: f.requests, proposals: f.proposals, orders: f.orders}
	f.uc = usecase.NewProposalUseCase(f.proposals, f.requests, f.merchants, runner, testNotifier(f.notifications, f.publisher))
	return f
}

func (f *proposalFixture) solicitudDe(t *testing.T, p entity.Principal) *entity.CustomizationRequest {
	t.Helper()
	req := &entity.CustomizationRequest{
		UserID:     p.UserID,
		FabricType: "Seda",
		Size:       "S",
		Status:     entity.RequestStatusPending,
	}
	require.NoError(t, f.requests.Create(context.Background(), req))
	return req
}

func (f *proposalFixture) propuestaSobre(t *testing.T, requestID int64) *dto.ProposalResponse {
	t.Helper()
	proposal, err := f.uc.Create(context.Background(), disenador, dto.CreateProposalRequest{
		RequestID: requestID,
		Price:     decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	return proposal
}

func TestProposalCreate_DesignerProponeSobreSolicitudExistente(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)

	proposal := f.propuestaSobre(t, req.RequestID)

	assert.Equal(t, entity.ProposalStatusPending, proposal.Status)
	assert.Equal(t, disenador.MerchantID, proposal.MerchantID)
	assert.Equal(t, req.RequestID, proposal.RequestID)

	// El dueño de la solicitud queda notificado y el evento se publica.
	assert.Len(t, f.notifications.forUser(cliente.UserID), 1)
	assert.Contains(t, f.publisher.keys, usecase.EventProposalCreated)
}

func TestProposalCreate_SoloDesigners(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)

	_, err := f.uc.Create(context.Background(), cliente, dto.CreateProposalRequest{
		RequestID: req.RequestID,
		Price:     decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProposalCreate_PrecioNoPositivo(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)

	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := f.uc.Create(context.Background(), disenador, dto.CreateProposalRequest{
			RequestID: req.RequestID,
			Price:     price,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProposalCreate_SolicitudInexistente(t *testing.T) {
	f := newProposalFixture(t)

	_, err := f.uc.Create(context.Background(), disenador, dto.CreateProposalRequest{
		RequestID: 999,
		Price:     decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProposalCreate_VariasPropuestasPorSolicitud(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)

	f.propuestaSobre(t, req.RequestID)
	f.propuestaSobre(t, req.RequestID)

	list, err := f.proposals.ListByRequest(context.Background(), req.RequestID)
	require.NoError(t, err)
	assert.Len(t, list, 2, "no hay unicidad por (request, merchant)")
}

func TestProposalListForRequest_DuenoVeLasPropuestas(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)
	f.propuestaSobre(t, req.RequestID)
	f.propuestaSobre(t, req.RequestID)

	list, err := f.uc.ListForRequest(context.Background(), cliente, req.RequestID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Admin también puede; un tercero y el diseñador proponente no.
	_, err = f.uc.ListForRequest(context.Background(), admin, req.RequestID)
	assert.NoError(t, err)
	_, err = f.uc.ListForRequest(context.Background(), otroCliente, req.RequestID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.uc.ListForRequest(context.Background(), disenador, req.RequestID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProposalListForRequest_SolicitudInexistente(t *testing.T) {
	f := newProposalFixture(t)

	_, err := f.uc.ListForRequest(context.Background(), admin, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProposalAccept_LiquidaYCreaOrden(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)
	proposal := f.propuestaSobre(t, req.RequestID)

	out, err := f.uc.Accept(context.Background(), cliente, proposal.ProposalID)
	require.NoError(t, err)

	assert.Equal(t, entity.ProposalStatusAccepted, out.Proposal.Status)
	assert.True(t, out.Order.TotalAmount.Equal(proposal.Price), "la orden hereda el precio propuesto")
	assert.Equal(t, cliente.UserID, out.Order.UserID, "la orden pertenece al dueño de la solicitud")
	assert.Equal(t, entity.OrderStatusPending, out.Order.Status)

	// Los tres registros quedaron consistentes.
	gotReq, _ := f.requests.GetByID(context.Background(), req.RequestID)
	assert.Equal(t, entity.RequestStatusAccepted, gotReq.Status)
	gotProp, _ := f.proposals.GetByID(context.Background(), proposal.ProposalID)
	assert.Equal(t, entity.ProposalStatusAccepted, gotProp.Status)
	gotOrder, _ := f.orders.GetByID(context.Background(), out.Order.OrderID)
	require.NotNil(t, gotOrder)

	// Cliente y diseñador reciben aviso.
	assert.NotEmpty(t, f.notifications.forUser(cliente.UserID))
	assert.NotEmpty(t, f.notifications.forUser(disenador.UserID))
	assert.Contains(t, f.publisher.keys, usecase.EventProposalAccepted)
}

func TestProposalAccept_AdminPuedeAceptarAjena(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)
	proposal := f.propuestaSobre(t, req.RequestID)

	_, err := f.uc.Accept(context.Background(), admin, proposal.ProposalID)
	assert.NoError(t, err)
}

func TestProposalAccept_TerceroProhibido(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)
	proposal := f.propuestaSobre(t, req.RequestID)

	_, err := f.uc.Accept(context.Background(), otroCliente, proposal.ProposalID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProposalAccept_NoExiste(t *testing.T) {
	f := newProposalFixture(t)

	_, err := f.uc.Accept(context.Background(), admin, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// gatedSettlementRunner retiene las liquidaciones hasta que todos los
// participantes pasaron los chequeos previos de Accept, y después las ejecuta
// una por una. Reproduce dos aceptaciones que leyeron la misma foto Pending.
type gatedSettlementRunner struct {
	inner   *fakeSettlementRunner
	barrier sync.WaitGroup
	mu      sync.Mutex
}

func (g *gatedSettlementRunner) RunSettlement(ctx context.Context, fn func(
	requests repository.RequestRepository,
	proposals repository.ProposalRepository,
	orders repository.OrderRepository,
) error) error {
	g.barrier.Done()
	g.barrier.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.RunSettlement(ctx, fn)
}

func (f *proposalFixture) aceptacionConBarrera(participantes int) *usecase.ProposalUseCase {
	gate := &gatedSettlementRunner{
		inner: &fakeSettlementRunner{requests: f.requests, proposals: f.proposals, orders: f.orders},
	}
	gate.barrier.Add(participantes)
	return usecase.NewProposalUseCase(f.proposals, f.requests, f.merchants, gate, testNotifier(f.notifications, f.publisher))
}

func TestProposalAccept_CarreraMismaPropuestaSoloUnaGana(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)
	proposal := f.propuestaSobre(t, req.RequestID)
	uc := f.aceptacionConBarrera(2)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := uc.Accept(context.Background(), cliente, proposal.ProposalID)
			errs <- err
		}()
	}

	wins, conflicts := 0, 0
	for i := 0; i < 2; i++ {
		if err := <-errs; err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrConflict)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins, "exactamente una aceptación gana")
	assert.Equal(t, 1, conflicts)

	orders, _ := f.orders.ListByUser(context.Background(), cliente.UserID)
	assert.Len(t, orders, 1, "una sola orden para la solicitud")
}

func TestProposalAccept_CarreraPropuestasHermanasSoloUnaGana(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)
	primera := f.propuestaSobre(t, req.RequestID)
	segunda := f.propuestaSobre(t, req.RequestID)
	uc := f.aceptacionConBarrera(2)

	errs := make(chan error, 2)
	for _, id := range []int64{primera.ProposalID, segunda.ProposalID} {
		go func(proposalID int64) {
			_, err := uc.Accept(context.Background(), cliente, proposalID)
			errs <- err
		}(id)
	}

	wins := 0
	for i := 0; i < 2; i++ {
		if err := <-errs; err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrConflict)
		}
	}
	assert.Equal(t, 1, wins)

	orders, _ := f.orders.ListByUser(context.Background(), cliente.UserID)
	assert.Len(t, orders, 1, "la solicitud nunca termina con dos órdenes")

	// La propuesta perdedora sigue Pending y la solicitud avanzó una sola vez.
	aceptadas := 0
	for _, id := range []int64{primera.ProposalID, segunda.ProposalID} {
		got, _ := f.proposals.GetByID(context.Background(), id)
		if got.Status == entity.ProposalStatusAccepted {
			aceptadas++
		}
	}
	assert.Equal(t, 1, aceptadas)
	gotReq, _ := f.requests.GetByID(context.Background(), req.RequestID)
	assert.Equal(t, entity.RequestStatusAccepted, gotReq.Status)
}

func TestProposalAccept_DobleAceptacionConflicto(t *testing.T) {
	f := newProposalFixture(t)
	req := f.solicitudDe(t, cliente)
	primera := f.propuestaSobre(t, req.RequestID)
	segunda := f.propuestaSobre(t, req.RequestID)

	_, err := f.uc.Accept(context.Background(), cliente, primera.ProposalID)
	require.NoError(t, err)

	// Re-aceptar la misma propuesta y aceptar otra sobre la solicitud ya
	// aceptada fallan igual.
	_, err = f.uc.Accept(context.Background(), cliente, primera.ProposalID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = f.uc.Accept(context.Background(), cliente, segunda.ProposalID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Solo se creó una orden.
	orders, _ := f.orders.ListByUser(context.Background(), cliente.UserID)
	assert.Len(t, orders, 1)
}
