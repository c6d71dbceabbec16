package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

var (
	cliente     = entity.Principal{UserID: 1, Role: entity.RoleCustomer}
	otroCliente = entity.Principal{UserID: 2, Role: entity.RoleCustomer}
	disenador   = entity.Principal{UserID: 3, Role: entity.RoleDesigner, MerchantID: 1}
	admin       = entity.Principal{UserID: 9, Role: entity.RoleAdmin}
)

func newRequestUC() (*usecase.RequestUseCase, *fakeRequestRepo, *fakeNotificationRepo) {
	repo := newFakeRequestRepo()
	notifications := newFakeNotificationRepo()
	return usecase.NewRequestUseCase(repo, testNotifier(notifications, nil)), repo, notifications
}

func crearSolicitud(t *testing.T, uc *usecase.RequestUseCase, p entity.Principal) *dto.RequestResponse {
	t.Helper()
	req, err := uc.Create(context.Background(), p, dto.CreateRequestRequest{
		FabricType: "Lino",
		Size:       "M",
		Style:      "Casual",
	})
	require.NoError(t, err)
	return req
}

func TestRequestCreate_ClienteCreaEnPending(t *testing.T) {
	uc, _, _ := newRequestUC()

	req := crearSolicitud(t, uc, cliente)

	assert.Equal(t, entity.RequestStatusPending, req.Status)
	assert.Equal(t, cliente.UserID, req.UserID)
	assert.NotZero(t, req.RequestID)
}

func TestRequestCreate_SoloClientes(t *testing.T) {
	uc, _, _ := newRequestUC()

	in := dto.CreateRequestRequest{FabricType: "Lino", Size: "M"}
	_, err := uc.Create(context.Background(), disenador, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(context.Background(), admin, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRequestCreate_CamposRequeridos(t *testing.T) {
	uc, _, _ := newRequestUC()

	_, err := uc.Create(context.Background(), cliente, dto.CreateRequestRequest{Size: "M"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), cliente, dto.CreateRequestRequest{FabricType: "Lino"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRequestListMine_SoloLasPropias(t *testing.T) {
	uc, _, _ := newRequestUC()

	crearSolicitud(t, uc, cliente)
	crearSolicitud(t, uc, cliente)
	crearSolicitud(t, uc, otroCliente)

	mias, err := uc.ListMine(context.Background(), cliente)
	require.NoError(t, err)
	assert.Len(t, mias, 2)
	for _, r := range mias {
		assert.Equal(t, cliente.UserID, r.UserID, "nunca debe filtrarse una solicitud ajena")
	}

	ajenas, err := uc.ListMine(context.Background(), otroCliente)
	require.NoError(t, err)
	assert.Len(t, ajenas, 1)
}

func TestRequestUpdateStatus_AdminAvanzaYNotifica(t *testing.T) {
	uc, _, notifications := newRequestUC()
	req := crearSolicitud(t, uc, cliente)

	updated, err := uc.UpdateStatus(context.Background(), admin, req.RequestID, entity.RequestStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, updated.Status)

	// El dueño recibe la notificación del cambio.
	avisos := notifications.forUser(cliente.UserID)
	require.Len(t, avisos, 1)
	assert.Equal(t, entity.NotificationOrderUpdate, avisos[0].Type)
}

func TestRequestUpdateStatus_ClienteProhibido(t *testing.T) {
	uc, _, _ := newRequestUC()
	req := crearSolicitud(t, uc, cliente)

	_, err := uc.UpdateStatus(context.Background(), cliente, req.RequestID, entity.RequestStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRequestUpdateStatus_NoExiste(t *testing.T) {
	uc, _, _ := newRequestUC()

	_, err := uc.UpdateStatus(context.Background(), admin, 999, entity.RequestStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _, _ := newRequestUC()
	req := crearSolicitud(t, uc, cliente)

	_, err := uc.UpdateStatus(context.Background(), admin, req.RequestID, "Cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRequestUpdateStatus_TransicionesInvalidas(t *testing.T) {
	uc, _, _ := newRequestUC()
	req := crearSolicitud(t, uc, cliente)

	// Salto Pending → Completed prohibido.
	_, err := uc.UpdateStatus(context.Background(), admin, req.RequestID, entity.RequestStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Avance válido en dos pasos.
	_, err = uc.UpdateStatus(context.Background(), admin, req.RequestID, entity.RequestStatusAccepted)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), admin, req.RequestID, entity.RequestStatusCompleted)
	require.NoError(t, err)

	// Completed es terminal.
	_, err = uc.UpdateStatus(context.Background(), admin, req.RequestID, entity.RequestStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRequestDelete_DuenoYAdmin(t *testing.T) {
	uc, repo, _ := newRequestUC()
	propia := crearSolicitud(t, uc, cliente)
	ajena := crearSolicitud(t, uc, otroCliente)

	// El dueño elimina la suya.
	require.NoError(t, uc.Delete(context.Background(), cliente, propia.RequestID))
	got, _ := repo.GetByID(context.Background(), propia.RequestID)
	assert.Nil(t, got)

	// Un tercero no puede eliminar la ajena; un admin sí.
	err := uc.Delete(context.Background(), cliente, ajena.RequestID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	require.NoError(t, uc.Delete(context.Background(), admin, ajena.RequestID))
}

func TestRequestDelete_NoExiste(t *testing.T) {
	uc, _, _ := newRequestUC()

	err := uc.Delete(context.Background(), admin, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
