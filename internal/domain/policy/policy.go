// Package policy centraliza todas las reglas de autorización en una tabla
// declarativa (operación → roles permitidos + predicado de propiedad), en vez
// de comparaciones de rol dispersas por los handlers.
package policy

import (
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

// Operation identifica una operación autorizable del API.
type Operation string

const (
	OpCreateRequest       Operation = "request.create"
	OpListOwnRequests     Operation = "request.list_own"
	OpUpdateRequestStatus Operation = "request.update_status"
	OpDeleteRequest       Operation = "request.delete"

	OpCreateProposal Operation = "proposal.create"
	OpListProposals  Operation = "proposal.list"
	OpAcceptProposal Operation = "proposal.accept"

	OpListDesigners Operation = "designer.list"
	OpCreateReview  Operation = "review.create"
	OpListReviews   Operation = "review.list"

	OpListOwnOrders Operation = "order.list_own"
	OpRecordPayment Operation = "order.record_payment"
	OpOrderReceipt  Operation = "order.receipt"

	OpAddWishlist       Operation = "wishlist.add"
	OpCreateBlogPost    Operation = "blog.create"
	OpListNotifications Operation = "notification.list"
)

// Rule describe quién puede ejecutar una operación:
//   - Any: cualquier principal autenticado.
//   - Roles: roles permitidos sin condición de propiedad.
//   - Owner: el dueño del recurso referido, sea cual sea su rol.
type Rule struct {
	Any   bool
	Roles []entity.Role
	Owner bool
}

var table = map[Operation]Rule{
	OpCreateRequest:       {Roles: []entity.Role{entity.RoleCustomer}},
	OpListOwnRequests:     {Any: true},
	OpUpdateRequestStatus: {Roles: []entity.Role{entity.RoleAdmin, entity.RoleDesigner}},
	OpDeleteRequest:       {Roles: []entity.Role{entity.RoleAdmin}, Owner: true},

	OpCreateProposal: {Roles: []entity.Role{entity.RoleDesigner}},
	OpListProposals:  {Roles: []entity.Role{entity.RoleAdmin}, Owner: true},
	OpAcceptProposal: {Roles: []entity.Role{entity.RoleAdmin}, Owner: true},

	OpListDesigners: {Any: true},
	OpCreateReview:  {Roles: []entity.Role{entity.RoleCustomer}},
	OpListReviews:   {Any: true},

	OpListOwnOrders: {Any: true},
	OpRecordPayment: {Roles: []entity.Role{entity.RoleAdmin}, Owner: true},
	OpOrderReceipt:  {Roles: []entity.Role{entity.RoleAdmin}, Owner: true},

	OpAddWishlist:       {Roles: []entity.Role{entity.RoleCustomer}},
	OpCreateBlogPost:    {Roles: []entity.Role{entity.RoleDesigner}},
	OpListNotifications: {Owner: true},
}

// Allow evalúa la tabla para (op, rol, propietario). Retorna domain.ErrForbidden
// si la operación no está permitida; error nulo si lo está.
func Allow(op Operation, role entity.Role, owner bool) error {
	rule, ok := table[op]
	if !ok {
		return domain.ErrForbidden
	}
	if rule.Any {
		return nil
	}
	if rule.Owner && owner {
		return nil
	}
	for _, r := range rule.Roles {
		if r == role {
			return nil
		}
	}
	return domain.ErrForbidden
}

// RolesFor expone los roles de la tabla para una operación, para que el router
// pueda montar middlewares RBAC sin duplicar la regla. Nil significa que la
// operación no se decide solo por rol (Any u Owner).
func RolesFor(op Operation) []entity.Role {
	rule, ok := table[op]
	if !ok || rule.Any || rule.Owner {
		return nil
	}
	return rule.Roles
}
