package payment

import (
	"time"

	"github.com/buckery/backend/internal/models"

	"gorm.io/datatypes"
)

// Payments serialize through one of two explicit projections picked by a
// staff check: the owner view, and an admin view that adds the owning user
// id and the internal notes.

type OwnerView struct {
	ID            uint                 `json:"id"`
	OrderNumber   string               `json:"order_number"`
	CustomerName  string               `json:"customer_name"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	Address       string               `json:"address"`
	Items         datatypes.JSON       `json:"items"`
	Total         float64              `json:"total"`
	PaymentMethod string               `json:"payment_method"`
	PaymentProof  string               `json:"payment_proof,omitempty"`
	Status        models.PaymentStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type AdminView struct {
	OwnerView
	UserID uint   `json:"user_id"`
	Notes  string `json:"notes,omitempty"`
}

func ownerView(p *models.Payment) OwnerView {
	return OwnerView{
		ID:            p.ID,
		OrderNumber:   p.OrderNumber,
		CustomerName:  p.CustomerName,
		Phone:         p.Phone,
		Email:         p.Email,
		Address:       p.Address,
		Items:         p.Items,
		Total:         p.Total,
		PaymentMethod: p.PaymentMethod,
		PaymentProof:  p.PaymentProof,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func adminView(p *models.Payment) AdminView {
	return AdminView{
		OwnerView: ownerView(p),
		UserID:    p.UserID,
		Notes:     p.Notes,
	}
}

func ViewFor(caller *models.User, p *models.Payment) interface{} {
	if caller.HasStaffAccess() {
		return adminView(p)
	}
	return ownerView(p)
}

func ViewsFor(caller *models.User, payments []models.Payment) []interface{} {
	views := make([]interface{}, 0, len(payments))
	for i := range payments {
		views = append(views, ViewFor(caller, &payments[i]))
	}
	return views
}
