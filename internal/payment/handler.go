package payment

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"
	"github.com/buckery/backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
)

var policy = bluemonday.UGCPolicy()

const maxProofSize = 5 * 1024 * 1024

type createRequest struct {
	OrderNumber   string          `json:"order_number" form:"order_number"`
	Status        string          `json:"status" form:"status"`
	UserID        uint            `json:"user" form:"user"`
	CustomerName  string          `json:"customer_name" form:"customer_name"`
	Phone         string          `json:"phone" form:"phone"`
	Email         string          `json:"email" form:"email"`
	Address       string          `json:"address" form:"address"`
	Items         json.RawMessage `json:"items" form:"-"`
	ItemsForm     string          `form:"items"`
	Total         float64         `json:"total"`
	TotalForm     string          `form:"total"`
	PaymentMethod string          `json:"payment_method" form:"payment_method"`
	Notes         string          `json:"notes" form:"notes"`
}

func CreatePaymentHandler(c *fiber.Ctx) error {
	caller := c.Locals("user").(*models.User)

	var body createRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	// The order number is server-generated; a client-supplied one is an
	// error rather than being silently dropped.
	if body.OrderNumber != "" {
		return response.BadRequest(c, "order_number cannot be supplied by the client", nil)
	}

	items := body.Items
	if len(items) == 0 && body.ItemsForm != "" {
		items = json.RawMessage(body.ItemsForm)
	}

	total := body.Total
	if total == 0 && body.TotalForm != "" {
		parsed, err := strconv.ParseFloat(body.TotalForm, 64)
		if err != nil {
			return response.ValidationError(c, map[string]string{"total": "total must be a number"})
		}
		total = parsed
	}

	fieldErrors := map[string]string{}
	if body.CustomerName == "" {
		fieldErrors["customer_name"] = "customer_name is required"
	}
	if body.Phone == "" {
		fieldErrors["phone"] = "phone is required"
	}
	if body.Email == "" {
		fieldErrors["email"] = "email is required"
	}
	if body.Address == "" {
		fieldErrors["address"] = "address is required"
	}
	if len(items) == 0 || !json.Valid(items) {
		fieldErrors["items"] = "items must be a valid JSON document"
	}
	if total <= 0 {
		fieldErrors["total"] = "total must be greater than zero"
	}
	if body.PaymentMethod != models.PaymentMethodBank && body.PaymentMethod != models.PaymentMethodQRIS {
		fieldErrors["payment_method"] = "payment_method must be bank or qris"
	}
	if len(fieldErrors) > 0 {
		return response.ValidationError(c, fieldErrors)
	}

	proofURL := ""
	if file, err := c.FormFile("payment_proof"); err == nil {
		contentType := file.Header.Get("Content-Type")
		if contentType != "image/jpeg" && contentType != "image/png" {
			return response.BadRequest(c, "payment_proof must be a JPG or PNG image", nil)
		}
		if file.Size > maxProofSize {
			return response.BadRequest(c, "payment_proof too large", map[string]interface{}{
				"max_size_mb": maxProofSize / (1024 * 1024),
			})
		}

		proofURL, err = utils.UploadFile(file, utils.FolderProofs)
		if err != nil {
			return response.InternalError(c, err)
		}
	}

	// Status and owner are forced server-side regardless of input.
	p := models.Payment{
		OrderNumber:   GenerateOrderNumber(time.Now()),
		UserID:        caller.ID,
		CustomerName:  policy.Sanitize(body.CustomerName),
		Phone:         body.Phone,
		Email:         body.Email,
		Address:       policy.Sanitize(body.Address),
		Items:         datatypes.JSON(items),
		Total:         total,
		PaymentMethod: body.PaymentMethod,
		PaymentProof:  proofURL,
		Status:        models.PaymentStatusPending,
		Notes:         policy.Sanitize(body.Notes),
	}

	if err := CreatePayment(&p); err != nil {
		if proofURL != "" {
			utils.DeleteFile(proofURL)
		}
		if errors.Is(err, ErrOrderNumberTaken) {
			return response.Conflict(c, "Order number already exists, please retry")
		}
		return response.InternalError(c, err)
	}

	return response.Created(c, ViewFor(caller, &p), "Payment submitted successfully")
}

func ListPaymentsHandler(c *fiber.Ctx) error {
	caller := c.Locals("user").(*models.User)

	payments, err := ListPayments(caller)
	if err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, ViewsFor(caller, payments), "Payments retrieved successfully")
}

func GetPaymentHandler(c *fiber.Ctx) error {
	caller := c.Locals("user").(*models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID", nil)
	}

	p, err := FindVisible(caller, uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.NotFound(c, "Payment")
		}
		return response.InternalError(c, err)
	}

	return response.Success(c, ViewFor(caller, p), "Payment retrieved successfully")
}

// UpdatePaymentHandler lets the owner (or staff) fix contact details and
// notes while the payment is still pending.
func UpdatePaymentHandler(c *fiber.Ctx) error {
	caller := c.Locals("user").(*models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID", nil)
	}

	var body struct {
		CustomerName string `json:"customer_name"`
		Phone        string `json:"phone"`
		Email        string `json:"email"`
		Address      string `json:"address"`
		Notes        string `json:"notes"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	p, err := FindVisible(caller, uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.NotFound(c, "Payment")
		}
		return response.InternalError(c, err)
	}

	if p.Status.IsTerminal() {
		return response.InvalidTransition(c, "Payment can no longer be edited")
	}

	if body.CustomerName != "" {
		p.CustomerName = policy.Sanitize(body.CustomerName)
	}
	if body.Phone != "" {
		p.Phone = body.Phone
	}
	if body.Email != "" {
		p.Email = body.Email
	}
	if body.Address != "" {
		p.Address = policy.Sanitize(body.Address)
	}
	if body.Notes != "" {
		p.Notes = policy.Sanitize(body.Notes)
	}

	if err := database.DB.Save(p).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, ViewFor(caller, p), "Payment updated successfully")
}

// DeletePaymentHandler is an admin-only override, not part of the normal
// payment lifecycle.
func DeletePaymentHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID", nil)
	}

	var p models.Payment
	if err := database.DB.First(&p, id).Error; err != nil {
		return response.NotFound(c, "Payment")
	}

	if err := database.DB.Delete(&p).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.NoContent(c)
}

func ConfirmPaymentHandler(c *fiber.Ctx) error {
	return transition(c, models.PaymentStatusConfirmed)
}

func RejectPaymentHandler(c *fiber.Ctx) error {
	return transition(c, models.PaymentStatusRejected)
}

func transition(c *fiber.Ctx, to models.PaymentStatus) error {
	caller := c.Locals("user").(*models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID", nil)
	}

	p, err := Transition(caller, uint(id), to)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return response.NotFound(c, "Payment")
		case errors.Is(err, ErrInvalidTransition):
			return response.InvalidTransition(c, err.Error())
		default:
			return response.InternalError(c, err)
		}
	}

	message := "Payment confirmed"
	if to == models.PaymentStatusRejected {
		message = "Payment rejected"
	}

	return response.Success(c, ViewFor(caller, p), message)
}

func PaymentStatsHandler(c *fiber.Ctx) error {
	caller := c.Locals("user").(*models.User)

	stats, err := PaymentStats(caller)
	if err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, stats, "Payment stats retrieved successfully")
}
