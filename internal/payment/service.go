package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("payment not found")
	ErrInvalidTransition = errors.New("payment is no longer pending")
	ErrOrderNumberTaken  = errors.New("order number already exists")
)

// GenerateOrderNumber derives the order number from the creation time.
// Same-second creations can collide; the unique index on order_number turns
// that into a conflict instead of silently reusing the number.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD%d", now.Unix())
}

// scopedQuery restricts payment visibility by role: staff see every payment,
// everyone else only their own. Every read and write path goes through this
// so an invisible payment behaves as nonexistent.
func scopedQuery(db *gorm.DB, caller *models.User) *gorm.DB {
	q := db.Model(&models.Payment{})
	if caller.HasStaffAccess() {
		return q
	}
	return q.Where("user_id = ?", caller.ID)
}

func CreatePayment(p *models.Payment) error {
	if err := database.DB.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrOrderNumberTaken
		}
		return err
	}
	return nil
}

func ListPayments(caller *models.User) ([]models.Payment, error) {
	var payments []models.Payment
	err := scopedQuery(database.DB, caller).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func FindVisible(caller *models.User, id uint) (*models.Payment, error) {
	var p models.Payment
	err := scopedQuery(database.DB, caller).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Transition moves a visible payment from pending to a terminal status. The
// conditional update only matches while status is still pending, so
// concurrent confirm/reject requests produce at most one terminal
// transition; the loser sees zero rows and reports ErrInvalidTransition.
func Transition(caller *models.User, id uint, to models.PaymentStatus) (*models.Payment, error) {
	if !to.IsTerminal() {
		return nil, fmt.Errorf("invalid target status %q", to)
	}

	res := database.DB.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		p, err := FindVisible(caller, id)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: status is %s", ErrInvalidTransition, p.Status)
	}

	return FindVisible(caller, id)
}

type Stats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Rejected  int64 `json:"rejected"`
}

// PaymentStats aggregates over the caller's role-scoped query set.
func PaymentStats(caller *models.User) (*Stats, error) {
	var rows []struct {
		Status models.PaymentStatus
		Count  int64
	}

	err := scopedQuery(database.DB, caller).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.PaymentStatusPending:
			stats.Pending = row.Count
		case models.PaymentStatusConfirmed:
			stats.Confirmed = row.Count
		case models.PaymentStatusRejected:
			stats.Rejected = row.Count
		}
	}

	return stats, nil
}
