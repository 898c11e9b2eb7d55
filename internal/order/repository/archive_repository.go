package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bagbot/internal/domain"
	"bagbot/internal/errors"
)

// MySQLArchiveRepository persists confirmed orders for record keeping.
// Draft orders never reach the database; they live only in the in-memory
// store until the customer confirms.
type MySQLArchiveRepository struct {
	db *sql.DB
}

func NewMySQLArchiveRepository(db *sql.DB) *MySQLArchiveRepository {
	return &MySQLArchiveRepository{db: db}
}

// OrderConfirmed archives a confirmed order. It satisfies order.Notifier so
// it can be composed with the logging notifier at startup.
func (r *MySQLArchiveRepository) OrderConfirmed(ctx context.Context, order domain.Order) error {
	query := `
		INSERT INTO ConfirmedOrders (
			orderNumber, userId, companyName, contactName, phone, invoice,
			sizeName, thicknessName, materialName, colorName, quantity,
			customRequirements, deliveryDate, totalPrice, confirmedAt
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		order.OrderID, order.UserID,
		order.CompanyInfo.Name, order.CompanyInfo.Contact,
		order.CompanyInfo.Phone, order.CompanyInfo.Invoice,
		order.ProductSelection.SizeName, order.ProductSelection.ThicknessName,
		order.ProductSelection.MaterialName, order.ProductSelection.ColorName,
		order.ProductSelection.Quantity,
		order.CustomRequirements, order.DeliveryDate,
		order.TotalPrice, order.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("archiving confirmed order: %w", err)
	}

	return nil
}

func (r *MySQLArchiveRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `
		SELECT orderNumber, userId, companyName, contactName, phone, invoice,
		       sizeName, thicknessName, materialName, colorName, quantity,
		       customRequirements, deliveryDate, totalPrice, confirmedAt
		FROM ConfirmedOrders
		WHERE orderNumber = ?
	`

	var order domain.Order
	var confirmedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, orderNumber).Scan(
		&order.OrderID, &order.UserID,
		&order.CompanyInfo.Name, &order.CompanyInfo.Contact,
		&order.CompanyInfo.Phone, &order.CompanyInfo.Invoice,
		&order.ProductSelection.SizeName, &order.ProductSelection.ThicknessName,
		&order.ProductSelection.MaterialName, &order.ProductSelection.ColorName,
		&order.ProductSelection.Quantity,
		&order.CustomRequirements, &order.DeliveryDate,
		&order.TotalPrice, &confirmedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying confirmed order: %w", err)
	}

	if confirmedAt.Valid {
		order.ConfirmedAt = &confirmedAt.Time
	}
	order.Status = domain.StatusConfirmed
	order.Step = domain.StepCompleted
	return &order, nil
}
