package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagbot/internal/domain"
	"bagbot/internal/errors"
	"bagbot/internal/testutil"
)

// Unit Tests

func TestNewMySQLArchiveRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLArchiveRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func confirmedOrder() domain.Order {
	confirmedAt := time.Date(2026, 8, 28, 10, 15, 0, 0, time.UTC)
	return domain.Order{
		OrderID: "PB202608281000",
		UserID:  "U123",
		Status:  domain.StatusConfirmed,
		Step:    domain.StepCompleted,
		CompanyInfo: domain.CompanyInfo{
			Name:    "ACME",
			Contact: "Lee",
			Phone:   "02-1111-2222",
			Invoice: "需要統一發票",
		},
		ProductSelection: domain.ProductSelection{
			SizeName:      "中型 (30x40cm)",
			ThicknessName: "厚型 (0.08mm)",
			MaterialName:  "PE塑膠",
			ColorName:     "白色",
			Quantity:      12000,
		},
		CustomRequirements: "印刷Logo",
		DeliveryDate:       "2026-09-04",
		TotalPrice:         30600,
		ConfirmedAt:        &confirmedAt,
	}
}

func TestArchiveRepository_OrderConfirmed_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLArchiveRepository(db)

	err := repo.OrderConfirmed(context.Background(), confirmedOrder())
	require.NoError(t, err)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM ConfirmedOrders WHERE orderNumber = ?`, "PB202608281000").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestArchiveRepository_FindByOrderNumber_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLArchiveRepository(db)
	require.NoError(t, repo.OrderConfirmed(context.Background(), confirmedOrder()))

	got, err := repo.FindByOrderNumber(context.Background(), "PB202608281000")
	require.NoError(t, err)
	assert.Equal(t, "U123", got.UserID)
	assert.Equal(t, "ACME", got.CompanyInfo.Name)
	assert.Equal(t, 12000, got.ProductSelection.Quantity)
	assert.Equal(t, "2026-09-04", got.DeliveryDate)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	require.NotNil(t, got.ConfirmedAt)
}

func TestArchiveRepository_FindByOrderNumber_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLArchiveRepository(db)

	_, err := repo.FindByOrderNumber(context.Background(), "PB000000000000")
	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
