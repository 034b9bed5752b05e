package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

func setupCounterRepositoryTest(t *testing.T) *GormInvoiceCounterRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.InvoiceCounter{}); err != nil {
		t.Fatalf("migrate counter failed: %v", err)
	}
	return NewGormInvoiceCounterRepository(db)
}

func TestInvoiceCounterNext(t *testing.T) {
	repo := setupCounterRepositoryTest(t)
	if err := repo.Create(&models.InvoiceCounter{Prefix: "NDNH", Value: 41}); err != nil {
		t.Fatalf("create counter failed: %v", err)
	}

	for want := int64(42); want <= 44; want++ {
		got, err := repo.Next("NDNH")
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestInvoiceCounterNextMissingRow(t *testing.T) {
	repo := setupCounterRepositoryTest(t)

	_, err := repo.Next("NDNH")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}
