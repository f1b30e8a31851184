package mysql

import (
	"testing"
	"time"

	borrowerDomain "trustchain-backend/internal/domain/borrower"
	regionDomain "trustchain-backend/internal/domain/region"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// entities avoid MySQL-only column types so the domain models migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&regionDomain.Region{},
		&borrowerDomain.Borrower{},
		&borrowerDomain.Transaction{},
		&borrowerDomain.Document{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }
func intp(n int) *int         { return &n }

func riskp(r borrowerDomain.RiskLevel) *borrowerDomain.RiskLevel { return &r }

func testDate() time.Time {
	return time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
}

func makeBorrower(first, last string, regionID *uint64) *borrowerDomain.Borrower {
	return &borrowerDomain.Borrower{
		FirstName:  first,
		LastName:   last,
		LoanAmount: f64p(5000),
		LoanDate:   testDate(),
		Decision:   borrowerDomain.DecisionPending,
		RegionID:   regionID,
	}
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}
