package main

import (
	"log"
	"time"

	"trustchain-backend/internal/config"
	borrowerDomain "trustchain-backend/internal/domain/borrower"
	regionDomain "trustchain-backend/internal/domain/region"
	"trustchain-backend/internal/infrastructure/db"
	"trustchain-backend/pkg/id"

	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}

	if err := gdb.AutoMigrate(
		&regionDomain.Region{},
		&borrowerDomain.Borrower{},
		&borrowerDomain.Transaction{},
		&borrowerDomain.Document{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Idempotent: skip when regions already exist.
	var existing int64
	if err := gdb.Model(&regionDomain.Region{}).Count(&existing).Error; err != nil {
		log.Fatalf("count regions: %v", err)
	}
	if existing > 0 {
		log.Println("database already seeded, skipping")
		return
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		regions := []regionDomain.Region{
			{Name: "Rwanda", Latitude: f64p(-1.9403), Longitude: f64p(29.8739)},
			{Name: "Kenya", Latitude: f64p(-0.0236), Longitude: f64p(37.9062)},
			{Name: "Uganda", Latitude: f64p(1.3733), Longitude: f64p(32.2903)},
		}
		if err := tx.Create(&regions).Error; err != nil {
			return err
		}

		borrowers := []borrowerDomain.Borrower{
			{
				FirstName: "Jean", LastName: "Uwimana",
				Email: strp("jean.uwimana@example.com"), Phone: strp("+250788123456"),
				LoanAmount: f64p(5000), LoanDate: date(2024, time.January, 15),
				Decision: borrowerDomain.DecisionApproved, RegionID: &regions[0].ID,
			},
			{
				FirstName: "Grace", LastName: "Mutesi",
				Email: strp("grace.mutesi@example.com"), Phone: strp("+250788234567"),
				LoanAmount: f64p(3000), LoanDate: date(2024, time.February, 10),
				Decision: borrowerDomain.DecisionPending, RegionID: &regions[0].ID,
			},
			{
				FirstName: "Patrick", LastName: "Nkunda",
				Email: strp("patrick.nkunda@example.com"), Phone: strp("+250788345678"),
				LoanAmount: f64p(7500), LoanDate: date(2024, time.January, 20),
				Decision: borrowerDomain.DecisionDenied, RegionID: &regions[0].ID,
			},
		}
		if err := tx.Create(&borrowers).Error; err != nil {
			return err
		}

		txns := []borrowerDomain.Transaction{
			{BorrowerID: borrowers[0].ID, TransactionDate: date(2024, time.February, 1), Amount: 450, Type: "repayment"},
			{BorrowerID: borrowers[0].ID, TransactionDate: date(2024, time.March, 1), Amount: 450, Type: "repayment"},
		}
		if err := tx.Create(&txns).Error; err != nil {
			return err
		}

		docs := []borrowerDomain.Document{
			{DocumentID: id.NewID32(), BorrowerID: borrowers[0].ID, Name: "national-id.pdf", Type: "identity", UploadDate: date(2024, time.January, 14)},
			{DocumentID: id.NewID32(), BorrowerID: borrowers[1].ID, Name: "payslip-jan.pdf", Type: "income", UploadDate: date(2024, time.February, 9)},
		}
		return tx.Create(&docs).Error
	})
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("database seeded: 3 regions, 3 borrowers, 2 transactions, 2 documents")
}
