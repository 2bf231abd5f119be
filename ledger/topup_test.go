package ledger

import (
	"errors"
	"testing"

	"investmate/models"

	"github.com/DATA-DOG/go-sqlmock"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockLedger(t *testing.T) (*Ledger, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return New(db), mock
}

func TestTopUp_CreditsBalanceAndAppendsEntry(t *testing.T) {
	l, mock := newMockLedger(t)

	// 150,000 wallet topped up by 100,000 must land at 250,000 with a single
	// positive topup entry.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(1, 150000.0))
	mock.ExpectExec("UPDATE `users` SET").
		WithArgs(250000.0, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	trx, err := l.TopUp(1, 100000)
	if err != nil {
		t.Fatalf("TopUp: %v", err)
	}
	if trx.Type != models.TxTopup {
		t.Errorf("expected type %s, got %s", models.TxTopup, trx.Type)
	}
	if trx.Amount != 100000 {
		t.Errorf("expected amount 100000, got %v", trx.Amount)
	}
	if trx.UserID != 1 {
		t.Errorf("expected user id 1, got %d", trx.UserID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTopUp_UnknownUserRollsBack(t *testing.T) {
	l, mock := newMockLedger(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}))
	mock.ExpectRollback()

	if _, err := l.TopUp(99, 100000); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
