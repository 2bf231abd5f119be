package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"investmate/utils"

	"github.com/DATA-DOG/go-sqlmock"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockController(t *testing.T) (*Controller, sqlmock.Sqlmock) {
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
	return NewController(db), mock
}

func authedRequest(method, target string, userID uint) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), utils.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestTransactionHistory_NewestFirst(t *testing.T) {
	c, mock := newMockController(t)

	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
	}

	mock.ExpectQuery("SELECT count(.+) FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	// The ordering clause is part of the expectation; a query without it fails.
	mock.ExpectQuery("SELECT (.+) FROM `transactions` WHERE user_id = \\?(.+)ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "order_id", "description", "created_at"}).
			AddRow(3, 1, "payout", 55000.0, "IVM-3", "Pencairan investasi", day(10)).
			AddRow(2, 1, "investment", -50000.0, "IVM-2", "Investasi", day(5)).
			AddRow(1, 1, "topup", 100000.0, "IVM-1", "Top up saldo", day(1)))

	req := authedRequest("GET", "http://example.local/v1/users/transactions", 1)
	rec := httptest.NewRecorder()
	c.TransactionHistoryHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Data []struct {
				ID        uint    `json:"id"`
				Type      string  `json:"type"`
				Amount    float64 `json:"amount"`
				CreatedAt string  `json:"created_at"`
			} `json:"data"`
			Pagination struct {
				TotalRows int64 `json:"total_rows"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success response")
	}
	if len(resp.Data.Data) != 3 || resp.Data.Pagination.TotalRows != 3 {
		t.Fatalf("expected 3 entries, got %d (total %d)", len(resp.Data.Data), resp.Data.Pagination.TotalRows)
	}

	prev := time.Time{}
	for i, item := range resp.Data.Data {
		ts, err := time.Parse(time.RFC3339, item.CreatedAt)
		if err != nil {
			t.Fatalf("entry %d: bad created_at %q: %v", i, item.CreatedAt, err)
		}
		if i > 0 && ts.After(prev) {
			t.Fatalf("entry %d (%s) is newer than entry %d (%s)", i, ts, i-1, prev)
		}
		prev = ts
	}
	if resp.Data.Data[0].Type != "payout" || resp.Data.Data[2].Type != "topup" {
		t.Errorf("unexpected order: %+v", resp.Data.Data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
