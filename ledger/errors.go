package ledger

import "errors"

// Placement failures. Each one aborts the commit before any write happens;
// callers map them to 4xx responses.
var (
	ErrProjectNotFound     = errors.New("proyek tidak ditemukan")
	ErrProjectNotOpen      = errors.New("proyek tidak sedang menerima investasi")
	ErrUserNotFound        = errors.New("pengguna tidak ditemukan")
	ErrAmountOutOfBounds   = errors.New("jumlah investasi di luar batas minimum/maksimum proyek")
	ErrQuotaExceeded       = errors.New("jumlah investasi melebihi sisa kuota proyek")
	ErrInsufficientBalance = errors.New("saldo tidak mencukupi")
)
