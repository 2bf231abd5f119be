package ledger

import (
	"errors"
	"math"
	"testing"
	"time"

	"investmate/models"
)

func sampleProject() *models.Project {
	return &models.Project{
		Name:          "Green Energy Solar Farm",
		APY:           12.5,
		Tenor:         12,
		TenorType:     models.TenorMonths,
		MinInvestment: 1000000,
		MaxInvestment: 50000000,
		TargetAmount:  500000000,
		CurrentAmount: 350000000,
		Status:        models.ProjectOpen,
	}
}

func TestValidatePlacement_Accepts(t *testing.T) {
	p := sampleProject()
	if err := validatePlacement(p, 100000000, 40000000); err != nil {
		t.Fatalf("expected placement to pass, got %v", err)
	}
}

func TestValidatePlacement_RejectsNonOpenProjects(t *testing.T) {
	for _, status := range []string{
		models.ProjectDraft,
		models.ProjectFunded,
		models.ProjectActive,
		models.ProjectCompleted,
	} {
		p := sampleProject()
		p.Status = status
		if err := validatePlacement(p, 100000000, 40000000); !errors.Is(err, ErrProjectNotOpen) {
			t.Errorf("status %s: expected ErrProjectNotOpen, got %v", status, err)
		}
	}
}

func TestValidatePlacement_BelowMinimum(t *testing.T) {
	p := sampleProject()
	if err := validatePlacement(p, 100000000, 500000); !errors.Is(err, ErrAmountOutOfBounds) {
		t.Fatalf("expected ErrAmountOutOfBounds, got %v", err)
	}
}

func TestValidatePlacement_AboveMaximum(t *testing.T) {
	p := sampleProject()
	if err := validatePlacement(p, 200000000, 60000000); !errors.Is(err, ErrAmountOutOfBounds) {
		t.Fatalf("expected ErrAmountOutOfBounds, got %v", err)
	}
}

func TestValidatePlacement_QuotaExceeded(t *testing.T) {
	p := sampleProject()
	// 350M funded against a 500M target leaves 150M of quota.
	p.MaxInvestment = 200000000
	if err := validatePlacement(p, 300000000, 160000000); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestValidatePlacement_InsufficientBalance(t *testing.T) {
	p := sampleProject()
	if err := validatePlacement(p, 30000000, 40000000); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestValidatePlacement_BoundsCheckedBeforeBalance(t *testing.T) {
	p := sampleProject()
	// Amount fails both checks; the bounds error wins.
	if err := validatePlacement(p, 0, 500000); !errors.Is(err, ErrAmountOutOfBounds) {
		t.Fatalf("expected ErrAmountOutOfBounds, got %v", err)
	}
}

func TestValidatePlacement_ExactRemainingQuota(t *testing.T) {
	p := sampleProject()
	if err := validatePlacement(p, 200000000, 50000000); err != nil {
		t.Fatalf("expected exact-quota placement to pass, got %v", err)
	}
}

func TestTenorMonths(t *testing.T) {
	cases := []struct {
		tenor     int
		tenorType string
		want      float64
	}{
		{12, models.TenorMonths, 12},
		{18, models.TenorMonths, 18},
		{30, models.TenorDays, 1},
		{45, models.TenorDays, 1.5},
		{90, models.TenorDays, 3},
	}
	for _, c := range cases {
		if got := TenorMonths(c.tenor, c.tenorType); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("TenorMonths(%d, %s) = %v, want %v", c.tenor, c.tenorType, got, c.want)
		}
	}
}

func TestExpectedReturn(t *testing.T) {
	cases := []struct {
		amount    float64
		apy       float64
		tenor     int
		tenorType string
		want      float64
	}{
		// 40M at 12.5% APY over exactly one year.
		{40000000, 12.5, 12, models.TenorMonths, 5000000},
		// 10M at 18% over 18 months.
		{10000000, 18, 18, models.TenorMonths, 2700000},
		// 1M at 12% over 30 days (one month).
		{1000000, 12, 30, models.TenorDays, 10000},
	}
	for _, c := range cases {
		got := ExpectedReturn(c.amount, c.apy, c.tenor, c.tenorType)
		if math.Abs(got-c.want) > 0.01 {
			t.Errorf("ExpectedReturn(%v, %v, %d, %s) = %v, want %v",
				c.amount, c.apy, c.tenor, c.tenorType, got, c.want)
		}
	}
}

func TestPayoutDate(t *testing.T) {
	from := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if got := PayoutDate(from, 45, models.TenorDays); !got.Equal(from.Add(45 * 24 * time.Hour)) {
		t.Errorf("PayoutDate days = %v", got)
	}
	// Month tenors count 30 days per month.
	if got := PayoutDate(from, 12, models.TenorMonths); !got.Equal(from.Add(360 * 24 * time.Hour)) {
		t.Errorf("PayoutDate months = %v", got)
	}
}
