package hr

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayslip_ReplaceItems(t *testing.T) {
	p, err := NewPayslip(uuid.New(), "PS-2025-06", uuid.New(), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	p.ReplaceItems([]PayItem{
		NewPayItem(p.ID, "Basic pay", decimal.NewFromInt(3000)),
		NewPayItem(p.ID, "Transport allowance", decimal.NewFromInt(150)),
		NewPayItem(p.ID, "CPF deduction", decimal.NewFromInt(-600)),
	})

	assert.Equal(t, "2550.00", p.TotalAmount.StringFixed(2))
	require.Len(t, p.Items, 3)
	for _, item := range p.Items {
		assert.Equal(t, p.ID, item.PayslipID)
	}

	// replacing recomputes from scratch
	p.ReplaceItems([]PayItem{NewPayItem(p.ID, "Basic pay", decimal.NewFromInt(3200))})
	assert.Equal(t, "3200.00", p.TotalAmount.StringFixed(2))
}

func TestPayslip_Status(t *testing.T) {
	p, err := NewPayslip(uuid.New(), "PS-001", uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, PayslipStatusDraft, p.Status)

	require.NoError(t, p.SetStatus(PayslipStatusPaid))
	assert.Error(t, p.SetStatus(PayslipStatus("NOPE")))
}

func TestValidateResumeFilename(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"cv.doc", true},
		{"cv.docx", true},
		{"script.exe", false},
		{"archive.zip", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			err := ValidateResumeFilename(tt.filename)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
