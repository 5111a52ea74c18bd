package model

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyledger/tally/internal/common"
	"github.com/tallyledger/tally/internal/date"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "lowercase income", input: "income", want: KindIncome},
		{name: "uppercase expense", input: "EXPENSE", want: KindExpense},
		{name: "mixed case", input: "Income", want: KindIncome},
		{name: "surrounding whitespace rejected", input: " expense ", wantErr: true},
		{name: "unknown kind", input: "transfer", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestEncodeCSV(t *testing.T) {
	txn := Transaction{
		Date:     date.MustParse("2024-07-15"),
		Kind:     KindIncome,
		Category: "Salary",
		Amount:   decimal.RequireFromString("5000.5"),
		Note:     "July salary",
	}

	assert.Equal(t, "2024-07-15,INCOME,Salary,5000.5,July salary", txn.EncodeCSV())
}

func TestEncodeCSVCanonicalAmount(t *testing.T) {
	// Amounts are written in canonical decimal form: trailing fractional
	// zeros are trimmed, value is unchanged.
	txn := Transaction{
		Date:     date.MustParse("2024-07-15"),
		Kind:     KindIncome,
		Category: "Salary",
		Amount:   decimal.RequireFromString("5000.00"),
	}

	assert.Equal(t, "2024-07-15,INCOME,Salary,5000,", txn.EncodeCSV())
}

func TestEncodeCSVStripsNoteCommas(t *testing.T) {
	txn := Transaction{
		Date:     date.MustParse("2024-07-20"),
		Kind:     KindExpense,
		Category: "Food",
		Amount:   decimal.RequireFromString("42.50"),
		Note:     "bread, cheese, wine",
	}

	line := txn.EncodeCSV()
	assert.Equal(t, "2024-07-20,EXPENSE,Food,42.5,bread  cheese  wine", line)

	decoded, err := DecodeCSV(line)
	require.NoError(t, err)
	assert.NotContains(t, decoded.Note, ",")
}

func TestDecodeCSV(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Transaction
		wantErr bool
	}{
		{
			name: "full record",
			line: "2024-07-15,INCOME,Salary,5000.00,July salary",
			want: Transaction{
				Date:     date.MustParse("2024-07-15"),
				Kind:     KindIncome,
				Category: "Salary",
				Amount:   decimal.RequireFromString("5000.00"),
				Note:     "July salary",
			},
		},
		{
			name: "missing note defaults to empty",
			line: "2024-07-20,EXPENSE,Food,42.50",
			want: Transaction{
				Date:     date.MustParse("2024-07-20"),
				Kind:     KindExpense,
				Category: "Food",
				Amount:   decimal.RequireFromString("42.50"),
			},
		},
		{
			name: "note absorbs extra commas",
			line: "2024-07-20,EXPENSE,Food,42.50,bread, cheese, wine",
			want: Transaction{
				Date:     date.MustParse("2024-07-20"),
				Kind:     KindExpense,
				Category: "Food",
				Amount:   decimal.RequireFromString("42.50"),
				Note:     "bread, cheese, wine",
			},
		},
		{
			name: "lowercase kind accepted",
			line: "2024-07-20,expense,Food,42.50,",
			want: Transaction{
				Date:     date.MustParse("2024-07-20"),
				Kind:     KindExpense,
				Category: "Food",
				Amount:   decimal.RequireFromString("42.50"),
			},
		},
		{
			name: "negative amount accepted",
			line: "2024-07-20,EXPENSE,Refund,-10.00,returned kettle",
			want: Transaction{
				Date:     date.MustParse("2024-07-20"),
				Kind:     KindExpense,
				Category: "Refund",
				Amount:   decimal.RequireFromString("-10.00"),
				Note:     "returned kettle",
			},
		},
		{
			name:    "only three fields",
			line:    "2024-07-15,INCOME,Salary",
			wantErr: true,
		},
		{
			name:    "bad date",
			line:    "2024-07-32,INCOME,Salary,5000.00,x",
			wantErr: true,
		},
		{
			name:    "unknown kind",
			line:    "2024-07-15,TRANSFER,Salary,5000.00,x",
			wantErr: true,
		},
		{
			name:    "unparseable amount",
			line:    "2024-07-15,INCOME,Salary,lots,x",
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := DecodeCSV(tt.line)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrMalformedRecord)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(txn), "decoded %+v, want %+v", txn, tt.want)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Comma-free free text round-trips exactly.
	txns := []Transaction{
		{
			Date:     date.MustParse("2024-07-15"),
			Kind:     KindIncome,
			Category: "Salary",
			Amount:   decimal.RequireFromString("5000.00"),
			Note:     "July salary",
		},
		{
			Date:     date.MustParse("2023-01-02"),
			Kind:     KindExpense,
			Category: "Rent",
			Amount:   decimal.RequireFromString("-900"),
		},
		{
			Date:     date.MustParse("2024-12-31"),
			Kind:     KindExpense,
			Category: "Misc",
			Amount:   decimal.RequireFromString("0.01"),
			Note:     "new year's eve sparklers",
		},
	}

	for _, txn := range txns {
		decoded, err := DecodeCSV(txn.EncodeCSV())
		require.NoError(t, err)
		assert.True(t, txn.Equal(decoded), "round trip of %q", txn.EncodeCSV())
	}
}

func TestDecodeKeepsCategoryVerbatim(t *testing.T) {
	decoded, err := DecodeCSV("2024-07-15,INCOME,  Side Gig ,100,")
	require.NoError(t, err)
	assert.Equal(t, "  Side Gig ", decoded.Category)
}

func TestEncodeNoGrouping(t *testing.T) {
	txn := Transaction{
		Date:     date.MustParse("2024-07-15"),
		Kind:     KindIncome,
		Category: "Bonus",
		Amount:   decimal.RequireFromString("1234567.89"),
	}

	line := txn.EncodeCSV()
	assert.Equal(t, 4, strings.Count(line, ","))
	assert.Contains(t, line, "1234567.89")
}
