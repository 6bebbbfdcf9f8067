package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	testCases := []struct {
		name      string
		statement []Transaction
		want      float64
	}{
		{
			name:      "EmptyStatement",
			statement: []Transaction{},
			want:      0,
		},
		{
			name: "CreditsOnly",
			statement: []Transaction{
				{Amount: 100, Type: TransactionTypeCredit},
				{Amount: 50.5, Type: TransactionTypeCredit},
			},
			want: 150.5,
		},
		{
			name: "CreditsAndDebits",
			statement: []Transaction{
				{Amount: 100, Type: TransactionTypeCredit},
				{Amount: 30, Type: TransactionTypeDebit},
				{Amount: 20, Type: TransactionTypeCredit},
				{Amount: 40, Type: TransactionTypeDebit},
			},
			want: 50,
		},
		{
			name: "ExactDrain",
			statement: []Transaction{
				{Amount: 0.1, Type: TransactionTypeCredit},
				{Amount: 0.2, Type: TransactionTypeCredit},
				{Amount: 0.3, Type: TransactionTypeDebit},
			},
			want: 0,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Balance(tc.statement))
		})
	}
}

func TestFilterByDay(t *testing.T) {
	day1 := time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)

	statement := []Transaction{
		{Amount: 10, Type: TransactionTypeCredit, CreatedAt: day1.Add(9 * time.Hour)},
		{Amount: 20, Type: TransactionTypeDebit, CreatedAt: day1.Add(23 * time.Hour)},
		{Amount: 30, Type: TransactionTypeCredit, CreatedAt: day2.Add(time.Minute)},
	}

	got := FilterByDay(statement, day1)

	want := statement[:2]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterByDay mismatch (-want +got):\n%s", diff)
	}

	empty := FilterByDay(statement, day2.AddDate(0, 0, 1))
	require.Empty(t, empty)
	require.NotNil(t, empty)
}
