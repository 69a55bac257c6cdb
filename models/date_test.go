package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "iso day", in: "2025-01-10", want: NewDate(2025, time.January, 10)},
		{name: "single digit month", in: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{name: "timestamp truncated", in: "2025-03-04T23:10:00Z", want: NewDate(2025, time.March, 4)},
		{name: "garbage", in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		On     Date  `json:"on"`
		Latest *Date `json:"latest"`
	}

	in := payload{On: MustParseDate("2025-01-10")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2025-01-10","latest":null}`, string(data))

	var out payload
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.On.Equal(in.On))
	assert.Nil(t, out.Latest)
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-12-31"))
	assert.Equal(t, "2024-12-31", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 2, 29, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestMaxDate(t *testing.T) {
	assert.Nil(t, MaxDate())
	assert.Nil(t, MaxDate(Date{}))

	got := MaxDate(MustParseDate("2025-01-10"), Date{}, MustParseDate("2025-02-01"), MustParseDate("2024-12-01"))
	require.NotNil(t, got)
	assert.Equal(t, "2025-02-01", got.String())
}

func TestSyncAccount_CountFallsBackToTransactions(t *testing.T) {
	acc := SyncAccount{Transactions: []SyncTransaction{
		{Date: MustParseDate("2025-01-01")},
		{Date: MustParseDate("2025-01-05")},
	}}

	assert.Equal(t, 2, acc.Count())
	require.NotNil(t, acc.LatestDate())
	assert.Equal(t, "2025-01-05", acc.LatestDate().String())

	acc.TransactionCount = 7
	assert.Equal(t, 7, acc.Count())
}

func TestSyncExecuteRequest_IsConfirmed(t *testing.T) {
	var req SyncExecuteRequest
	assert.False(t, req.IsConfirmed())

	no := false
	req.Confirmed = &no
	assert.False(t, req.IsConfirmed())

	yes := true
	req.Confirmed = &yes
	assert.True(t, req.IsConfirmed())
}
