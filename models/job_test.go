package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfServiceDecoding(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{"rfc 3339", `"2024-05-01T13:30:00Z"`, time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)},
		{"with milliseconds", `"2024-05-01T13:30:00.250Z"`, time.Date(2024, 5, 1, 13, 30, 0, 250e6, time.UTC)},
		{"date only", `"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateOfService
			body := `{"date":` + tt.date + `,"startTime":"08:00","endTime":"12:00","totalTime":"04:00"}`
			require.NoError(t, json.Unmarshal([]byte(body), &d))
			assert.True(t, tt.want.Equal(d.Date), d.Date)
			assert.Equal(t, "08:00", d.StartTime)
			assert.Equal(t, "04:00", d.TotalTime)
		})
	}
}

func TestDateOfServiceDecodingErrors(t *testing.T) {
	var d DateOfService
	err := json.Unmarshal([]byte(`{"date":"01/05/2024"}`), &d)
	assert.EqualError(t, err, `date "01/05/2024" is neither RFC 3339 nor YYYY-MM-DD`)

	err = json.Unmarshal([]byte(`{"date":"2024-05-01","room":"B"}`), &d)
	assert.Error(t, err)
}

func TestDateOfServiceKeepsID(t *testing.T) {
	var job Job
	body := `{"datesOfService":[{"_id":"6650a1b2c3d4e5f601234567","date":"2024-05-01"},null]}`
	require.NoError(t, json.Unmarshal([]byte(body), &job))

	require.Len(t, job.DatesOfService, 2)
	assert.Equal(t, "6650a1b2c3d4e5f601234567", job.DatesOfService[0].ID.Hex())
	assert.True(t, job.DatesOfService[1].Date.IsZero())
}
