package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", d.String())

	_, err = ParseDate("03/10/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Due Date `json:"due"`
	}

	in := wrapper{Due: NewDate(2026, time.March, 10)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"due":"2026-03-10"}`, string(data))

	var out wrapper
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Due, out.Due)
}

func TestDateUnmarshalRejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`20260310`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		days  int
		want  Date
	}{
		{"same day", NewDate(2026, time.March, 10), 0, NewDate(2026, time.March, 10)},
		{"within month", NewDate(2026, time.March, 10), 7, NewDate(2026, time.March, 17)},
		{"rolls into next month", NewDate(2026, time.January, 31), 30, NewDate(2026, time.March, 2)},
		{"across year end", NewDate(2026, time.December, 31), 1, NewDate(2027, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddDays(tt.days))
		})
	}
}

func TestDateBefore(t *testing.T) {
	a := NewDate(2026, time.March, 10)
	b := NewDate(2026, time.March, 11)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDateOfTruncates(t *testing.T) {
	d := DateOf(time.Date(2026, time.March, 10, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, NewDate(2026, time.March, 10), d)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), d.Time())
}
