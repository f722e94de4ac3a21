package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "09:30", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day boundary", input: "24:00", want: "24:00"},
		{name: "with seconds", input: "09:00:00", want: "09:00"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minutes out of range", input: "10:75", wantErr: true},
		{name: "missing colon", input: "0930", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Ровно до конца суток - допустимо
	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	// Переполнение суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Некорректные значения не считаются ни раньше, ни позже
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("bad").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(12345))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("no").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
