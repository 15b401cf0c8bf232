package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ClockMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "9", "24:00", "12:60", "12:5", "ab:cd", "12-30"} {
		_, err := ClockMinutes(bad)
		assert.Error(t, err, "%q should not parse", bad)
	}
}

func TestSlotWindowValidate(t *testing.T) {
	assert.NoError(t, SlotWindow{Start: "09:00", End: "10:30"}.Validate())

	for _, w := range []SlotWindow{
		{Start: "10:00", End: "10:00"},
		{Start: "11:00", End: "09:00"},
		{Start: "bad", End: "10:00"},
		{Start: "09:00", End: "bad"},
	} {
		assert.Error(t, w.Validate(), "%v should be invalid", w)
	}
}

func TestIsWeekday(t *testing.T) {
	for _, d := range Weekdays {
		assert.True(t, IsWeekday(d))
	}
	assert.False(t, IsWeekday("Monday"))
	assert.False(t, IsWeekday("funday"))
}

func TestBookingIsParticipant(t *testing.T) {
	b := Booking{CustomerID: "c1", ProviderID: "p1"}
	assert.True(t, b.IsParticipant("c1"))
	assert.True(t, b.IsParticipant("p1"))
	assert.False(t, b.IsParticipant("x"))
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted} {
		assert.True(t, IsValidBookingStatus(s))
	}
	assert.False(t, IsValidBookingStatus("archived"))
	assert.False(t, IsValidBookingStatus(""))
}
