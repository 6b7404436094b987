package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItineraryValidate(t *testing.T) {
	window := Window{From: 0, To: 400}

	tests := []struct {
		name      string
		itinerary Itinerary
		expected  error
	}{
		{
			name:      "Empty itinerary is valid",
			itinerary: Itinerary{},
			expected:  nil,
		},
		{
			name: "Valid two hop itinerary",
			itinerary: Itinerary{
				{ID: 4, Origin: 0, Destination: 2, Departure: 0, Arrival: 180, Fare: 500},
				{ID: 11, Origin: 2, Destination: 3, Departure: 200, Arrival: 290, Fare: 100},
			},
			expected: nil,
		},
		{
			name: "Exactly the minimum buffer is allowed",
			itinerary: Itinerary{
				{ID: 1, Origin: 0, Destination: 1, Departure: 0, Arrival: 120},
				{ID: 2, Origin: 1, Destination: 2, Departure: 140, Arrival: 200},
			},
			expected: nil,
		},
		{
			name: "Discontinuous itinerary",
			itinerary: Itinerary{
				{ID: 1, Origin: 0, Destination: 1, Departure: 0, Arrival: 120},
				{ID: 7, Origin: 2, Destination: 3, Departure: 200, Arrival: 380},
			},
			expected: ErrDiscontinuous,
		},
		{
			name: "Buffer too short",
			itinerary: Itinerary{
				{ID: 1, Origin: 0, Destination: 1, Departure: 0, Arrival: 120},
				{ID: 2, Origin: 1, Destination: 3, Departure: 139, Arrival: 300},
			},
			expected: ErrBufferViolation,
		},
		{
			name: "Departs before window",
			itinerary: Itinerary{
				{ID: 1, Origin: 0, Destination: 1, Departure: -10, Arrival: 120},
			},
			expected: ErrOutsideWindow,
		},
		{
			name: "Arrives after window",
			itinerary: Itinerary{
				{ID: 3, Origin: 0, Destination: 3, Departure: 0, Arrival: 460},
			},
			expected: ErrOutsideWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.itinerary.Validate(window)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestItineraryTotals(t *testing.T) {
	it := Itinerary{
		{ID: 4, Origin: 0, Destination: 2, Departure: 0, Arrival: 180, Fare: 500},
		{ID: 11, Origin: 2, Destination: 3, Departure: 200, Arrival: 290, Fare: 100},
	}

	assert.Equal(t, 2, it.Len())
	assert.False(t, it.IsEmpty())
	assert.Equal(t, []int64{4, 11}, it.FlightIDs())
	assert.Equal(t, int64(600), it.TotalFare())
	assert.Equal(t, int64(0), it.DepartureTime())
	assert.Equal(t, int64(290), it.ArrivalTime())

	var empty Itinerary
	assert.True(t, empty.IsEmpty())
	assert.Empty(t, empty.FlightIDs())
	assert.Equal(t, int64(0), empty.TotalFare())
	assert.Equal(t, int64(0), empty.ArrivalTime())
}

func TestWindowContains(t *testing.T) {
	w := Window{From: 10, To: 20}
	assert.True(t, w.Contains(10))
	assert.True(t, w.Contains(20))
	assert.False(t, w.Contains(9))
	assert.False(t, w.Contains(21))
}
