package timetable

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual_DifferentHistories(t *testing.T) {
	a := newTrainA(t)

	// same contents reached through retiming and a removed stop
	b := newTestTimetable(t)
	_, err := b.AddTrain("A", At(8, 30), Stop{"Y", At(9, 30)})
	require.NoError(t, err)
	_, err = b.AddStop("A", Stop{"Q", At(8, 45)})
	require.NoError(t, err)
	_, err = b.AddStop("A", Stop{"X", At(8, 0)})
	require.NoError(t, err)
	_, err = b.AddStop("A", Stop{"Y", At(10, 0)})
	require.NoError(t, err)
	_, err = b.AddStop("A", Stop{"Z", At(9, 0)})
	require.NoError(t, err)
	_, err = b.RemoveStop("A", "Q")
	require.NoError(t, err)
	_, err = b.AddTrain("B", At(6, 0), Stop{"Y", At(7, 0)})
	require.NoError(t, err)
	require.True(t, b.RemoveTrain("B"))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqual_Differences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, tt *Timetable)
	}{
		{
			name: "retimed stop",
			mutate: func(t *testing.T, tt *Timetable) {
				_, err := tt.AddStop("A", Stop{"Z", At(9, 5)})
				require.NoError(t, err)
			},
		},
		{
			name: "extra stop",
			mutate: func(t *testing.T, tt *Timetable) {
				_, err := tt.AddStop("A", Stop{"W", At(9, 5)})
				require.NoError(t, err)
			},
		},
		{
			name: "extra train",
			mutate: func(t *testing.T, tt *Timetable) {
				_, err := tt.AddTrain("B", At(8, 0), Stop{"Y", At(10, 0)})
				require.NoError(t, err)
			},
		},
		{
			name: "removed train",
			mutate: func(t *testing.T, tt *Timetable) {
				require.True(t, tt.RemoveTrain("A"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTrainA(t)
			b := newTrainA(t)
			tc.mutate(t, b)

			assert.False(t, a.Equal(b))
			assert.False(t, b.Equal(a))
			assert.NotEqual(t, a.Hash(), b.Hash())
		})
	}
}

func TestEqual_RenamedTrain(t *testing.T) {
	a := newTestTimetable(t)
	b := newTestTimetable(t)
	_, err := a.AddTrain("A", At(8, 0), Stop{"Y", At(10, 0)})
	require.NoError(t, err)
	_, err = b.AddTrain("B", At(8, 0), Stop{"Y", At(10, 0)})
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestEqual_BaseStation(t *testing.T) {
	a := New("X")
	b := New("Other")

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.True(t, a.Equal(New("X")))
}

func TestEqual_Nil(t *testing.T) {
	var a, b *Timetable
	assert.True(t, a.Equal(b))
	assert.False(t, New("X").Equal(nil))
	assert.False(t, a.Equal(New("X")))
}

func TestHash_Format(t *testing.T) {
	tt := newTrainA(t)

	h := tt.Hash()
	assert.Len(t, h, 64)
	_, err := hex.DecodeString(h)
	assert.NoError(t, err)
	assert.Equal(t, h, tt.Hash())
	assert.NotEqual(t, h, newTestTimetable(t).Hash())
}
