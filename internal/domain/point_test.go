package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.Amount())

	_, negErr := NewPoint(-1)
	assert.ErrorIs(t, negErr, ErrInvalidPointAmount)
}

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name    string
		start   int64
		amount  int64
		want    int64
		wantErr error
	}{
		{name: "adds amount", start: 100, amount: 50, want: 150},
		{name: "zero is allowed", start: 100, amount: 0, want: 100},
		{name: "negative amount rejected", start: 100, amount: -1, want: 100, wantErr: ErrInvalidPointAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(tt.start)
			require.NoError(t, err)

			addErr := p.Add(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, addErr, tt.wantErr)
			} else {
				assert.NoError(t, addErr)
			}
			assert.Equal(t, tt.want, p.Amount())
		})
	}
}

func TestPointUse(t *testing.T) {
	tests := []struct {
		name    string
		start   int64
		amount  int64
		want    int64
		wantErr error
	}{
		{name: "uses amount", start: 100, amount: 70, want: 30},
		{name: "uses whole balance", start: 100, amount: 100, want: 0},
		{name: "overdraw rejected", start: 100, amount: 101, want: 100, wantErr: ErrNotEnoughPoints},
		{name: "negative amount rejected", start: 100, amount: -1, want: 100, wantErr: ErrInvalidPointAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(tt.start)
			require.NoError(t, err)

			useErr := p.Use(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, useErr, tt.wantErr)
			} else {
				assert.NoError(t, useErr)
			}
			assert.Equal(t, tt.want, p.Amount())
		})
	}
}

// Use с последующим Add той же суммы возвращает баланс к исходному значению.
func TestPointUseAddRoundTrip(t *testing.T) {
	p, err := NewPoint(5000)
	require.NoError(t, err)

	require.NoError(t, p.Use(4002))
	require.NoError(t, p.Add(4002))
	assert.Equal(t, int64(5000), p.Amount())
}
