package domain

import "time"

type Member struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string
	Nickname  string
	Points    Point
}

func (m *Member) IsSame(memberID int64) bool {
	return m.ID == memberID
}

// Pay списывает paymentCost баллов с баланса участника.
func (m *Member) Pay(paymentCost int64) error {
	return m.Points.Use(paymentCost)
}

// Refund возвращает refundCost баллов на баланс участника.
func (m *Member) Refund(refundCost int64) error {
	return m.Points.Add(refundCost)
}
