package domain

// Point - баланс баллов участника. Значение не может быть отрицательным,
// любая операция с отрицательной дельтой отклоняется.
type Point struct {
	amount int64
}

func NewPoint(amount int64) (Point, error) {
	if amount < 0 {
		return Point{}, ErrInvalidPointAmount
	}
	return Point{amount: amount}, nil
}

func (p Point) Amount() int64 {
	return p.amount
}

// Add зачисляет amount баллов. Возвращает ErrInvalidPointAmount для отрицательной дельты.
func (p *Point) Add(amount int64) error {
	if amount < 0 {
		return ErrInvalidPointAmount
	}
	p.amount += amount
	return nil
}

// Use списывает amount баллов. Возвращает ErrInvalidPointAmount для отрицательной дельты
// и ErrNotEnoughPoints если после списания баланс ушел бы в минус.
func (p *Point) Use(amount int64) error {
	if amount < 0 {
		return ErrInvalidPointAmount
	}
	if p.amount-amount < 0 {
		return ErrNotEnoughPoints
	}
	p.amount -= amount
	return nil
}
