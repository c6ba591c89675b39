package domain

// Cost - денежная величина в баллах (стоимость товара, доставки). Не может быть отрицательной.
type Cost struct {
	value int64
}

func NewCost(value int64) (Cost, error) {
	if value < 0 {
		return Cost{}, ErrInvalidCost
	}
	return Cost{value: value}, nil
}

func (c Cost) Value() int64 {
	return c.value
}
