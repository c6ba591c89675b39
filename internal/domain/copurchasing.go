package domain

import "time"

// Copurchasing - пост совместной покупки. Держит агрегатное состояние участий
// и правила расчета стоимости. Состояние "started" не хранится, а выводится
// из собранного количества товара и дедлайна.
type Copurchasing struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Title            string
	Content          string
	ProductTotalCost Cost
	ShippingCost     Cost
	ProductURL       string
	ExpirationDate   *time.Time
	ProductMinNumber int
	ProductMaxNumber int
	DeadlineDate     time.Time
	TradeDate        time.Time
	PurchasePhotoURL string
	WriterID         int64
	Participations   Participations
}

type NewCopurchasingArgs struct {
	Title            string
	Content          string
	ProductTotalCost Cost
	ShippingCost     Cost
	ProductURL       string
	ExpirationDate   *time.Time
	ProductMinNumber int
	ProductMaxNumber int
	DeadlineDate     time.Time
	TradeDate        time.Time
	PurchasePhotoURL string
	WriterID         int64
}

// NewCopurchasing валидирует границы количества товара и порядок дат.
// Проверка выполняется один раз при создании и больше не повторяется.
func NewCopurchasing(args NewCopurchasingArgs) (*Copurchasing, error) {
	if args.ProductMaxNumber < args.ProductMinNumber {
		return nil, ErrInvalidProductNumber
	}
	if args.TradeDate.Before(args.DeadlineDate) {
		return nil, ErrInvalidTradeDate
	}
	return &Copurchasing{
		Title:            args.Title,
		Content:          args.Content,
		ProductTotalCost: args.ProductTotalCost,
		ShippingCost:     args.ShippingCost,
		ProductURL:       args.ProductURL,
		ExpirationDate:   args.ExpirationDate,
		ProductMinNumber: args.ProductMinNumber,
		ProductMaxNumber: args.ProductMaxNumber,
		DeadlineDate:     args.DeadlineDate,
		TradeDate:        args.TradeDate,
		PurchasePhotoURL: args.PurchasePhotoURL,
		WriterID:         args.WriterID,
	}, nil
}

func (c *Copurchasing) IsWriter(memberID int64) bool {
	return c.WriterID == memberID
}

func (c *Copurchasing) IsDeadlineExpired(now time.Time) bool {
	return !now.Before(c.DeadlineDate)
}

// IsStarted сообщает, зафиксирована ли закупка. Закупка стартует когда собрано
// максимальное количество товара, либо когда дедлайн прошел и собран минимум.
// Стартовавшая закупка не удаляется и не принимает отмен участия.
func (c *Copurchasing) IsStarted(now time.Time) bool {
	total := c.Participations.TotalProductNumber()
	if total >= c.ProductMaxNumber {
		return true
	}
	return c.IsDeadlineExpired(now) && total >= c.ProductMinNumber
}

// PaymentCost считает стоимость участия для purchaseNumber единиц товара.
// Стоимость единицы - потолок от деления полной суммы (товар + доставка) на
// делитель: после старта это собранное количество, до старта - минимальное.
// Рассчитанная сумма замораживается в участии и позже не пересчитывается,
// поэтому сумма всех платежей не обязана сходиться с полной стоимостью.
func (c *Copurchasing) PaymentCost(purchaseNumber int, now time.Time) int64 {
	totalCost := c.ProductTotalCost.Value() + c.ShippingCost.Value()
	divisor := int64(c.ProductMinNumber)
	if c.IsStarted(now) {
		divisor = int64(c.Participations.TotalProductNumber())
	}
	return ceilDiv(totalCost, divisor) * int64(purchaseNumber)
}

func ceilDiv(total, parts int64) int64 {
	return (total + parts - 1) / parts
}

// ValidateParticipation проверяет, может ли участник присоединиться.
func (c *Copurchasing) ValidateParticipation(participantID int64, now time.Time) error {
	if c.Participations.HasParticipant(participantID) {
		return ErrAlreadyJoined
	}
	if c.IsDeadlineExpired(now) {
		return ErrDeadlineExpired
	}
	if c.Participations.TotalProductNumber() >= c.ProductMaxNumber {
		return ErrMaxNumberReached
	}
	return nil
}

func (c *Copurchasing) AddParticipation(participation *Participation, now time.Time) error {
	if err := c.ValidateParticipation(participation.ParticipantID, now); err != nil {
		return err
	}
	c.Participations = append(c.Participations, *participation)
	return nil
}

// DeleteParticipation убирает участие из коллекции. Право на отмену здесь не
// проверяется - это зона ответственности Participation.ValidateDelete.
func (c *Copurchasing) DeleteParticipation(participationID int64) {
	for i, p := range c.Participations {
		if p.ID == participationID {
			c.Participations = append(c.Participations[:i], c.Participations[i+1:]...)
			return
		}
	}
}

// ValidateDelete проверяет, что deleter может удалить закупку: только автор
// и только пока закупка не стартовала.
func (c *Copurchasing) ValidateDelete(deleterID int64, now time.Time) error {
	if !c.IsWriter(deleterID) {
		return ErrNoPermission
	}
	if c.IsStarted(now) {
		return ErrAlreadyStarted
	}
	return nil
}

// Refund - поручение на возврат замороженного платежа одному участнику.
type Refund struct {
	ParticipantID int64
	Amount        int64
}

// Refunds возвращает поручения на возврат по всем участиям - применяется
// сервисом при удалении закупки целиком.
func (c *Copurchasing) Refunds() []Refund {
	refunds := make([]Refund, len(c.Participations))
	for i, p := range c.Participations {
		refunds[i] = Refund{ParticipantID: p.ParticipantID, Amount: p.PaymentPoint}
	}
	return refunds
}
