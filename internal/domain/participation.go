package domain

import "time"

// Participation - участие одного пользователя в закупке. PaymentPoint -
// замороженный платеж: списывается при вступлении и возвращается ровно в том же
// размере при отмене, независимо от того, как изменилась стоимость единицы.
type Participation struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	PurchaseNumber int
	PaymentPoint   int64
	ConfirmDate    *time.Time
	ParticipantID  int64
	CopurchasingID int64
}

func NewParticipation(copurchasingID, participantID int64, purchaseNumber int, payment int64) (*Participation, error) {
	if purchaseNumber < 1 {
		return nil, ErrInvalidPurchaseNumber
	}
	return &Participation{
		PurchaseNumber: purchaseNumber,
		PaymentPoint:   payment,
		ParticipantID:  participantID,
		CopurchasingID: copurchasingID,
	}, nil
}

func (p *Participation) IsParticipant(memberID int64) bool {
	return p.ParticipantID == memberID
}

func (p *Participation) IsConfirmed() bool {
	return p.ConfirmDate != nil
}

// ValidateDelete проверяет право на отмену участия: отменить может только сам
// участник, а автор закупки не может отменить своё участие вовсе.
func (p *Participation) ValidateDelete(writerID, deleterID int64) error {
	if !p.IsParticipant(deleterID) {
		return ErrNoPermission
	}
	if deleterID == writerID {
		return ErrWriterCannotCancel
	}
	return nil
}

// Participations - коллекция участий одной закупки.
type Participations []Participation

func (ps Participations) TotalProductNumber() int {
	var total int
	for _, p := range ps {
		total += p.PurchaseNumber
	}
	return total
}

func (ps Participations) HasParticipant(memberID int64) bool {
	for _, p := range ps {
		if p.IsParticipant(memberID) {
			return true
		}
	}
	return false
}
