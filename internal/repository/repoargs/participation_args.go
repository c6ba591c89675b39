package repoargs

type CreateParticipation struct {
	CopurchasingID int64
	ParticipantID  int64
	PurchaseNumber int
	PaymentPoint   int64
}
