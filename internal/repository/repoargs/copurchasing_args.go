package repoargs

import "time"

type CreateCopurchasing struct {
	Title            string
	Content          string
	ProductTotalCost int64
	ShippingCost     int64
	ProductURL       string
	ExpirationDate   *time.Time
	ProductMinNumber int
	ProductMaxNumber int
	DeadlineDate     time.Time
	TradeDate        time.Time
	PurchasePhotoURL string
	WriterID         int64
}
