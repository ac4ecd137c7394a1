package payment

import "errors"

var (
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrPaymentAbandoned   = errors.New("payment abandoned")
)
