package models

// PaymentConfig is the single global record describing how buyers pay.
// It lives at config/payment in the store and is replaced wholesale on update.
type PaymentConfig struct {
	UPIID           string `firestore:"upiId" json:"upiId"`
	QRCodeURL       string `firestore:"qrCodeUrl" json:"qrCodeUrl"`
	InstructionText string `firestore:"instructionText" json:"instructionText"`
}

// DefaultPaymentConfig is what buyers see until the operator saves their own
// settings (the config document may simply not exist yet).
func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		UPIID:           "lafzbox@upi",
		QRCodeURL:       "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=lafzbox@upi",
		InstructionText: "Scan the QR code or use the UPI ID to pay. Enter the Transaction ID below to verify.",
	}
}
