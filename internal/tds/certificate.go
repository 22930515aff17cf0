package tds

import "time"

// Party identifies one side of a TDS certificate. TAN is set only for
// the deductor.
type Party struct {
	Name    string `json:"name"`
	PAN     string `json:"pan"`
	TAN     string `json:"tan,omitempty"`
	Address string `json:"address"`
}

// CertificatePayment is the payment section of a Form 16A style
// certificate: the gross amount, what was withheld, and the challan
// through which it was deposited.
type CertificatePayment struct {
	Amount        float64   `json:"amount"`
	TDSAmount     float64   `json:"tds_amount"`
	NetAmount     float64   `json:"net_amount"`
	Section       string    `json:"section"`
	Rate          float64   `json:"rate"`
	PaymentDate   time.Time `json:"payment_date"`
	ChallanNumber string    `json:"challan_number"`
	BSRCode       string    `json:"bsr_code"`
}

// CertificateData is the assembled content of a TDS certificate.
type CertificateData struct {
	Deductee Party              `json:"deductee_details"`
	Deductor Party              `json:"deductor_details"`
	Payment  CertificatePayment `json:"payment_details"`
}

// BuildCertificate composes certificate data from the parties and a
// computed deduction. Callers fill the challan fields once the tax is
// deposited.
func BuildCertificate(deductor, deductee Party, amount float64, res Result, paymentDate time.Time, challanNumber, bsrCode string) CertificateData {
	return CertificateData{
		Deductee: deductee,
		Deductor: deductor,
		Payment: CertificatePayment{
			Amount:        amount,
			TDSAmount:     res.TDSAmount,
			NetAmount:     res.NetPayable,
			Section:       res.Section,
			Rate:          res.Rate,
			PaymentDate:   paymentDate,
			ChallanNumber: challanNumber,
			BSRCode:       bsrCode,
		},
	}
}
