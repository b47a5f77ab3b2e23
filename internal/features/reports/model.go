package reports

import (
	"time"
)

// Category is the closed set of scam types a reporter can pick
type Category string

const (
	CategoryWalletScam        Category = "wallet_scam"
	CategoryOTPTheft          Category = "otp_theft"
	CategoryFakeJob           Category = "fake_job"
	CategoryImpersonationBank Category = "impersonation_bank"
	CategoryPrizeFraud        Category = "prize_fraud"
	CategoryOther             Category = "other"
)

// Categories lists every valid category, in display order
var Categories = []Category{
	CategoryWalletScam,
	CategoryOTPTheft,
	CategoryFakeJob,
	CategoryImpersonationBank,
	CategoryPrizeFraud,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Report is one community submission about a phone number. Reports are
// historical facts: ScamProbability is computed once at ingestion and never
// recomputed, even if the classifier changes later.
type Report struct {
	ID              string    `bson:"_id" json:"id"`
	Number          string    `bson:"number" json:"number"` // E.164
	Category        Category  `bson:"category" json:"category"`
	Message         string    `bson:"message" json:"message"`
	ScamProbability float64   `bson:"scamProbability" json:"scam_probability"`
	CreatedAt       time.Time `bson:"createdAt" json:"created_at"`
}

// CreateReportRequest for POST /reports
type CreateReportRequest struct {
	Number   string `json:"number" binding:"required,min=7,max=20"`
	Category string `json:"category" binding:"required"`
	Message  string `json:"message" binding:"required,min=4,max=2000"`
}

// ReportResponse echoes the stored submission
type ReportResponse struct {
	ID              string  `json:"id"`
	Number          string  `json:"number"`
	Category        string  `json:"category"`
	Message         string  `json:"message"`
	CreatedAt       string  `json:"created_at"`
	ScamProbability float64 `json:"scam_probability"`
}
