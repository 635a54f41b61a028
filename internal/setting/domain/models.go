package domain

import "time"

type Setting struct {
	Key       string    `gorm:"primaryKey;column:key" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Setting) TableName() string { return "settings" }

// Keys read by the invoice and receipt documents.
const (
	KeyCompanyName    = "company_name"
	KeyCompanyAddress = "company_address"
	KeyCompanyPhone   = "company_phone"
	KeyCompanyEmail   = "company_email"
	KeyCompanyGSTIN   = "company_gstin"
	KeyBankName       = "bank_name"
	KeyBankAccount    = "bank_account"
	KeyBankIFSC       = "bank_ifsc"
	KeyBankBranch     = "bank_branch"
	KeyUPIID          = "upi_id"
	KeyUPIPayeeName   = "upi_payee_name"
)

// DefaultKeys are created empty on first start so the settings screen lists them.
var DefaultKeys = []string{
	KeyCompanyName,
	KeyCompanyAddress,
	KeyCompanyPhone,
	KeyCompanyEmail,
	KeyCompanyGSTIN,
	KeyBankName,
	KeyBankAccount,
	KeyBankIFSC,
	KeyBankBranch,
	KeyUPIID,
	KeyUPIPayeeName,
}

// CompanyProfile is the letterhead, bank and UPI block printed on documents.
type CompanyProfile struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	GSTIN        string `json:"gstin"`
	BankName     string `json:"bank_name"`
	BankAccount  string `json:"bank_account"`
	BankIFSC     string `json:"bank_ifsc"`
	BankBranch   string `json:"bank_branch"`
	UPIID        string `json:"upi_id"`
	UPIPayeeName string `json:"upi_payee_name"`
}

// CompanyFromMap builds the profile from raw key-value pairs; missing keys stay blank.
func CompanyFromMap(values map[string]string) CompanyProfile {
	return CompanyProfile{
		Name:         values[KeyCompanyName],
		Address:      values[KeyCompanyAddress],
		Phone:        values[KeyCompanyPhone],
		Email:        values[KeyCompanyEmail],
		GSTIN:        values[KeyCompanyGSTIN],
		BankName:     values[KeyBankName],
		BankAccount:  values[KeyBankAccount],
		BankIFSC:     values[KeyBankIFSC],
		BankBranch:   values[KeyBankBranch],
		UPIID:        values[KeyUPIID],
		UPIPayeeName: values[KeyUPIPayeeName],
	}
}

// HasBank reports whether any bank detail is configured.
func (p CompanyProfile) HasBank() bool {
	return p.BankName != "" || p.BankAccount != "" || p.BankIFSC != ""
}
