package models

import "time"

type SettingType string

const (
	SettingTypeText    SettingType = "text"
	SettingTypeNumber  SettingType = "number"
	SettingTypeBoolean SettingType = "boolean"
	SettingTypeJSON    SettingType = "json"
	SettingTypeImage   SettingType = "image"
)

func (t SettingType) Valid() bool {
	switch t {
	case SettingTypeText, SettingTypeNumber, SettingTypeBoolean, SettingTypeJSON, SettingTypeImage:
		return true
	}
	return false
}

// SiteSetting is an arbitrary typed key-value configuration row.
type SiteSetting struct {
	Key       string      `db:"setting_key" json:"setting_key"`
	Value     string      `db:"setting_value" json:"setting_value"`
	Type      SettingType `db:"setting_type" json:"setting_type"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// PaymentInfo is a static display record. The application only reads it.
type PaymentInfo struct {
	ID            int64  `db:"id" json:"id"`
	UPIID         string `db:"upi_id" json:"upi_id,omitempty"`
	QRCodeURL     string `db:"qr_code_url" json:"qr_code_url,omitempty"`
	BankName      string `db:"bank_name" json:"bank_name,omitempty"`
	AccountName   string `db:"account_name" json:"account_name,omitempty"`
	AccountNumber string `db:"account_number" json:"account_number,omitempty"`
	IFSCCode      string `db:"ifsc_code" json:"ifsc_code,omitempty"`
	Instructions  string `db:"instructions" json:"instructions,omitempty"`
	IsActive      bool   `db:"is_active" json:"is_active"`
}
