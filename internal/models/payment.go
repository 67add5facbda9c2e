// Package models provides the data structures used throughout the application.
package models

import "fjacquet/pacs2mt/internal/currencyutils"

// Payment is the normalized view of one pacs.008 credit transfer
// transaction. Every field is cleaned and never holds a placeholder token;
// absent values are empty strings.
type Payment struct {
	InstructionID string `json:"instructionId" yaml:"instruction_id"`
	// SettlementDate is already rendered as YYMMDD.
	SettlementDate string `json:"settlementDate" yaml:"settlement_date"`
	Currency       string `json:"currency" yaml:"currency"`
	// Amount is already in SWIFT comma notation, e.g. "100,00".
	Amount string `json:"amount" yaml:"amount"`

	Debtor   Party `json:"debtor" yaml:"debtor"`
	Creditor Party `json:"creditor" yaml:"creditor"`

	DebtorAgentBIC                   string `json:"debtorAgentBic" yaml:"debtor_agent_bic"`
	InstructingReimbursementAgentBIC string `json:"instructingReimbursementAgentBic" yaml:"instructing_reimbursement_agent_bic"`
	InstructedReimbursementAgentBIC  string `json:"instructedReimbursementAgentBic" yaml:"instructed_reimbursement_agent_bic"`
	CreditorAgentBIC                 string `json:"creditorAgentBic" yaml:"creditor_agent_bic"`

	RemittanceInformation string `json:"remittanceInformation" yaml:"remittance_information"`
	ChargeBearerCode      string `json:"chargeBearerCode" yaml:"charge_bearer_code"`
}

// PaymentRow is the flat form of a Payment used for CSV output.
type PaymentRow struct {
	InstructionID                    string `csv:"InstructionID"`
	SettlementDate                   string `csv:"SettlementDate"`
	Currency                         string `csv:"Currency"`
	Amount                           string `csv:"Amount"`
	AmountValue                      string `csv:"AmountValue"`
	DebtorName                       string `csv:"DebtorName"`
	DebtorAddress                    string `csv:"DebtorAddress"`
	DebtorAccount                    string `csv:"DebtorAccount"`
	CreditorName                     string `csv:"CreditorName"`
	CreditorAddress                  string `csv:"CreditorAddress"`
	CreditorAccount                  string `csv:"CreditorAccount"`
	DebtorAgentBIC                   string `csv:"DebtorAgentBIC"`
	InstructingReimbursementAgentBIC string `csv:"InstructingReimbursementAgentBIC"`
	InstructedReimbursementAgentBIC  string `csv:"InstructedReimbursementAgentBIC"`
	CreditorAgentBIC                 string `csv:"CreditorAgentBIC"`
	RemittanceInformation            string `csv:"RemittanceInformation"`
	ChargeBearerCode                 string `csv:"ChargeBearerCode"`
}

// AmountValue returns the amount as a plain decimal number, e.g. "100" for
// "100,00", or "" when the amount is empty or not numeric.
func (p Payment) AmountValue() string {
	d, err := currencyutils.ParseSWIFTAmount(p.Amount)
	if err != nil {
		return ""
	}
	return d.String()
}

// addressSeparator joins address lines inside a single CSV cell.
const addressSeparator = " | "

// ToRow flattens the payment for CSV output.
func (p Payment) ToRow() PaymentRow {
	return PaymentRow{
		InstructionID:                    p.InstructionID,
		SettlementDate:                   p.SettlementDate,
		Currency:                         p.Currency,
		Amount:                           p.Amount,
		AmountValue:                      p.AmountValue(),
		DebtorName:                       p.Debtor.Name,
		DebtorAddress:                    p.Debtor.Address(addressSeparator),
		DebtorAccount:                    p.Debtor.Account,
		CreditorName:                     p.Creditor.Name,
		CreditorAddress:                  p.Creditor.Address(addressSeparator),
		CreditorAccount:                  p.Creditor.Account,
		DebtorAgentBIC:                   p.DebtorAgentBIC,
		InstructingReimbursementAgentBIC: p.InstructingReimbursementAgentBIC,
		InstructedReimbursementAgentBIC:  p.InstructedReimbursementAgentBIC,
		CreditorAgentBIC:                 p.CreditorAgentBIC,
		RemittanceInformation:            p.RemittanceInformation,
		ChargeBearerCode:                 p.ChargeBearerCode,
	}
}
