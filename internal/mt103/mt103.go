// Package mt103 renders normalized payments as SWIFT MT103 block 4 text.
package mt103

import (
	"strings"

	"fjacquet/pacs2mt/internal/models"
)

// Block 4 envelope markers.
const (
	BlockStart = "{4:"
	BlockEnd   = "-}"
)

// BankOperationCode is the fixed :23B: value; a pacs.008 is always a plain
// credit transfer.
const BankOperationCode = "CRED"

// Tag describes one field of the text block: its tag, the value on the tag
// line, and optional continuation lines printed below it.
type Tag struct {
	Name  string
	Value func(p models.Payment) string
	Lines func(p models.Payment) []string
}

// Tags lists the block 4 fields in output order.
var Tags = []Tag{
	{Name: "20", Value: func(p models.Payment) string { return p.InstructionID }},
	{Name: "23B", Value: func(models.Payment) string { return BankOperationCode }},
	{Name: "32A", Value: func(p models.Payment) string { return p.SettlementDate + p.Currency + p.Amount }},
	{
		Name:  "50K",
		Value: func(p models.Payment) string { return "/" + p.Debtor.Account },
		Lines: func(p models.Payment) []string { return p.Debtor.Lines() },
	},
	{Name: "52A", Value: func(p models.Payment) string { return p.DebtorAgentBIC }},
	{Name: "53A", Value: func(p models.Payment) string { return p.InstructingReimbursementAgentBIC }},
	{Name: "54A", Value: func(p models.Payment) string { return p.InstructedReimbursementAgentBIC }},
	{Name: "57A", Value: func(p models.Payment) string { return p.CreditorAgentBIC }},
	{
		Name:  "59",
		Value: func(p models.Payment) string { return "/" + p.Creditor.Account },
		Lines: func(p models.Payment) []string { return p.Creditor.Lines() },
	},
	{Name: "70", Value: func(p models.Payment) string { return p.RemittanceInformation }},
	{Name: "71A", Value: func(p models.Payment) string { return ChargeCode(p.ChargeBearerCode) }},
}

// ChargeCodes maps ISO 20022 charge bearer codes onto MT103 :71A: codes.
var ChargeCodes = map[string]string{
	models.ChargeBearerDebtor:   "OUR",
	models.ChargeBearerCreditor: "BEN",
	models.ChargeBearerShared:   "SHA",
}

// ChargeCode translates an ISO 20022 charge bearer code. Unknown codes pass
// through unchanged and an empty code stays empty.
func ChargeCode(code string) string {
	if mapped, ok := ChargeCodes[code]; ok {
		return mapped
	}
	return code
}

// Formatter renders payments using a tag table.
type Formatter struct {
	tags []Tag
}

// NewFormatter returns a Formatter using the standard tag table.
func NewFormatter() *Formatter {
	return &Formatter{tags: Tags}
}

// Format renders p as a block 4 text, lines separated by "\n" with no
// trailing newline.
func (f *Formatter) Format(p models.Payment) string {
	lines := make([]string, 0, len(f.tags)+8)
	lines = append(lines, BlockStart)
	for _, tag := range f.tags {
		lines = append(lines, ":"+tag.Name+":"+tag.Value(p))
		if tag.Lines != nil {
			lines = append(lines, tag.Lines(p)...)
		}
	}
	lines = append(lines, BlockEnd)
	return strings.Join(lines, "\n")
}

// Format renders p with the standard tag table.
func Format(p models.Payment) string {
	return NewFormatter().Format(p)
}
