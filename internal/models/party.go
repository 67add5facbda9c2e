package models

import "strings"

// Party represents the debtor or the creditor of a credit transfer.
type Party struct {
	Name         string   `json:"name" yaml:"name"`
	AddressLines []string `json:"addressLines" yaml:"address_lines"`
	// Account is the IBAN for the debtor, and the proprietary account
	// identifier or IBAN for the creditor.
	Account string `json:"account" yaml:"account"`
}

// Lines returns the name followed by the address lines, skipping empty
// values. These are the continuation lines of an MT103 party field.
func (p Party) Lines() []string {
	lines := make([]string, 0, len(p.AddressLines)+1)
	if p.Name != "" {
		lines = append(lines, p.Name)
	}
	for _, l := range p.AddressLines {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Address joins the address lines with sep.
func (p Party) Address(sep string) string {
	return strings.Join(p.AddressLines, sep)
}
