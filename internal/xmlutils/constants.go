// Package xmlutils provides XPath helpers used to check pacs.008 documents
// without building the full node tree.
package xmlutils

import "strings"

// MessagePaths are the absolute locations of the credit transfer message,
// tried in order. Steps match local names, so namespaced documents work
// unchanged.
var MessagePaths = []string{
	"/Document/FIToFICstmrCdtTrf",
	"/FIToFICstmrCdtTrf",
}

// Pacs008 contains the XPath expressions used to check one
// FIToFICstmrCdtTrf location.
type Pacs008 struct {
	// Message locates the credit transfer message itself
	Message string

	// GroupHeader contains XPath expressions for header data
	GroupHeader struct {
		MessageID   string
		NumberOfTxs string
	}

	// Transaction contains XPath expressions for transaction data
	Transaction struct {
		Node          string
		InstructionID string
	}
}

// NewPacs008XPaths returns the expressions for a message located at
// message.
func NewPacs008XPaths(message string) Pacs008 {
	message = strings.TrimSuffix(message, "/")

	p := Pacs008{Message: message}

	p.GroupHeader.MessageID = message + "/GrpHdr/MsgId"
	p.GroupHeader.NumberOfTxs = message + "/GrpHdr/NbOfTxs"

	p.Transaction.Node = message + "/CdtTrfTxInf"
	p.Transaction.InstructionID = message + "/CdtTrfTxInf/PmtId/InstrId"

	return p
}

// DefaultPacs008XPaths returns one expression set per entry of
// MessagePaths, in the same order.
func DefaultPacs008XPaths() []Pacs008 {
	out := make([]Pacs008, 0, len(MessagePaths))
	for _, m := range MessagePaths {
		out = append(out, NewPacs008XPaths(m))
	}
	return out
}
