// Package normalizer extracts a flat, cleaned payment record from a decoded
// pacs.008 FIToFICstmrCdtTrf document.
//
// Normalization is total: apart from locating the transaction itself, every
// missing or oddly shaped field degrades to an empty value instead of
// failing.
package normalizer

import (
	"strings"

	"fjacquet/pacs2mt/internal/currencyutils"
	"fjacquet/pacs2mt/internal/dateutils"
	"fjacquet/pacs2mt/internal/logging"
	"fjacquet/pacs2mt/internal/models"
	"fjacquet/pacs2mt/internal/parsererror"
	"fjacquet/pacs2mt/internal/textutils"
	"fjacquet/pacs2mt/internal/xmltree"
)

const (
	messageElement     = "FIToFICstmrCdtTrf"
	transactionElement = "CdtTrfTxInf"
	groupHeaderElement = "GrpHdr"
)

// RootPaths are the locations of the credit transfer message, tried in
// order. The Document wrapper is optional in the wild.
var RootPaths = [][]string{
	{"Document", messageElement},
	{messageElement},
}

// bicElements are the names under FinInstnId carrying the BIC; BIC is the
// pre-2019 name of BICFI.
var bicElements = []string{"BICFI", "BIC"}

// Normalizer turns decoded documents into payment records. It holds no
// state besides its logger and is safe for concurrent use.
type Normalizer struct {
	logger logging.Logger
}

// NewNormalizer creates a Normalizer. A nil logger discards output.
func NewNormalizer(logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Normalizer{logger: logger}
}

// Normalize is a convenience wrapper using a silent Normalizer.
func Normalize(root *xmltree.Node) (models.Payment, error) {
	return NewNormalizer(nil).Normalize(root)
}

// Normalize resolves the credit transfer transaction below root and maps it
// onto a Payment.
func (n *Normalizer) Normalize(root *xmltree.Node) (models.Payment, error) {
	msg, rootPath := locateMessage(root)
	txs := msg.Children(transactionElement)
	if len(txs) == 0 {
		return models.Payment{}, &parsererror.StructureNotFoundError{
			Element: transactionElement,
			Paths:   candidatePaths(),
		}
	}

	log := n.logger.WithField(logging.FieldRootPath, rootPath)
	if len(txs) > 1 {
		log.Warn("Message carries several transactions, converting the first one",
			logging.F(logging.FieldCount, len(txs)))
	}

	tx := txs[0]
	if !tx.HasElements() && textutils.Clean(tx.Text()) != "" {
		return models.Payment{}, &parsererror.UnexpectedShapeError{
			Path:   rootPath + "/" + transactionElement,
			Reason: "expected child elements, found text",
		}
	}
	hdr := msg.Child(groupHeaderElement)

	currency, amount := n.amount(log, tx.Child("IntrBkSttlmAmt"))

	p := models.Payment{
		InstructionID: text(tx.Path("PmtId", "InstrId")),
		SettlementDate: dateutils.ResolveSWIFTDate(
			text(tx.Child("IntrBkSttlmDt")),
			text(hdr.Child("CreDtTm")),
		),
		Currency: currency,
		Amount:   amount,
		Debtor: models.Party{
			Name:         text(tx.Path("Dbtr", "Nm")),
			AddressLines: textutils.CleanLines(tx.Texts("Dbtr", "PstlAdr", "AdrLine")),
			Account:      text(tx.Path("DbtrAcct", "Id", "IBAN")),
		},
		Creditor: models.Party{
			Name:         text(tx.Path("Cdtr", "Nm")),
			AddressLines: textutils.CleanLines(tx.Texts("Cdtr", "PstlAdr", "AdrLine")),
			Account: firstNonEmpty(
				text(tx.Path("CdtrAcct", "Id", "Othr", "Id")),
				text(tx.Path("CdtrAcct", "Id", "IBAN")),
			),
		},
		DebtorAgentBIC: bic(tx.Child("DbtrAgt")),
		InstructingReimbursementAgentBIC: firstNonEmpty(
			bic(tx.Child("InstgRmbrsmntAgt")),
			bic(hdr.Path("SttlmInf", "InstgRmbrsmntAgt")),
		),
		InstructedReimbursementAgentBIC: firstNonEmpty(
			bic(tx.Child("InstdRmbrsmntAgt")),
			bic(hdr.Path("SttlmInf", "InstdRmbrsmntAgt")),
		),
		CreditorAgentBIC:      bic(tx.Child("CdtrAgt")),
		RemittanceInformation: strings.Join(textutils.CleanLines(tx.Texts("RmtInf", "Ustrd")), " "),
		ChargeBearerCode:      text(tx.Child("ChrgBr")),
	}

	log.Debug("Normalized credit transfer",
		logging.F(logging.FieldInstructionID, p.InstructionID),
		logging.F(logging.FieldAmount, p.Currency+p.Amount))

	return p, nil
}

// amount reads IntrBkSttlmAmt, whose currency travels in the Ccy attribute.
func (n *Normalizer) amount(log logging.Logger, node *xmltree.Node) (currency, amount string) {
	currency = textutils.Clean(node.Attr("Ccy"))
	raw := text(node)
	if raw != "" && !currencyutils.IsDecimal(raw) {
		log.Debug("Settlement amount is not a plain decimal, passing it through",
			logging.F(logging.FieldAmount, raw))
	}
	return currency, currencyutils.FormatSWIFTAmount(raw)
}

func locateMessage(root *xmltree.Node) (*xmltree.Node, string) {
	for _, path := range RootPaths {
		if msg := root.Path(path...); msg.Child(transactionElement) != nil {
			return msg, strings.Join(path, "/")
		}
	}
	return nil, ""
}

func candidatePaths() []string {
	out := make([]string, 0, len(RootPaths))
	for _, path := range RootPaths {
		out = append(out, strings.Join(append(append([]string{}, path...), transactionElement), "/"))
	}
	return out
}

// text returns the cleaned character data of a scalar node. A node holding
// child elements instead of text reads as empty.
func text(node *xmltree.Node) string {
	if node.HasElements() {
		return ""
	}
	return textutils.Clean(node.Text())
}

func bic(agent *xmltree.Node) string {
	inst := agent.Child("FinInstnId")
	values := make([]string, 0, len(bicElements))
	for _, name := range bicElements {
		values = append(values, text(inst.Child(name)))
	}
	return firstNonEmpty(values...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
