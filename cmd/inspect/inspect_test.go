package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/pacs2mt/cmd/root"
	"fjacquet/pacs2mt/internal/config"
	"fjacquet/pacs2mt/internal/container"
	"fjacquet/pacs2mt/internal/logging"
	"fjacquet/pacs2mt/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleXML = `<FIToFICstmrCdtTrf>
  <CdtTrfTxInf>
    <PmtId><InstrId>REF123</InstrId></PmtId>
    <IntrBkSttlmDt>2026-01-05</IntrBkSttlmDt>
    <IntrBkSttlmAmt Ccy="EUR">12.5</IntrBkSttlmAmt>
    <Dbtr>
      <Nm>John Doe</Nm>
      <PstlAdr><AdrLine>Main St 1</AdrLine><AdrLine>Berlin</AdrLine></PstlAdr>
    </Dbtr>
    <ChrgBr>DEBT</ChrgBr>
  </CdtTrfTxInf>
</FIToFICstmrCdtTrf>`

func samplePayment() models.Payment {
	return models.Payment{
		InstructionID:    "REF123",
		SettlementDate:   "260105",
		Currency:         "EUR",
		Amount:           "12,5",
		Debtor:           models.Party{Name: "John Doe", AddressLines: []string{"Main St 1", "Berlin"}},
		Creditor:         models.Party{AddressLines: []string{}},
		ChargeBearerCode: "DEBT",
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, samplePayment(), config.InspectFormatYAML))

	assert.Contains(t, buf.String(), "instruction_id: REF123")
	var decoded models.Payment
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "12,5", decoded.Amount)
	assert.Equal(t, []string{"Main St 1", "Berlin"}, decoded.Debtor.AddressLines)

	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "12.5", raw["amount_value"])
	assert.Equal(t, "12,5", raw["amount"])
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, samplePayment(), config.InspectFormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "InstructionID,SettlementDate,Currency,Amount"))

	var rows []models.PaymentRow
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Main St 1 | Berlin", rows[0].DebtorAddress)
	assert.Equal(t, "12,5", rows[0].Amount)
	assert.Equal(t, "12.5", rows[0].AmountValue)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, samplePayment(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestInspectCommand(t *testing.T) {
	originalFlags, originalContainer, originalFormat := root.SharedFlags, root.AppContainer, Format
	t.Cleanup(func() {
		root.SharedFlags, root.AppContainer, Format = originalFlags, originalContainer, originalFormat
	})

	cfg := config.DefaultConfig()
	cfg.Inspect.Format = config.InspectFormatCSV
	c, err := container.NewContainerWithLogger(cfg, logging.NewNopLogger())
	require.NoError(t, err)
	root.AppContainer = c

	path := filepath.Join(t.TempDir(), "in.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleXML), 0600))
	root.SharedFlags = root.CommonFlags{Input: path}

	var out bytes.Buffer
	Cmd.SetOut(&out)

	Format = ""
	require.NoError(t, Cmd.RunE(Cmd, nil))
	assert.Contains(t, out.String(), "InstructionID,")
	assert.Contains(t, out.String(), "REF123,260105,EUR,\"12,5\"")

	out.Reset()
	Format = config.InspectFormatYAML
	require.NoError(t, Cmd.RunE(Cmd, nil))
	assert.Contains(t, out.String(), "charge_bearer_code: DEBT")

	root.SharedFlags = root.CommonFlags{}
	assert.Error(t, Cmd.RunE(Cmd, nil))
}
