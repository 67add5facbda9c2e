package xmlutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">
  <FIToFICstmrCdtTrf>
    <GrpHdr><MsgId>MSG-1</MsgId><NbOfTxs>2</NbOfTxs></GrpHdr>
    <CdtTrfTxInf>
      <PmtId><InstrId>REF1</InstrId></PmtId>
      <IntrBkSttlmAmt Ccy="EUR">10.50</IntrBkSttlmAmt>
    </CdtTrfTxInf>
    <CdtTrfTxInf>
      <PmtId><InstrId>REF2</InstrId></PmtId>
    </CdtTrfTxInf>
  </FIToFICstmrCdtTrf>
</Document>`

func TestGetOrEmpty(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		index    int
		expected string
	}{
		{"valid index returns value", []string{"a", "b", "c"}, 1, "b"},
		{"first index", []string{"first", "second"}, 0, "first"},
		{"index out of bounds returns empty", []string{"a", "b"}, 5, ""},
		{"negative index returns empty", []string{"a"}, -1, ""},
		{"nil slice returns empty", nil, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetOrEmpty(tt.slice, tt.index))
		})
	}
}

func TestExtractFromXML(t *testing.T) {
	root, err := Parse(strings.NewReader(testDoc))
	require.NoError(t, err)
	paths := DefaultPacs008XPaths()[0]

	ids, err := ExtractFromXML(root, paths.Transaction.InstructionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"REF1", "REF2"}, ids)

	msgID, err := ExtractFromXML(root, paths.GroupHeader.MessageID)
	require.NoError(t, err)
	assert.Equal(t, "MSG-1", GetOrEmpty(msgID, 0))

	count, err := ExtractFromXML(root, paths.GroupHeader.NumberOfTxs)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, count)

	missing, err := ExtractFromXML(root, paths.Message+"/CdtTrfTxInf/ChrgBr")
	require.NoError(t, err)
	assert.Empty(t, missing)

	_, err = ExtractFromXML(root, "//[")
	assert.Error(t, err)
}

func TestDefaultPacs008XPaths(t *testing.T) {
	paths := DefaultPacs008XPaths()
	require.Len(t, paths, len(MessagePaths))

	assert.Equal(t, "/Document/FIToFICstmrCdtTrf", paths[0].Message)
	assert.Equal(t, "/Document/FIToFICstmrCdtTrf/CdtTrfTxInf", paths[0].Transaction.Node)
	assert.Equal(t, "/FIToFICstmrCdtTrf/GrpHdr/MsgId", paths[1].GroupHeader.MessageID)
	assert.Equal(t, "/FIToFICstmrCdtTrf/CdtTrfTxInf", NewPacs008XPaths("/FIToFICstmrCdtTrf/").Transaction.Node)
}

func TestExists(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected []bool
	}{
		{"document wrapper", testDoc, []bool{true, false}},
		{"bare message", "<FIToFICstmrCdtTrf><CdtTrfTxInf/></FIToFICstmrCdtTrf>", []bool{false, true}},
		{"nested deeper", "<Envelope><Document><FIToFICstmrCdtTrf><CdtTrfTxInf/></FIToFICstmrCdtTrf></Document></Envelope>", []bool{false, false}},
		{"camt statement", "<Document><BkToCstmrStmt/></Document>", []bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.doc))
			require.NoError(t, err)

			for i, paths := range DefaultPacs008XPaths() {
				ok, err := Exists(root, paths.Transaction.Node)
				require.NoError(t, err)
				assert.Equal(t, tt.expected[i], ok, paths.Transaction.Node)
			}
		})
	}

	_, err := Exists(nil, "//[")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader("<Document><unclosed>"))
	assert.Error(t, err)
}

func TestLoadXMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pacs008.xml")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0600))

	root, err := LoadXMLFile(path)
	require.NoError(t, err)
	assert.NotNil(t, root)

	_, err = LoadXMLFile(filepath.Join(dir, "missing.xml"))
	assert.Error(t, err)
}
