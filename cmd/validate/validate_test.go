package validate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pacs2mt/cmd/common"
	"fjacquet/pacs2mt/cmd/root"
	"fjacquet/pacs2mt/cmd/validate"
	"fjacquet/pacs2mt/internal/config"
	"fjacquet/pacs2mt/internal/container"
	"fjacquet/pacs2mt/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	originalFlags, originalContainer, originalLog := root.SharedFlags, root.AppContainer, root.Log
	t.Cleanup(func() {
		root.SharedFlags, root.AppContainer, root.Log = originalFlags, originalContainer, originalLog
	})

	c, err := container.NewContainerWithLogger(config.DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	root.AppContainer = c
	root.Log = logging.NewNopLogger()
	root.SharedFlags = root.CommonFlags{Input: input}

	var out bytes.Buffer
	validate.Cmd.SetOut(&out)
	return &out
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestValidateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "validate", validate.Cmd.Use)
	assert.Contains(t, validate.Cmd.Long, "FIToFICstmrCdtTrf")
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"valid", "<Document><FIToFICstmrCdtTrf><CdtTrfTxInf/></FIToFICstmrCdtTrf></Document>", nil},
		{"wrong message", "<Document><BkToCstmrStmt/></Document>", common.ErrInvalidFormat},
		{"not xml", "hello", common.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.content)
			out := setup(t, path)

			err := validate.Cmd.RunE(validate.Cmd, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), "is a valid pacs.008 credit transfer")
		})
	}
}

func TestValidateCommand_MissingFile(t *testing.T) {
	setup(t, filepath.Join(t.TempDir(), "missing.xml"))

	err := validate.Cmd.RunE(validate.Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file does not exist")
}

func TestValidateCommand_NoInput(t *testing.T) {
	setup(t, "")
	assert.ErrorIs(t, validate.Cmd.RunE(validate.Cmd, nil), common.ErrNoInput)
}
