// Package converter wires the pacs.008 to MT103 pipeline together: decode
// the XML, normalize the credit transfer, format the text block.
package converter

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"fjacquet/pacs2mt/internal/fileutils"
	"fjacquet/pacs2mt/internal/logging"
	"fjacquet/pacs2mt/internal/models"
	"fjacquet/pacs2mt/internal/mt103"
	"fjacquet/pacs2mt/internal/normalizer"
	"fjacquet/pacs2mt/internal/parsererror"
	"fjacquet/pacs2mt/internal/xmltree"
	"fjacquet/pacs2mt/internal/xmlutils"

	"github.com/google/uuid"
)

// StdoutPath selects standard output as the destination of ConvertFile.
const StdoutPath = "-"

// Result is the outcome of one conversion.
type Result struct {
	ConversionID string
	Payment      models.Payment
	MT103        string
}

// Converter runs conversions. It keeps no per-conversion state and can be
// shared between goroutines.
type Converter struct {
	logger    logging.Logger
	formatter *mt103.Formatter
	xpaths    []xmlutils.Pacs008
	stdout    io.Writer
	newID     func() string
}

// NewConverter creates a Converter. A nil logger discards output.
func NewConverter(logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Converter{
		logger:    logger,
		formatter: mt103.NewFormatter(),
		xpaths:    xmlutils.DefaultPacs008XPaths(),
		stdout:    os.Stdout,
		newID:     uuid.NewString,
	}
}

// WithOutput returns a copy of the converter whose ConvertFile prints to w
// for StdoutPath. The receiver is left untouched.
func (c *Converter) WithOutput(w io.Writer) *Converter {
	cp := *c
	if w != nil {
		cp.stdout = w
	}
	return &cp
}

// GetLogger returns the logger used by the converter.
func (c *Converter) GetLogger() logging.Logger {
	return c.logger
}

// Process decodes, normalizes and formats the document read from r.
func (c *Converter) Process(ctx context.Context, r io.Reader) (Result, error) {
	res := Result{ConversionID: c.newID()}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	log := c.logger.WithField(logging.FieldConversionID, res.ConversionID)
	start := time.Now()

	payment, err := c.normalize(log, r)
	if err != nil {
		log.WithError(err).Warn("Conversion failed",
			logging.F(logging.FieldErrorKind, parsererror.Kind(err)))
		return res, err
	}

	res.Payment = payment
	res.MT103 = c.formatter.Format(payment)

	log.Info("Converted credit transfer",
		logging.F(logging.FieldInstructionID, payment.InstructionID),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	return res, nil
}

// Convert returns the MT103 block 4 text for the document read from r.
func (c *Converter) Convert(ctx context.Context, r io.Reader) (string, error) {
	res, err := c.Process(ctx, r)
	if err != nil {
		return "", err
	}
	return res.MT103, nil
}

// Normalize returns the payment record for the document read from r
// without formatting it.
func (c *Converter) Normalize(ctx context.Context, r io.Reader) (models.Payment, error) {
	res, err := c.Process(ctx, r)
	if err != nil {
		return models.Payment{}, err
	}
	return res.Payment, nil
}

// normalize runs a Normalizer bound to log so its warnings carry the
// conversion id.
func (c *Converter) normalize(log logging.Logger, r io.Reader) (models.Payment, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return models.Payment{}, err
	}
	return normalizer.NewNormalizer(log).Normalize(root)
}

// ConvertFile converts inputFile and writes the text block to outputFile.
// An empty outputFile or StdoutPath prints to standard output instead.
func (c *Converter) ConvertFile(ctx context.Context, inputFile, outputFile string) error {
	log := c.logger.WithFields(
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile))

	f, err := fileutils.OpenFile(inputFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close input file")
		}
	}()

	res, err := c.Process(ctx, f)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", inputFile, err)
	}

	if outputFile == "" || outputFile == StdoutPath {
		_, err = fmt.Fprintln(c.stdout, res.MT103)
		return err
	}

	if err := fileutils.WriteFile(outputFile, []byte(res.MT103)); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	log.Info("MT103 written", logging.F(logging.FieldConversionID, res.ConversionID))
	return nil
}

// ValidateFormat checks that filePath holds a pacs.008 credit transfer
// carrying at least one transaction at one of xmlutils.MessagePaths, the
// same locations the normalizer accepts. Content that is not XML yields false
// with no error; a missing file is an error.
func (c *Converter) ValidateFormat(filePath string) (bool, error) {
	log := c.logger.WithField(logging.FieldFile, filePath)
	log.Info("Validating pacs.008 format")

	if !fileutils.FileExists(filePath) {
		return false, parsererror.FileNotFoundError(filePath)
	}

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		log.WithError(err).Info("File is not well-formed XML")
		return false, nil
	}

	for _, paths := range c.xpaths {
		ok, err := xmlutils.Exists(root, paths.Transaction.Node)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		msgIDs, err := xmlutils.ExtractFromXML(root, paths.GroupHeader.MessageID)
		if err != nil {
			return false, err
		}
		counts, err := xmlutils.ExtractFromXML(root, paths.GroupHeader.NumberOfTxs)
		if err != nil {
			return false, err
		}
		ids, err := xmlutils.ExtractFromXML(root, paths.Transaction.InstructionID)
		if err != nil {
			return false, err
		}
		log.Info("Found credit transfer",
			logging.F(logging.FieldRootPath, paths.Message),
			logging.F(logging.FieldMessageID, xmlutils.GetOrEmpty(msgIDs, 0)),
			logging.F(logging.FieldCount, xmlutils.GetOrEmpty(counts, 0)),
			logging.F(logging.FieldInstructionID, xmlutils.GetOrEmpty(ids, 0)))
		return true, nil
	}

	log.Info("File is not a pacs.008 credit transfer (no CdtTrfTxInf)")
	return false, nil
}
