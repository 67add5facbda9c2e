// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/pacs2mt/internal/logging"
)

var (
	// ErrInvalidFormat is returned when the input is not a pacs.008 credit transfer.
	ErrInvalidFormat = errors.New("the file is not a valid pacs.008 credit transfer")

	// ErrNoInput is returned when no input file was given.
	ErrNoInput = errors.New("an input file is required (--input)")
)

// FileConverter is the part of the converter the commands depend on.
type FileConverter interface {
	ValidateFormat(filePath string) (bool, error)
	ConvertFile(ctx context.Context, inputFile, outputFile string) error
}

// RequireInput returns ErrNoInput for an empty input path.
func RequireInput(inputFile string) error {
	if inputFile == "" {
		return ErrNoInput
	}
	return nil
}

// ValidateFile checks the format of inputFile.
func ValidateFile(c FileConverter, inputFile string, log logging.Logger) error {
	log.Info("Validating format...", logging.F(logging.FieldFile, inputFile))
	valid, err := c.ValidateFormat(inputFile)
	if err != nil {
		return fmt.Errorf("error validating file: %w", err)
	}
	if !valid {
		return ErrInvalidFormat
	}
	log.Info("Validation successful.")
	return nil
}

// ProcessFileWithError converts a single file, validating it first when
// validate is set.
func ProcessFileWithError(ctx context.Context, c FileConverter, inputFile, outputFile string, validate bool, log logging.Logger) error {
	if err := RequireInput(inputFile); err != nil {
		return err
	}

	if validate {
		if err := ValidateFile(c, inputFile, log); err != nil {
			return err
		}
	}

	if err := c.ConvertFile(ctx, inputFile, outputFile); err != nil {
		return err
	}
	log.Info("Conversion completed successfully!",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile))
	return nil
}
