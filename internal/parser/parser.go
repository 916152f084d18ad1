// Package parser defines the interface between statement parsers and
// the command layer.
package parser

import (
	"github.com/ionicblue/ofxstatement-paypal/internal/models"

	"github.com/sirupsen/logrus"
)

// Parser converts a statement export file into a Statement aggregate.
type Parser interface {
	// ParseFile reads and transforms the export at filePath. It is
	// responsible for charset decoding, schema validation and the
	// row-to-line mapping, and returns typed errors from parsererror
	// for specific failures.
	ParseFile(filePath string) (*models.Statement, error)

	// ValidateFormat reports whether the file looks like an export this
	// parser understands, without transforming any rows.
	ValidateFormat(filePath string) (bool, error)

	// SetLogger installs a configured logger.
	SetLogger(logger *logrus.Logger)
}
