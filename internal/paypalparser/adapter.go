package paypalparser

import (
	"github.com/ionicblue/ofxstatement-paypal/internal/models"

	"github.com/sirupsen/logrus"
)

// Adapter implements the parser.Parser interface by wrapping the
// package-level functions of paypalparser with a bound configuration.
type Adapter struct {
	cfg Config
}

// NewAdapter creates a new adapter for the paypalparser.
func NewAdapter(cfg Config) *Adapter {
	return &Adapter{cfg: cfg}
}

// ParseFile implements parser.Parser.ParseFile
// by delegating to the package-level function.
func (a *Adapter) ParseFile(filePath string) (*models.Statement, error) {
	return ParseFile(filePath, a.cfg)
}

// ValidateFormat implements parser.Parser.ValidateFormat
// by delegating to the package-level function.
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	return ValidateFormat(filePath, a.cfg)
}

// SetLogger implements parser.Parser.SetLogger
// by delegating to the package-level function.
func (a *Adapter) SetLogger(logger *logrus.Logger) {
	SetLogger(logger)
}
