// Package common contains shared functionality for command handlers
package common

import (
	"github.com/ionicblue/ofxstatement-paypal/internal/logging"
	"github.com/ionicblue/ofxstatement-paypal/internal/ofx"
	"github.com/ionicblue/ofxstatement-paypal/internal/parser"
)

// ProcessFile parses a single export with the given parser and writes
// the resulting statement as OFX.
func ProcessFile(p parser.Parser, inputFile, outputFile string, validate bool, log logging.Logger) {
	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not in a valid format")
		}
		log.Info("Validation successful.")
	}

	statement, err := p.ParseFile(inputFile)
	if err != nil {
		log.Fatalf("Error parsing file: %v", err)
	}
	log.WithField("lines", len(statement.Lines)).Info("Parsed statement")

	if err := ofx.WriteFile(statement, outputFile); err != nil {
		log.Fatalf("Error writing OFX file: %v", err)
	}
	log.Info("Conversion completed successfully!")
}
