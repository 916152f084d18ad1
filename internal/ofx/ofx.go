// Package ofx serializes a Statement into an OFX 2 (XML) document, the
// interchange format downstream accounting tools import.
package ofx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ionicblue/ofxstatement-paypal/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const (
	dtFormat     = "20060102"
	dtTimeFormat = "20060102150405"
)

// Document is the root OFX element.
type Document struct {
	XMLName xml.Name     `xml:"OFX"`
	Signon  SignonMsgSet `xml:"SIGNONMSGSRSV1"`
	Bank    BankMsgSet   `xml:"BANKMSGSRSV1"`
}

// SignonMsgSet carries the signon response required by OFX readers.
type SignonMsgSet struct {
	Sonrs Sonrs `xml:"SONRS"`
}

// Sonrs is the signon response.
type Sonrs struct {
	Status   Status `xml:"STATUS"`
	DtServer string `xml:"DTSERVER"`
	Language string `xml:"LANGUAGE"`
}

// Status is the OFX status aggregate.
type Status struct {
	Code     int    `xml:"CODE"`
	Severity string `xml:"SEVERITY"`
}

// BankMsgSet carries the bank statement response.
type BankMsgSet struct {
	StmtTrnRs StmtTrnRs `xml:"STMTTRNRS"`
}

// StmtTrnRs is the statement transaction response wrapper.
type StmtTrnRs struct {
	TrnUID string `xml:"TRNUID"`
	Status Status `xml:"STATUS"`
	StmtRs StmtRs `xml:"STMTRS"`
}

// StmtRs is the statement response.
type StmtRs struct {
	CurDef       string       `xml:"CURDEF"`
	BankAcctFrom BankAcctFrom `xml:"BANKACCTFROM"`
	TranList     TranList     `xml:"BANKTRANLIST"`
}

// BankAcctFrom identifies the account the statement belongs to.
type BankAcctFrom struct {
	BankID   string `xml:"BANKID"`
	AcctID   string `xml:"ACCTID"`
	AcctType string `xml:"ACCTTYPE"`
}

// TranList is the transaction list with its covered date range.
type TranList struct {
	DtStart string    `xml:"DTSTART,omitempty"`
	DtEnd   string    `xml:"DTEND,omitempty"`
	Trns    []StmtTrn `xml:"STMTTRN"`
}

// StmtTrn is a single statement transaction.
type StmtTrn struct {
	TrnType  string `xml:"TRNTYPE"`
	DtPosted string `xml:"DTPOSTED"`
	TrnAmt   string `xml:"TRNAMT"`
	FitID    string `xml:"FITID"`
	Name     string `xml:"NAME,omitempty"`
	Memo     string `xml:"MEMO,omitempty"`
}

// header precedes the OFX body; OFXHEADER 200 marks the XML variant.
const header = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<?OFX OFXHEADER="200" VERSION="211" SECURITY="NONE" OLDFILEUID="NONE" NEWFILEUID="NONE"?>
`

// Write serializes the statement as an OFX 2 document.
func Write(statement *models.Statement, w io.Writer) error {
	if statement == nil {
		return fmt.Errorf("cannot write nil statement")
	}

	doc := buildDocument(statement, time.Now().UTC())

	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("error writing OFX header: %w", err)
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("error encoding OFX document: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("error writing OFX trailer: %w", err)
	}
	return nil
}

// WriteFile serializes the statement to filePath, creating parent
// directories as needed.
func WriteFile(statement *models.Statement, filePath string) error {
	log.WithFields(logrus.Fields{
		"file":  filePath,
		"count": len(statement.Lines),
	}).Info("Writing OFX file")

	if err := os.MkdirAll(filepath.Dir(filePath), 0o750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating OFX file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Write(statement, file)
}

func buildDocument(statement *models.Statement, now time.Time) Document {
	okStatus := Status{Code: 0, Severity: "INFO"}

	trns := make([]StmtTrn, 0, len(statement.Lines))
	var dtStart, dtEnd time.Time
	for i, line := range statement.Lines {
		if i == 0 || line.Date.Before(dtStart) {
			dtStart = line.Date
		}
		if i == 0 || line.Date.After(dtEnd) {
			dtEnd = line.Date
		}
		trns = append(trns, StmtTrn{
			TrnType:  trnType(line),
			DtPosted: line.Date.Format(dtFormat),
			TrnAmt:   line.Amount.String(),
			FitID:    line.ID,
			Name:     line.Payee,
			Memo:     line.Memo,
		})
	}

	tranList := TranList{Trns: trns}
	if len(trns) > 0 {
		tranList.DtStart = dtStart.Format(dtFormat)
		tranList.DtEnd = dtEnd.Format(dtFormat)
	}

	return Document{
		Signon: SignonMsgSet{
			Sonrs: Sonrs{
				Status:   okStatus,
				DtServer: now.Format(dtTimeFormat),
				Language: "ENG",
			},
		},
		Bank: BankMsgSet{
			StmtTrnRs: StmtTrnRs{
				TrnUID: "0",
				Status: okStatus,
				StmtRs: StmtRs{
					CurDef: statement.Currency,
					BankAcctFrom: BankAcctFrom{
						BankID:   statement.BankID,
						AcctID:   statement.AccountID,
						AcctType: "CHECKING",
					},
					TranList: tranList,
				},
			},
		},
	}
}

// trnType maps the amount sign onto the OFX transaction type.
func trnType(line models.StatementLine) string {
	if line.Amount.IsNegative() {
		return "DEBIT"
	}
	return "CREDIT"
}
