package diag

import (
	"fmt"
)

// Code identifies an error class. Ranges: 1xxx lexical, 2xxx grammar,
// 3xxx registry, 4xxx reconciliation.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnterminatedString Code = 1001
	LexUnexpectedChar     Code = 1002
	LexBadDataset         Code = 1003
	LexBadVarname         Code = 1004
	LexBadFuncname        Code = 1005

	// Grammar
	SynUnexpectedToken Code = 2001
	SynInvalidFormula  Code = 2002

	// Registry
	RegNotFound Code = 3001
	RegInUse    Code = 3002

	// Reconciliation
	ReconDuplicateName Code = 4001
	ReconUnknownRef    Code = 4002
	ReconForwardRef    Code = 4003
)

// ID returns a stable short identifier for the code.
func (c Code) ID() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
