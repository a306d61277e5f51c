// Package model - OPB exchange encoding.
//
// The pseudo-boolean OPB text format is what the external optimizer reads:
//
//	* #variable= 3 #constraint= 2
//	min: +1 x1 +1 x2 +1 x3 ;
//	+1 x1 +1 x2 >= 1 ;
//	+1 x2 +1 x3 >= 1 ;
//
// VarID v is written as "x<v+1>" (OPB variables are 1-based); ParseOPBName
// is the exact inverse. ReadOPB decodes the subset WriteOPB emits, with no
// limit on line length.
package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrBadVarName indicates an OPB variable name that is not "x<positive int>".
	ErrBadVarName = errors.New("model: malformed OPB variable name")
	// ErrBadOPB indicates OPB text outside the subset written by WriteOPB.
	ErrBadOPB = errors.New("model: malformed OPB input")
)

// opbPrefix prefixes every OPB variable name.
const opbPrefix = "x"

// OPBName returns the OPB variable name of v.
func OPBName(v VarID) string {
	return opbPrefix + strconv.Itoa(int(v)+1)
}

// ParseOPBName decodes a name produced by OPBName.
func ParseOPBName(name string) (VarID, error) {
	digits, ok := strings.CutPrefix(name, opbPrefix)
	if !ok || digits == "" {
		return 0, ErrBadVarName
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 || digits[0] == '+' {
		return 0, ErrBadVarName
	}

	return VarID(n - 1), nil
}

// WriteOPB serializes m in OPB format.
func (m *Model) WriteOPB(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "* #variable= %d #constraint= %d\n", m.NumVars(), len(m.Constraints))
	fmt.Fprintf(bw, "* shape= %s threshold= %d\n", shapeKey(m.Shape), m.Threshold)

	bw.WriteString("min:")
	for v := 0; v < m.NumVars(); v++ {
		bw.WriteString(" +1 ")
		bw.WriteString(OPBName(VarID(v)))
	}
	bw.WriteString(" ;\n")

	for _, c := range m.Constraints {
		for i, v := range c.Vars {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString("+1 ")
			bw.WriteString(OPBName(v))
		}
		bw.WriteString(" >= 1 ;\n")
	}

	return bw.Flush()
}

func shapeKey(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, "x")
}

// OPBProblem is a covering program decoded from OPB text.
type OPBProblem struct {
	// Objective lists the variables of "min: Σ x".
	Objective []VarID
	// Constraints lists the variables of every "Σ x ≥ 1" row, in file order.
	Constraints [][]VarID
}

// ReadOPB decodes unit-weight minimization and "≥ 1" rows as written by
// WriteOPB. Comment lines ("*") are skipped. Variable names are decoded with
// ParseOPBName. Any other statement yields ErrBadOPB.
func ReadOPB(r io.Reader) (*OPBProblem, error) {
	var (
		br        = bufio.NewReader(r)
		p         = &OPBProblem{}
		objective = false
	)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		text := strings.TrimSpace(line)
		if text != "" && text[0] != '*' {
			if perr := p.parseStatement(strings.Fields(text), &objective); perr != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadOPB, lineNo, perr)
			}
		}
		if err == io.EOF {
			return p, nil
		}
	}
}

func (p *OPBProblem) parseStatement(fields []string, objective *bool) error {
	n := len(fields)
	if n == 0 || fields[n-1] != ";" {
		return errors.New("statement must end with \" ;\"")
	}
	if fields[0] == "min:" {
		if *objective {
			return errors.New("second objective")
		}
		vars, err := parseTerms(fields[1 : n-1])
		if err != nil {
			return err
		}
		*objective = true
		p.Objective = vars

		return nil
	}
	if n < 3 || fields[n-3] != ">=" || fields[n-2] != "1" {
		return errors.New("only \">= 1\" constraints are supported")
	}
	vars, err := parseTerms(fields[:n-3])
	if err != nil {
		return err
	}
	if len(vars) == 0 {
		return errors.New("constraint without terms")
	}
	p.Constraints = append(p.Constraints, vars)

	return nil
}

// parseTerms decodes "+1 x<i>" pairs.
func parseTerms(fields []string) ([]VarID, error) {
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("dangling term %q", fields[len(fields)-1])
	}
	vars := make([]VarID, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		if fields[i] != "+1" {
			return nil, fmt.Errorf("unsupported coefficient %q", fields[i])
		}
		v, err := ParseOPBName(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", fields[i+1], err)
		}
		vars = append(vars, v)
	}

	return vars, nil
}
