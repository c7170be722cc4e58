package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a DIMACS-CNF stream back into its numbered form, comments and blank lines are skipped.
// Empty clauses (a lone "0") are kept.
func ParseDIMACS(r io.Reader) (SAT, error) {
	var sat SAT
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, DefaultBufferSize), 1<<30)

	declaredClauses := -1
	for scanner.Scan() {
		line := scanner.Text()
		// Skip comments
		if strings.HasPrefix(line, "c") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p cnf") {
			parts := strings.Fields(line)
			if len(parts) != 4 {
				return SAT{}, fmt.Errorf("invalid problem line: %s", line)
			}
			vars, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count: %w", err)
			}
			clauses, err := strconv.Atoi(parts[3])
			if err != nil {
				return SAT{}, fmt.Errorf("invalid clause count: %w", err)
			}
			sat.Variables = vars
			declaredClauses = clauses
			sat.Clauses = make([][]int64, 0, clauses)
			continue
		}
		// Clause line
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if declaredClauses < 0 {
			return SAT{}, fmt.Errorf("clause found before problem line: %s", line)
		}

		clause := make([]int64, 0, len(fields)-1)
		for _, litStr := range fields {
			lit, err := strconv.ParseInt(litStr, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal '%s': %w", litStr, err)
			}
			if lit == 0 {
				break
			}
			if lit > int64(sat.Variables) || -lit > int64(sat.Variables) {
				return SAT{}, fmt.Errorf("literal %d out of range for %d variables", lit, sat.Variables)
			}
			clause = append(clause, lit)
		}
		sat.Clauses = append(sat.Clauses, clause)
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("error reading DIMACS: %w", err)
	}
	if declaredClauses != len(sat.Clauses) {
		return SAT{}, fmt.Errorf("problem line declares %d clauses but %d were found", declaredClauses, len(sat.Clauses))
	}

	return sat, nil
}

func AssertSATSolution(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
