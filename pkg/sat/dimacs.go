package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	log "github.com/golang/glog"
)

const DefaultBufferSize = 64 * 1024

type Stats struct {
	Variables uint64
	Clauses   uint64
}

type writeOptions struct {
	comments   bool
	bufferSize int
}

type Option func(*writeOptions)

// WithoutComments drops the "c VAR" block, the surrounding layout is kept
func WithoutComments() Option {
	return func(options *writeOptions) {
		options.comments = false
	}
}

func WithBufferSize(size int) Option {
	return func(options *writeOptions) {
		if size > 0 {
			options.bufferSize = size
		}
	}
}

// WriteDIMACS serializes the instance into DIMACS-CNF:
//
//	c <header>
//
//	p cnf <variables> <clauses>
//
//	c VAR <id>: <description>
//	...
//
//	<literal> <literal> ... 0
//	...
//
// The clauses are ranged over twice, once to number the variables and once to write them,
// so the instance is never held in memory.
func WriteDIMACS(w io.Writer, instance Instance, options ...Option) (Stats, error) {
	settings := writeOptions{comments: true, bufferSize: DefaultBufferSize}
	for _, option := range options {
		option(&settings)
	}

	start := time.Now()
	numbering, clauses := Number(instance)
	stats := Stats{Variables: uint64(numbering.Len()), Clauses: clauses}
	log.V(1).Infof("numbered %v variables over %v clauses in %v", stats.Variables, stats.Clauses, time.Since(start))

	writer := bufio.NewWriterSize(w, settings.bufferSize)

	fmt.Fprintf(writer, "c %v\n", instance.Header())
	writer.WriteString("\n")
	fmt.Fprintf(writer, "p cnf %d %d\n", stats.Variables, stats.Clauses)
	writer.WriteString("\n")
	if settings.comments {
		for i, variable := range numbering.Variables() {
			fmt.Fprintf(writer, "c VAR %d: %v\n", i+1, instance.Describe(variable))
		}
	}
	if _, err := writer.WriteString("\n"); err != nil {
		return Stats{}, fmt.Errorf("failed to write DIMACS preamble: %w", err)
	}

	start = time.Now()
	line := make([]byte, 0, 64)
	for clause := range instance.Clauses() {
		line = line[:0]
		for _, literal := range clause {
			line = strconv.AppendInt(line, numbering.Dimacs(literal), 10)
			line = append(line, ' ')
		}
		line = append(line, '0', '\n')

		if _, err := writer.Write(line); err != nil {
			return Stats{}, fmt.Errorf("failed to write DIMACS clause: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return Stats{}, fmt.Errorf("failed to flush DIMACS output: %w", err)
	}
	log.V(1).Infof("wrote %v clauses in %v", stats.Clauses, time.Since(start))

	return stats, nil
}
