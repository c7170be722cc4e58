package sat_test

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/K0bin/twoless/pkg/sat"
)

type fakeInstance struct {
	header  string
	clauses []sat.Clause
}

func (instance fakeInstance) Header() string { return instance.header }

func (instance fakeInstance) Clauses() iter.Seq[sat.Clause] { return slices.Values(instance.clauses) }

func (instance fakeInstance) Describe(variable sat.Variable) string {
	return fmt.Sprintf("T%d at %d", variable.Triplet, variable.Position)
}

type failingWriter struct {
	after int
}

func (writer *failingWriter) Write(p []byte) (int, error) {
	if writer.after < len(p) {
		return 0, errors.New("disk full")
	}
	writer.after -= len(p)
	return len(p), nil
}

var _ = Describe("WriteDIMACS", func() {
	instance := fakeInstance{
		header: "fake instance",
		clauses: []sat.Clause{
			{sat.Positive(4, 1), sat.Positive(2, 1)},
			{sat.Negative(2, 1), sat.Negative(2, 2)},
			{sat.Negative(4, 1), sat.Positive(6, 2)},
		},
	}

	It("should write the exact layout", func() {
		var buffer bytes.Buffer
		stats, err := sat.WriteDIMACS(&buffer, instance)

		Expect(err).ToNot(HaveOccurred())
		Expect(stats).To(Equal(sat.Stats{Variables: 4, Clauses: 3}))
		Expect(buffer.String()).To(Equal(`c fake instance

p cnf 4 3

c VAR 1: T4 at 1
c VAR 2: T2 at 1
c VAR 3: T2 at 2
c VAR 4: T6 at 2

1 2 0
-2 -3 0
-1 4 0
`))
	})

	It("should omit variable comments on request", func() {
		var buffer bytes.Buffer
		_, err := sat.WriteDIMACS(&buffer, instance, sat.WithoutComments(), sat.WithBufferSize(16))

		Expect(err).ToNot(HaveOccurred())
		Expect(buffer.String()).To(Equal("c fake instance\n\np cnf 4 3\n\n\n1 2 0\n-2 -3 0\n-1 4 0\n"))
	})

	It("should write an empty clause as a lone terminator", func() {
		var buffer bytes.Buffer
		stats, err := sat.WriteDIMACS(&buffer, fakeInstance{header: "empty", clauses: []sat.Clause{{}}})

		Expect(err).ToNot(HaveOccurred())
		Expect(stats).To(Equal(sat.Stats{Variables: 0, Clauses: 1}))
		Expect(buffer.String()).To(Equal("c empty\n\np cnf 0 1\n\n\n0\n"))
	})

	It("should be parsed back into the materialized instance", func() {
		var buffer bytes.Buffer
		_, err := sat.WriteDIMACS(&buffer, instance)
		Expect(err).ToNot(HaveOccurred())

		parsed, err := sat.ParseDIMACS(&buffer)
		Expect(err).ToNot(HaveOccurred())

		materialized, _ := sat.Materialize(instance)
		Expect(parsed).To(Equal(materialized))
	})

	It("should produce identical output across runs", func() {
		var first, second bytes.Buffer
		_, err := sat.WriteDIMACS(&first, instance)
		Expect(err).ToNot(HaveOccurred())
		_, err = sat.WriteDIMACS(&second, instance)
		Expect(err).ToNot(HaveOccurred())

		Expect(first.Bytes()).To(Equal(second.Bytes()))
	})

	It("should report write failures", func() {
		_, err := sat.WriteDIMACS(&failingWriter{after: 10}, instance, sat.WithBufferSize(16))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("disk full"))
	})
})

var _ = Describe("ParseDIMACS", func() {
	It("should fail if a clause precedes the header", func() {
		_, err := sat.ParseDIMACS(strings.NewReader("1 2 0\np cnf 2 1\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail if the clause count differs from the header", func() {
		_, err := sat.ParseDIMACS(strings.NewReader("p cnf 2 2\n1 2 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on out of range literals", func() {
		_, err := sat.ParseDIMACS(strings.NewReader("p cnf 2 1\n1 3 0\n"))
		Expect(err).To(HaveOccurred())
	})
})
