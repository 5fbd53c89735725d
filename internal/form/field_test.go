package form_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
)

var _ = Describe("Field", func() {
	It("lists nine fields in display order", func() {
		ids := []string{}
		for _, f := range form.Fields() {
			ids = append(ids, f.String())
		}
		Expect(ids).To(Equal([]string{"L1", "L2", "L3", "A1", "A2", "A3", "O1", "O2", "O3"}))
	})

	DescribeTable("labels",
		func(f form.Field, symbol, sub, unit string, group form.Group) {
			Expect(f.Symbol()).To(Equal(symbol))
			Expect(f.Subscript()).To(Equal(sub))
			Expect(f.Unit()).To(Equal(unit))
			Expect(f.Group()).To(Equal(group))
		},
		Entry("L1", form.L1, "L", "1", " m", form.Lengths),
		Entry("L3", form.L3, "L", "3", " m", form.Lengths),
		Entry("A2", form.A2, "θ", "2", "º", form.Angles),
		Entry("O1", form.O1, "ω", "1", " rad/s", form.Velocities),
		Entry("O3", form.O3, "ω", "3", " rad/s", form.Velocities),
	)

	It("parses identifiers case-insensitively", func() {
		f, err := form.ParseField(" a2 ")
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(form.A2))
	})

	It("rejects unknown identifiers", func() {
		_, err := form.ParseField("L4")
		Expect(err).To(MatchError(form.ErrUnknownField))
	})

	It("sets exactly one field", func() {
		for _, f := range form.Fields() {
			s := kinematics.Defaults()
			f.Set(&s, 42)
			Expect(f.Get(s)).To(Equal(42.0))
			for _, other := range form.Fields() {
				if other != f {
					Expect(other.Get(s)).To(Equal(other.Get(kinematics.Defaults())), "field %s changed by %s", other, f)
				}
			}
		}
	})
})

var _ = Describe("ParseValue", func() {
	DescribeTable("parse-or-zero",
		func(raw string, want float64) {
			Expect(form.ParseValue(raw)).To(Equal(want))
		},
		Entry("integer", "3", 3.0),
		Entry("decimal", "2.5", 2.5),
		Entry("negative", "-2", -2.0),
		Entry("leading dot", ".5", 0.5),
		Entry("trailing dot", "5.", 5.0),
		Entry("exponent", "1e2", 100.0),
		Entry("leading whitespace", "  7", 7.0),
		Entry("numeric prefix", "2.5abc", 2.5),
		Entry("second dot", "1.2.3", 1.2),
		Entry("dangling exponent", "4e", 4.0),
		Entry("letters", "abc", 0.0),
		Entry("empty", "", 0.0),
		Entry("lone minus", "-", 0.0),
		Entry("NaN text", "NaN", 0.0),
		Entry("infinity", "Infinity", 0.0),
		Entry("negative infinity", "-Infinity", 0.0),
		Entry("no-break space", "\u00a03", 3.0),
		Entry("byte order mark", "\ufeff1.5", 1.5),
		Entry("line separator", "\u2028\u2029-4", -4.0),
		Entry("ideographic space", "\u30002", 2.0),
		Entry("overflow", "1e400", 0.0),
	)

	It("formats values in shortest form", func() {
		Expect(form.FormatValue(1)).To(Equal("1"))
		Expect(form.FormatValue(2.5)).To(Equal("2.5"))
		Expect(form.FormatValue(-2)).To(Equal("-2"))
		Expect(form.FormatValue(310)).To(Equal("310"))
	})
})
