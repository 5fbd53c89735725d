package form_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
)

var _ = Describe("Store", func() {
	var st *form.Store

	BeforeEach(func() {
		st = form.NewStore(kinematics.Defaults())
	})

	It("starts with the demonstration state", func() {
		Expect(st.State()).To(Equal(kinematics.Defaults()))
	})

	It("updates one field and recomputes the results", func() {
		Expect(st.Edit(form.L1, "2.5")).To(Equal(2.5))

		want := kinematics.Defaults()
		want.L1 = 2.5
		Expect(st.State()).To(Equal(want))

		v := st.View()
		Expect(v.Groups[0].Inputs[0].Value).To(Equal("2.5"))
		Expect(v.Results.Position).To(Equal("(3.991 m, 1.208 m, 35º)"))
		Expect(v.Results.Output.X).To(BeNumerically("~", 3.9912292989172666, 1e-9))
	})

	It("stores zero for malformed text instead of keeping the old value", func() {
		Expect(st.EditID("A2", "abc")).To(Succeed())
		Expect(st.State().Theta2).To(Equal(0.0))
		Expect(st.View().Results.Position).To(Equal("(1.900 m, 1.841 m, 85º)"))
	})

	It("returns an error for unknown identifiers and leaves the state alone", func() {
		Expect(st.EditID("Z9", "1")).To(MatchError(form.ErrUnknownField))
		Expect(st.State()).To(Equal(kinematics.Defaults()))
	})

	It("ignores out-of-range fields", func() {
		Expect(st.Edit(form.Field(42), "1")).To(Equal(0.0))
		Expect(st.State()).To(Equal(kinematics.Defaults()))
	})

	It("accepts physically meaningless values", func() {
		st.Edit(form.L2, "-3")
		st.Edit(form.A3, "7200")
		Expect(st.State().L2).To(Equal(-3.0))
		Expect(st.State().Theta3).To(Equal(7200.0))
	})

	It("resets to the initial state", func() {
		st.Edit(form.O1, "9")
		st.Reset()
		Expect(st.State()).To(Equal(kinematics.Defaults()))
	})
})
