package form_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
)

var _ = Describe("Render", func() {
	It("groups the inputs under three headings", func() {
		v := form.Render(kinematics.Defaults())
		Expect(v.Title).To(Equal(form.Title))
		Expect(v.Groups).To(HaveLen(3))

		names := []string{}
		for _, g := range v.Groups {
			names = append(names, g.Name)
			Expect(g.Inputs).To(HaveLen(3))
		}
		Expect(names).To(Equal([]string{"Lengths", "Angles", "Velocities"}))
	})

	It("pre-fills inputs with the current values", func() {
		v := form.Render(kinematics.Defaults())
		values := []string{}
		for _, g := range v.Groups {
			for _, in := range g.Inputs {
				values = append(values, in.Value)
			}
		}
		Expect(values).To(Equal([]string{"1", "1", "1", "25", "310", "60", "4", "-2", "6"}))
		Expect(v.Groups[1].Inputs[2]).To(Equal(form.Input{
			Field: form.A3, Symbol: "θ", Subscript: "3", Unit: "º", Value: "60",
		}))
	})

	It("formats the demonstration results", func() {
		r := form.Render(kinematics.Defaults()).Results
		Expect(r.Position).To(Equal("(2.632 m, 0.574 m, 35º)"))
		Expect(r.Velocity).To(Equal("(-5.434 m/s, 11.991 m/s, 8 rad/s)"))
	})

	It("does not truncate the heading or its rate", func() {
		s := kinematics.Defaults()
		s.Theta3 = 60.25
		s.Omega3 = 6.125
		r := form.Render(s).Results
		Expect(r.Position).To(HaveSuffix(", 35.25º)"))
		Expect(r.Velocity).To(HaveSuffix(", 8.125 rad/s)"))
	})

	It("is idempotent", func() {
		s := kinematics.Defaults()
		Expect(form.Render(s)).To(Equal(form.Render(s)))
	})
})
