package iiif_test

import (
	"github.com/greut/iiifcanon/iiif"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

// behavesLikeAParameter is shared by every parameter kind.
func behavesLikeAParameter(build func(string) iiif.Parameter, valids, invalids []string) {
	It("has a canonical value", func() {
		Expect(build(valids[0]).CanonicalValue()).NotTo(BeEmpty())
	})

	It("validates for valid values", func() {
		for _, valid := range valids {
			p := build(valid)
			Expect(p.IsValid()).To(BeTrue(), "%#v should be valid", valid)
			Expect(p.Validate()).To(Succeed())
		}
	})

	It("invalidates for invalid values", func() {
		for _, invalid := range invalids {
			p := build(invalid)
			Expect(p.IsValid()).To(BeFalse(), "%#v should be invalid", invalid)
			Expect(p.Validate()).To(BeAssignableToTypeOf(iiif.ValidationError{}))
		}
	})

	It("keeps the raw value in the validation error", func() {
		err := build(invalids[0]).Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.(iiif.ValidationError).Value).To(Equal(invalids[0]))
	})

	It("is stable once canonical", func() {
		for _, valid := range valids {
			once := build(valid).CanonicalValue()
			Expect(build(once).CanonicalValue()).To(Equal(once))
		}
	})
}

var _ = Describe("Region", func() {
	Context("as a parameter", func() {
		behavesLikeAParameter(
			func(v string) iiif.Parameter { return iiif.NewRegion(v, 100, 100) },
			[]string{"1,2,3,4", "pct:1,2,3,4", "full", "pct:0,0,100,100", "0,0,99.5,100", "0.5,0.5,99.5,99.5"},
			[]string{"not_valid", "pct:a,b,c,d", "ful", "a,b,c,d", "", "1,2,3"},
		)
	})

	Describe("#IsValid", func() {
		table.DescribeTable("is not valid",
			func(value string) {
				Expect(iiif.NewRegion(value, 101, 101).IsValid()).To(BeFalse())
			},
			table.Entry("with silly percentages", "pct:100,100,100,100"),
			table.Entry("with oversized start point", "110,110,100,100"),
			table.Entry("with oversized start point percentage", "pct:105,105,100,100"),
		)
	})

	Describe("#CanonicalValue", func() {
		It("keeps full when full", func() {
			Expect(iiif.NewRegion("full", 0, 0).CanonicalValue()).To(Equal("full"))
		})

		table.DescribeTable("formats x,y,w,h",
			func(value string, expected string) {
				Expect(iiif.NewRegion(value, 101, 101).CanonicalValue()).To(Equal(expected))
			},
			table.Entry("with math(s)", "100,100,100,100", "100,100,1,1"),
			table.Entry("when start point is overlarge", "110,110,100,100", "110,110,0,0"),
			table.Entry("with percentage", "pct:50,50,100,100", "50,50,51,51"),
			table.Entry("when percentage is 100", "pct:100,100,100,100", "101,101,0,0"),
			table.Entry("when percentage is greater than 100", "pct:105,105,100,100", "106,106,0,0"),
		)

		It("is full when the rounded rectangle covers the image", func() {
			Expect(iiif.NewRegion("pct:0,0,10,10", 1, 1).CanonicalValue()).To(Equal("full"))
			Expect(iiif.NewRegion("0.5,0,1,1", 1, 1).CanonicalValue()).To(Equal("full"))
		})
	})

	Describe("#IsFull and #IsPct", func() {
		table.DescribeTable("classifies",
			func(value string, full, pct bool) {
				r := iiif.NewRegion(value, 1, 1)
				Expect(r.IsFull()).To(Equal(full))
				Expect(r.IsPct()).To(Equal(pct))
			},
			table.Entry("full", "full", true, false),
			table.Entry("0,0,max_w,max_h", "0,0,100,100", true, false),
			table.Entry("pct:0,0,100,100", "pct:0,0,100,100", true, false),
			table.Entry("super-full", "pct:0,0,101,101", true, false),
			table.Entry("pct", "pct:0,0,10,10", false, true),
		)

		It("is not full when not full", func() {
			Expect(iiif.NewRegion("1,2,3,4", 100, 100).IsFull()).To(BeFalse())
		})
	})
})

var _ = Describe("Rotation", func() {
	Context("as a parameter", func() {
		behavesLikeAParameter(
			func(v string) iiif.Parameter { return iiif.NewRotation(v) },
			[]string{"0", "!0", "!180", "360", "!360", "0.1", "!0.1"},
			[]string{"361", "!361", "360.1", "!360.1", "-1", "!-1", "a39"},
		)
	})

	It("gives the angle as a float even when mirrored", func() {
		angle, ok := iiif.NewRotation("!360").Angle()
		Expect(ok).To(BeTrue())
		Expect(angle).To(Equal(360.0))
	})

	It("gives no angle when no match", func() {
		r := iiif.NewRotation("moomin")
		_, ok := r.Angle()
		Expect(ok).To(BeFalse())
		Expect(r.Mirror()).To(BeFalse())
	})
})

var _ = Describe("Size", func() {
	Context("as a parameter", func() {
		behavesLikeAParameter(
			func(v string) iiif.Parameter { return iiif.NewSize(v, 1084, 2318) },
			[]string{"full", "max", "400,", ",300", "pct:50", "400,300", "!400,300"},
			[]string{"10", "pct:0", "0,0", "!10,", "pct:-1", "10,10,10", ""},
		)
	})
})

var _ = Describe("Quality", func() {
	behavesLikeAParameter(
		func(v string) iiif.Parameter { return iiif.Quality(v) },
		[]string{"default", "color", "gray", "bitonal"},
		[]string{"grey", "native", ""},
	)
})

var _ = Describe("Format", func() {
	behavesLikeAParameter(
		func(v string) iiif.Parameter { return iiif.Format(v) },
		[]string{"jpg", "tif", "png", "gif", "jp2", "pdf", "webp"},
		[]string{"jpeg", "tiff", "svg", ""},
	)
})
