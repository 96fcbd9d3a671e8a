package alamos_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"itimer/alamos"
)

var _ = Describe("Metric", func() {
	var (
		exp alamos.Experiment
	)
	BeforeEach(func() {
		exp = alamos.New("test")
	})
	Describe("Series", func() {
		It("Should create a Series entry", func() {
			Expect(func() {
				alamos.NewSeries[int8](exp, "test.series")
			}).ToNot(Panic())
		})
		It("Should show up in the list of entries", func() {
			alamos.NewSeries[int8](exp, "test.series")
			_, ok := exp.Entries()["test.series"]
			Expect(ok).To(BeTrue())
		})
		It("Should be exposed as an Entry", func() {
			series := alamos.NewSeries[int8](exp, "test.series")
			var e alamos.Entry = exp.Entries()["test.series"]
			Expect(e).To(BeIdenticalTo(alamos.Entry(series)))
		})
		It("Should record values to the series", func() {
			series := alamos.NewSeries[float64](exp, "test.series")
			series.Record(1.0)
			series.Record(2.0)
			Expect(series.Values()).To(Equal([]float64{1, 2}))
			Expect(series.Count()).To(Equal(2))
		})
	})
	Describe("Gauge", func() {
		It("Should create a Gauge entry", func() {
			Expect(func() { alamos.NewGauge[int8](exp, "test.gauge") }).ToNot(Panic())
		})
		It("Should keep the last value recorded", func() {
			gauge := alamos.NewGauge[float64](exp, "test.gauge")
			Expect(gauge.Values()).To(BeEmpty())
			gauge.Record(1)
			gauge.Record(3)
			Expect(gauge.Values()).To(Equal([]float64{3}))
			Expect(gauge.Count()).To(Equal(2))
		})
	})
	Describe("Nil experiment", func() {
		It("Should return metrics that record nothing", func() {
			series := alamos.NewSeries[int](nil, "test.series")
			series.Record(1)
			Expect(series.Values()).To(BeNil())
			Expect(series.Count()).To(BeZero())
			gauge := alamos.NewGauge[int](nil, "test.gauge")
			gauge.Record(1)
			Expect(gauge.Count()).To(BeZero())
		})
		It("Should not create sub experiments", func() {
			Expect(alamos.Sub(nil, "sub")).To(BeNil())
		})
	})
})
