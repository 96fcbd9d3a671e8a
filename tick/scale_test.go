package tick_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"itimer/tick"
)

var _ = Describe("Scale", func() {
	var (
		queries int
		counter = tick.Scale{
			Variant: tick.Counter,
			Frequency: func() float64 {
				queries++
				return 10_000_000
			},
		}
		nano  = tick.Scale{Variant: tick.Nanosecond}
		micro = tick.Scale{Variant: tick.Microsecond}
	)
	BeforeEach(func() { queries = 0 })
	DescribeTable("Conversions",
		func(s tick.Scale, ticks int64, sec, ms, us float64, d time.Duration) {
			Expect(s.Seconds(ticks)).To(BeNumerically("~", sec, 1e-12))
			Expect(s.Milliseconds(ticks)).To(BeNumerically("~", ms, 1e-9))
			Expect(s.Microseconds(ticks)).To(BeNumerically("~", us, 1e-6))
			Expect(s.Duration(ticks)).To(Equal(d))
		},
		Entry("counter", counter, int64(25_000_000), 2.5, 2500.0, 2_500_000.0, 2500*time.Millisecond),
		Entry("nanosecond", nano, int64(1_500), 1.5e-6, 1.5e-3, 1.5, 1500*time.Nanosecond),
		Entry("microsecond", micro, int64(1_500), 1.5e-3, 1.5, 1500.0, 1500*time.Microsecond),
		Entry("negative", nano, int64(-2_000), -2e-6, -2e-3, -2.0, -2*time.Microsecond),
	)
	DescribeTable("Ticks",
		func(s tick.Scale, sec float64, expected int64) {
			Expect(s.Ticks(sec)).To(Equal(expected))
		},
		Entry("counter one second", counter, 1.0, int64(10_000_000)),
		Entry("counter one microsecond", counter, 1e-6, int64(10)),
		Entry("nanosecond one microsecond", nano, 1e-6, int64(1_000)),
		Entry("nanosecond one millisecond", nano, 1e-3, int64(1_000_000)),
		Entry("microsecond one microsecond", micro, 1e-6, int64(1)),
		Entry("microsecond sub tick", micro, 4e-7, int64(0)),
		Entry("microsecond negative", micro, -0.25, int64(-250_000)),
	)
	Describe("FromDuration", func() {
		It("Should convert exactly on the nanosecond variant", func() {
			Expect(nano.FromDuration(1234 * time.Nanosecond)).To(Equal(int64(1234)))
		})
		It("Should round to the nearest microsecond on the microsecond variant", func() {
			Expect(micro.FromDuration(1600 * time.Nanosecond)).To(Equal(int64(2)))
		})
		It("Should scale by the counter frequency", func() {
			Expect(counter.FromDuration(time.Second)).To(Equal(int64(10_000_000)))
		})
	})
	Describe("Frequency queries", func() {
		It("Should query the counter frequency on every conversion", func() {
			counter.Seconds(1)
			counter.Milliseconds(1)
			counter.Microseconds(1)
			counter.Ticks(1)
			Expect(queries).To(Equal(4))
		})
		It("Should never query the frequency on the fixed variants", func() {
			Expect(func() {
				nano.Seconds(1)
				micro.Ticks(1)
			}).ToNot(Panic())
		})
	})
	Describe("Unknown variants", func() {
		It("Should panic", func() {
			Expect(func() { tick.Scale{}.Seconds(1) }).To(Panic())
		})
	})
	Describe("Variant", func() {
		It("Should have a readable name", func() {
			Expect(tick.Counter.String()).To(Equal("counter"))
			Expect(tick.Nanosecond.String()).To(Equal("nanosecond"))
			Expect(tick.Microsecond.String()).To(Equal("microsecond"))
			Expect(tick.Variant(0).String()).To(Equal("unknown"))
		})
	})
})
