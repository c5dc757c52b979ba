package rfmatch_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rfmatch"
	"rfmatch/element"
	"rfmatch/load"
	"rfmatch/smith"
	"rfmatch/unit"
)

const netlist = `.z0 50
.freq 280GHz
.points 16
.source 42.4 -19.6
sc 1 [series] [0Q, 20fF]
tl 2 [100, 100um, 1, 50]
pi 3 [shunt] [0Q, 45pH]
ss 4 [50, 0.1λ]
xfmr 5 [0Q, 20pH, 30pH, 0.8K]
bb 6 [10, -5]
`

func newElement(tag string, orient element.Orientation, params ...element.Param) element.Element {
	e, err := element.New(tag, params, orient)
	Expect(err).NotTo(HaveOccurred())
	return e
}

var _ = Describe("Cascade", func() {
	var cas *rfmatch.Cascade

	BeforeEach(func() {
		design, err := load.LoadString(netlist)
		Expect(err).NotTo(HaveOccurred())
		cas, err = rfmatch.FromDesign(design)
		Expect(err).NotTo(HaveOccurred())
	})

	It("builds every element of the design", func() {
		Expect(cas.Elements).To(HaveLen(6))
		Expect(cas.Points).To(Equal(16))
		Expect(cas.Z0).To(Equal(50.0))
		Expect(cas.Freq.Freq()).To(BeNumerically("~", 280e9, 1e-3))
		Expect(cas.Input(-1)).To(Equal(complex(42.4, -19.6) / 50))
	})

	It("traces one arc per element with points+1 samples", func() {
		traces, err := cas.Trace(false)
		Expect(err).NotTo(HaveOccurred())
		Expect(traces).To(HaveLen(len(cas.Elements)))
		for _, trace := range traces {
			Expect(trace.X).To(HaveLen(cas.Points + 1))
			Expect(trace.Y).To(HaveLen(cas.Points + 1))
		}
	})

	It("starts each arc where the previous one ended", func() {
		traces, err := cas.Trace(false)
		Expect(err).NotTo(HaveOccurred())
		for i := range traces {
			start := smith.ToChartC(cas.Input(i-1), false, false)
			Expect(traces[i].X[0]).To(BeNumerically("~", real(start), 1e-9), "arc %d start x", i)
			Expect(traces[i].Y[0]).To(BeNumerically("~", imag(start), 1e-9), "arc %d start y", i)
			if i > 0 {
				last := traces[i-1].Last()
				Expect(traces[i].X[0]).To(BeNumerically("~", real(last), 1e-9), "arc %d joins x", i)
				Expect(traces[i].Y[0]).To(BeNumerically("~", imag(last), 1e-9), "arc %d joins y", i)
			}
		}
	})

	It("reports the final impedance and reflection coefficient", func() {
		z := cas.Impedance()
		zin := cas.Input(len(cas.Elements) - 1)
		Expect(real(z)).To(BeNumerically("~", 50*real(zin), 1e-9))
		Expect(imag(z)).To(BeNumerically("~", 50*imag(zin), 1e-9))
		g := cas.Gamma()
		want := smith.ToChartC(z/50, false, false)
		Expect(real(g)).To(BeNumerically("~", real(want), 1e-12))
		Expect(imag(g)).To(BeNumerically("~", imag(want), 1e-12))
	})

	It("rejects invalid settings", func() {
		cas.Points = 0
		_, err := cas.Trace(false)
		Expect(err).To(MatchError(smith.ErrResolution))

		cas.Points = 10
		cas.Z0 = 0
		_, err = cas.Trace(false)
		Expect(err).To(MatchError(rfmatch.ErrZ0))
	})

	Context("built by hand", func() {
		It("matches a series and shunt pair", func() {
			f := unit.NewFrequency(280, unit.Giga)
			hand := rfmatch.NewCascade(50, f, complex(25, 0))
			hand.Add(
				newElement("sr", element.Series, element.P(25, unit.Base)),
				newElement("pr", element.Shunt, element.P(100, unit.Base)),
			)
			Expect(hand.Input(0)).To(Equal(complex(1, 0)))
			Expect(real(hand.Impedance())).To(BeNumerically("~", 100.0/3, 1e-9))
			traces, err := hand.Trace(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(traces).To(HaveLen(2))
			Expect(traces[0].Last()).To(Equal(complex(0, 0)))
		})

		It("returns the source when empty", func() {
			empty := rfmatch.NewCascade(50, unit.NewFrequency(1, unit.Giga), complex(75, 10))
			Expect(empty.Impedance()).To(Equal(complex(75, 10)))
			traces, err := empty.Trace(false)
			Expect(err).NotTo(HaveOccurred())
			Expect(traces).To(BeEmpty())
		})
	})

	Context("loading from disk", func() {
		It("reads a netlist file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "chain.net")
			Expect(os.WriteFile(path, []byte(netlist), 0o644)).To(Succeed())
			fromFile, err := rfmatch.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(fromFile.Impedance()).To(Equal(cas.Impedance()))
		})

		It("wraps unknown element types", func() {
			design, err := load.LoadString(strings.Replace(netlist, "bb 6", "zz 6", 1))
			Expect(err).NotTo(HaveOccurred())
			_, err = rfmatch.FromDesign(design)
			Expect(err).To(MatchError(element.ErrNotRecognized))
		})
	})
})
