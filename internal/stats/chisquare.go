package stats

import "math"

// ChiSquareSurvival returns P(X >= x) for a chi-squared random variable with
// df degrees of freedom, i.e. the p-value of a chi-squared test statistic.
// Returns NaN for invalid inputs.
func ChiSquareSurvival(x float64, df int) float64 {
	if df <= 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if x <= 0 {
		return 1
	}
	return regularizedGammaQ(float64(df)/2, x/2)
}

const (
	gammaEpsilon  = 1e-14
	gammaMaxIters = 1000
)

// regularizedGammaQ computes Q(a, x) = 1 - P(a, x), the regularized upper
// incomplete gamma function. Series expansion for x < a+1, continued
// fraction (modified Lentz) otherwise.
func regularizedGammaQ(a, x float64) float64 {
	if x < a+1 {
		return 1 - regularizedGammaPSeries(a, x)
	}
	return regularizedGammaQFraction(a, x)
}

// regularizedGammaPSeries computes P(a, x) by its power series.
func regularizedGammaPSeries(a, x float64) float64 {
	if x == 0 {
		return 0
	}
	ap := a
	sum := 1 / a
	del := sum
	for i := 0; i < gammaMaxIters; i++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*gammaEpsilon {
			break
		}
	}
	lg, _ := math.Lgamma(a)
	return sum * math.Exp(-x+a*math.Log(x)-lg)
}

// regularizedGammaQFraction computes Q(a, x) by its continued fraction.
func regularizedGammaQFraction(a, x float64) float64 {
	const tiny = 1e-300

	b := x + 1 - a
	c := 1 / tiny
	d := 1 / b
	h := d
	for i := 1; i <= gammaMaxIters; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = b + an/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < gammaEpsilon {
			break
		}
	}
	lg, _ := math.Lgamma(a)
	return math.Exp(-x+a*math.Log(x)-lg) * h
}
