package quadrature

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/notargets/gotab/utils"
)

const (
	DefaultNewtonTolerance     = 1.0e-8
	DefaultNewtonMaxIterations = 100
)

// Settings controls the Newton iteration used for Gauss-Jacobi roots
type Settings struct {
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`
	MaxIterations int     `json:"maxIterations" yaml:"maxIterations"`
	// Strict turns an iteration cap hit into ErrConvergenceNotVerified
	// instead of a logged warning
	Strict bool `json:"strict" yaml:"strict"`
}

func DefaultSettings() Settings {
	return Settings{
		Tolerance:     DefaultNewtonTolerance,
		MaxIterations: DefaultNewtonMaxIterations,
	}
}

// Engine carries the Newton settings and a logger. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	settings Settings
	logger   *slog.Logger
}

var defaultEngine = NewEngine(DefaultSettings(), nil)

// NewEngine builds an engine, zero valued settings fall back to the defaults
func NewEngine(settings Settings, logger *slog.Logger) *Engine {
	if settings.Tolerance <= 0 {
		settings.Tolerance = DefaultNewtonTolerance
	}
	if settings.MaxIterations <= 0 {
		settings.MaxIterations = DefaultNewtonMaxIterations
	}
	return &Engine{settings: settings, logger: logger}
}

func (e *Engine) Settings() Settings { return e.settings }

func (e *Engine) log() *slog.Logger {
	if e.logger == nil {
		return slog.Default()
	}
	return e.logger
}

// GaussJacobiPoints computes the m roots of P_m^(a,0) on [-1,1] in ascending
// order, by Newton iteration with deflation against the roots already found.
func (e *Engine) GaussJacobiPoints(a float64, m int) (x []float64, err error) {
	if m < 0 {
		err = fmt.Errorf("%w: negative point count %d", ErrInvalidArgument, m)
		return
	}
	x = make([]float64, m)
	for k := 0; k < m; k++ {
		// Chebyshev estimate, pulled towards the previous root
		x[k] = -math.Cos((2*float64(k) + 1) * math.Pi / (2 * float64(m)))
		if k > 0 {
			x[k] = 0.5 * (x[k] + x[k-1])
		}
		var (
			delta     float64
			converged bool
		)
		for j := 0; j < e.settings.MaxIterations; j++ {
			var s float64
			for i := 0; i < k; i++ {
				s += 1 / (x[k] - x[i])
			}
			f := JacobiDerivatives(a, m, 1, x[k:k+1])
			delta = f[0][0] / (f[1][0] - f[0][0]*s)
			x[k] -= delta
			if math.Abs(delta) < e.settings.Tolerance {
				converged = true
				break
			}
		}
		if !converged {
			residual := JacobiDerivatives(a, m, 0, x[k:k+1])[0][0]
			if e.settings.Strict {
				err = fmt.Errorf("%w: root %d of P_%d^(%g,0), last step %g, residual %g",
					ErrConvergenceNotVerified, k, m, a, delta, residual)
				return nil, err
			}
			e.log().Warn("gauss-jacobi root not converged",
				"a", a, "m", m, "root", k, "step", delta, "residual", residual,
				"maxIterations", e.settings.MaxIterations)
		}
	}
	return
}

// GaussJacobiRule returns the m point Gauss-Jacobi rule for the weight
// (1-x)^a on [-1,1]
func (e *Engine) GaussJacobiRule(a float64, m int) (pts, wts []float64, err error) {
	if pts, err = e.GaussJacobiPoints(a, m); err != nil {
		return
	}
	var (
		Jd = JacobiDerivatives(a, m, 1, pts)[1]
		a6 = math.Pow(2, a+1) * math.Gamma(float64(m)+1) / utils.Factorial(m)
	)
	wts = make([]float64, m)
	for i, x := range pts {
		wts[i] = a6 / (1 - x*x) / (Jd[i] * Jd[i])
	}
	return
}

func GaussJacobiPoints(a float64, m int) ([]float64, error) {
	return defaultEngine.GaussJacobiPoints(a, m)
}

func GaussJacobiRule(a float64, m int) (pts, wts []float64, err error) {
	return defaultEngine.GaussJacobiRule(a, m)
}
