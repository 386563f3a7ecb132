package montecarlo

import (
	"context"
	"math"
	"testing"

	"github.com/rustyeddy/gbmsim/gbm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDriver(trials int) Driver {
	return Driver{
		Params: gbm.Params{
			InitialPrice:       100,
			Mu:                 0.07,
			Sigma:              0.20,
			HorizonYears:       1,
			TradingDaysPerYear: gbm.DefaultTradingDays,
		},
		Trials: trials,
		Seed:   42,
	}
}

func TestRunCollectsTrialsInOrder(t *testing.T) {
	t.Parallel()

	d := testDriver(50)
	summary, err := d.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.TrialFinalPrices, 50)
	require.Len(t, summary.Records, 50)

	// Trial i is fully reproducible from seed+i, regardless of which
	// worker ran it.
	for i, got := range summary.TrialFinalPrices {
		path, err := gbm.Generate(d.Params, gbm.NewSource(d.Seed+int64(i)))
		require.NoError(t, err)
		assert.Equal(t, path.Final(), got, "trial %d out of order", i)
		assert.Equal(t, got, summary.Records[i].FinalPrice)
	}
}

func TestRunReproducible(t *testing.T) {
	t.Parallel()

	a, err := testDriver(200).Run(context.Background())
	require.NoError(t, err)
	b, err := testDriver(200).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.TrialFinalPrices, b.TrialFinalPrices)
	assert.Equal(t, a.MeanFinalPrice, b.MeanFinalPrice)
	assert.Equal(t, a.LowerPercentile, b.LowerPercentile)
	assert.Equal(t, a.UpperPercentile, b.UpperPercentile)
	assert.Equal(t, a.ProbabilityOfLoss, b.ProbabilityOfLoss)
}

func TestRunInvalidParamsFailsFast(t *testing.T) {
	t.Parallel()

	d := testDriver(10)
	d.Params.InitialPrice = 0

	_, err := d.Run(context.Background())
	assert.ErrorIs(t, err, gbm.ErrInvalidParameter)
}

func TestRunRejectsZeroTrials(t *testing.T) {
	t.Parallel()

	d := testDriver(0)
	_, err := d.Run(context.Background())
	assert.ErrorIs(t, err, gbm.ErrInvalidParameter)
}

func TestRunRejectsBadBounds(t *testing.T) {
	t.Parallel()

	d := testDriver(10)
	d.LowerBound = 90
	d.UpperBound = 10

	_, err := d.Run(context.Background())
	assert.ErrorIs(t, err, gbm.ErrInvalidParameter)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testDriver(1000).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunZeroDriftDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	// mu = sigma^2/2 makes every trial's vol/drift ratio degenerate; the
	// batch must still complete with the degeneracy inside each record.
	d := testDriver(20)
	d.Params.Mu = 0.5 * d.Params.Sigma * d.Params.Sigma

	summary, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Records, 20)

	_, err = summary.Records[0].VolatilityToDriftRatio()
	assert.Error(t, err)
}

func TestProbabilityOfLossMatchesIndicators(t *testing.T) {
	t.Parallel()

	summary, err := testDriver(500).Run(context.Background())
	require.NoError(t, err)

	losses := 0
	for _, r := range summary.Records {
		if r.Loss {
			losses++
		}
	}
	assert.InDelta(t, float64(losses)/500, summary.ProbabilityOfLoss, 1e-15)
}

func TestProbabilityOfLossConverges(t *testing.T) {
	t.Parallel()

	// Under GBM, log(final/initial) ~ N((mu - sigma^2/2)T, sigma^2 T), so
	// P(loss) = Phi(-(mu - sigma^2/2) sqrt(T) / sigma). For mu=0.07,
	// sigma=0.20, T=1 that is Phi(-0.25) ~ 0.4013.
	d := testDriver(10000)
	summary, err := d.Run(context.Background())
	require.NoError(t, err)

	want := normalCDF(-(d.Params.Mu - 0.5*d.Params.Sigma*d.Params.Sigma) / d.Params.Sigma)
	assert.InDelta(t, want, summary.ProbabilityOfLoss, 0.02)
}

func TestMeanAndIntervalBracketed(t *testing.T) {
	t.Parallel()

	summary, err := testDriver(2000).Run(context.Background())
	require.NoError(t, err)

	assert.Less(t, summary.LowerPercentile, summary.MeanFinalPrice)
	assert.Greater(t, summary.UpperPercentile, summary.MeanFinalPrice)

	inside := 0
	for _, v := range summary.TrialFinalPrices {
		if v >= summary.LowerPercentile && v <= summary.UpperPercentile {
			inside++
		}
	}
	// The default 2.5/97.5 interval covers ~95% of trials.
	assert.InDelta(t, 0.95, float64(inside)/2000, 0.02)
}

func normalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}
