// Command txbench times transform contexts across sizes and optionally
// checks forward FFT and real FFT output against gonum.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"

	tx "github.com/cwbudde/algo-tx"
)

type benchResult struct {
	size    int
	codelet string
	nsPerOp float64
	maxErr  float64
	checked bool
}

func main() {
	var (
		typeName = flag.String("type", "double_fft", "transform type (see -list)")
		sizeList = flag.String("sizes", "256,480,1024,1920,4096", "comma-separated sizes")
		iters    = flag.Int("iters", 1000, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		inverse  = flag.Bool("inverse", false, "benchmark the inverse transform")
		seed     = flag.Int64("seed", 1, "rng seed")
		list     = flag.Bool("list", false, "list transform types and exit")
		verify   = flag.Bool("verify", false, "compare forward FFT/RDFT output with gonum")
		generic  = flag.Bool("generic", false, "restrict strategy selection to pure Go codelets")
	)
	flag.Parse()

	if *list {
		for _, typ := range tx.Types() {
			fmt.Println(typ)
		}

		return
	}

	typ, err := tx.ParseType(*typeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Fprintln(os.Stderr, "no sizes specified")
		os.Exit(2)
	}

	var opts []tx.Option
	if *generic {
		opts = append(opts, tx.WithForceGeneric())
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("type=%s inverse=%v iters=%d warmup=%d\n", typ, *inverse, *iters, *warmup)
	fmt.Printf("%8s  %10s  %12s  %12s\n", "size", "codelet", "ns/op", "max err")

	for _, n := range sizes {
		res, err := benchmarkSize(rnd, typ, *inverse, n, *iters, *warmup, *verify, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "size %d: %v\n", n, err)
			continue
		}

		errCol := "-"
		if res.checked {
			errCol = fmt.Sprintf("%.3g", res.maxErr)
		}

		fmt.Printf("%8d  %10s  %12.1f  %12s\n", res.size, res.codelet, res.nsPerOp, errCol)
	}
}

func benchmarkSize(rnd *rand.Rand, typ tx.Type, inverse bool, n, iters, warmup int, verify bool, opts []tx.Option) (benchResult, error) {
	ctx, fn, err := tx.New(typ, inverse, n, 0, 0, opts...)
	if err != nil {
		return benchResult{}, err
	}
	defer tx.Destroy(&ctx)

	out, in, err := buffers(rnd, typ, inverse, n)
	if err != nil {
		return benchResult{}, err
	}

	for range warmup {
		fn(ctx, out, in, 1)
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		fn(ctx, out, in, 1)
	}

	elapsed := time.Since(start)

	res := benchResult{
		size:    n,
		codelet: ctx.Codelet(),
		nsPerOp: float64(elapsed.Nanoseconds()) / float64(max(iters, 1)),
	}

	if verify && !inverse {
		res.maxErr, res.checked = check(typ, n, out, in)
	}

	return res, nil
}

// buffers allocates the output and input slices a context of typ expects.
func buffers(rnd *rand.Rand, typ tx.Type, inverse bool, n int) (out, in any, err error) {
	switch typ {
	case tx.FloatFFT:
		return make([]complex64, n), randomComplex64(rnd, n), nil
	case tx.DoubleFFT:
		return make([]complex128, n), randomComplex128(rnd, n), nil
	case tx.Int32FFT:
		src := make([]tx.ComplexInt32, n)
		for i := range src {
			src[i] = tx.ComplexInt32{Re: rnd.Int31n(1<<20) - 1<<19, Im: rnd.Int31n(1<<20) - 1<<19}
		}

		return make([]tx.ComplexInt32, n), src, nil
	case tx.FloatMDCT:
		if inverse {
			return make([]float32, n), randomReal[float32](rnd, n), nil
		}

		return make([]float32, n), randomReal[float32](rnd, 2*n), nil
	case tx.DoubleMDCT:
		if inverse {
			return make([]float64, n), randomReal[float64](rnd, n), nil
		}

		return make([]float64, n), randomReal[float64](rnd, 2*n), nil
	case tx.Int32MDCT:
		size := 2 * n
		if inverse {
			size = n
		}

		src := make([]int32, size)
		for i := range src {
			src[i] = rnd.Int31n(1<<20) - 1<<19
		}

		return make([]int32, n), src, nil
	case tx.FloatRDFT:
		if inverse {
			return make([]float32, n), randomComplex64(rnd, n/2+1), nil
		}

		return make([]complex64, n/2+1), randomReal[float32](rnd, n), nil
	case tx.DoubleRDFT:
		if inverse {
			return make([]float64, n), randomComplex128(rnd, n/2+1), nil
		}

		return make([]complex128, n/2+1), randomReal[float64](rnd, n), nil
	default:
		return nil, nil, errors.New("unsupported type")
	}
}

// check returns the largest deviation from gonum relative to the peak bin.
func check(typ tx.Type, n int, out, in any) (float64, bool) {
	var got, want []complex128

	switch typ {
	case tx.FloatFFT:
		got = widen(out.([]complex64))
		want = fourier.NewCmplxFFT(n).Coefficients(nil, widen(in.([]complex64)))
	case tx.DoubleFFT:
		got = out.([]complex128)
		want = fourier.NewCmplxFFT(n).Coefficients(nil, in.([]complex128))
	case tx.FloatRDFT:
		src := in.([]float32)
		seq := make([]float64, len(src))

		for i, v := range src {
			seq[i] = float64(v)
		}

		got = widen(out.([]complex64))
		want = fourier.NewFFT(n).Coefficients(nil, seq)
	case tx.DoubleRDFT:
		got = out.([]complex128)
		want = fourier.NewFFT(n).Coefficients(nil, in.([]float64))
	default:
		return 0, false
	}

	peak, worst := 1.0, 0.0
	for i := range want {
		peak = math.Max(peak, cmplx.Abs(want[i]))
		worst = math.Max(worst, cmplx.Abs(got[i]-want[i]))
	}

	return worst / peak, true
}

func widen(x []complex64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex128(v)
	}

	return out
}

func randomComplex64(rnd *rand.Rand, n int) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rnd.Float32(), rnd.Float32())
	}

	return out
}

func randomComplex128(rnd *rand.Rand, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rnd.Float64(), rnd.Float64())
	}

	return out
}

func randomReal[F float32 | float64](rnd *rand.Rand, n int) []F {
	out := make([]F, n)
	for i := range out {
		out[i] = F(rnd.Float64()*2 - 1)
	}

	return out
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
