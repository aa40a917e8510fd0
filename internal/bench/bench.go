package bench

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"phashbench/internal/fingerprint"
	"phashbench/internal/imagehash"
	"phashbench/internal/imageio"
	"phashbench/internal/logging"
	"phashbench/internal/modify"
)

// Original labels results computed on the unmodified image.
const Original = "none"

// Result is one (variant, algorithm) fingerprint.
type Result struct {
	// Key is the registry key the modification was resolved from, or Original.
	Key string
	// Modification is the applied modification's self-name, or Original.
	Modification string
	Algorithm    string
	Bits         int
	Fingerprint  fingerprint.Fingerprint
	// SavedPath is where the modified image was written, if anywhere.
	SavedPath string
}

// Options configures a Runner.
type Options struct {
	Registry      *modify.Registry
	Modifications []string
	Algorithms    []imagehash.Algorithm
	// OutputDir enables writing each modified image through Encoder.
	OutputDir string
	Encoder   modify.Encoder
	Logger    *slog.Logger
	// SkipOriginal omits the unmodified baseline.
	SkipOriginal bool
}

// Runner executes benchmark runs. It holds no per-run state.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// New validates opts and returns a runner. Unknown modification keys are
// rejected here so a run never fails halfway through.
func New(opts Options) (*Runner, error) {
	if opts.Registry == nil {
		opts.Registry = modify.DefaultRegistry()
	}
	if len(opts.Algorithms) == 0 {
		return nil, fmt.Errorf("bench: at least one algorithm is required")
	}
	for _, key := range opts.Modifications {
		if _, err := opts.Registry.Resolve(key); err != nil {
			return nil, err
		}
	}
	if opts.OutputDir != "" && opts.Encoder == nil {
		return nil, fmt.Errorf("bench: output directory %s requires an encoder", opts.OutputDir)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{opts: opts, logger: logger}, nil
}

// Run hashes img and its modified variants. imagePath names the input for
// logs and derived output files.
func (r *Runner) Run(ctx context.Context, img image.Image, imagePath string) ([]Result, error) {
	if img == nil {
		return nil, fmt.Errorf("bench: image is required")
	}
	started := time.Now()
	logger := r.logger.With(slog.String(logging.FieldImage, imagePath))

	results := make([]Result, 0, (len(r.opts.Modifications)+1)*len(r.opts.Algorithms))
	if !r.opts.SkipOriginal {
		results = append(results, HashAll(img, Original, Original, r.opts.Algorithms)...)
	}

	for _, key := range r.opts.Modifications {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		m, err := r.opts.Registry.Resolve(key)
		if err != nil {
			return results, err
		}
		modified := m.Apply(img)

		var saved string
		if r.opts.OutputDir != "" {
			saved = imageio.DerivedPath(r.opts.OutputDir, imagePath, m.Name())
			if err := r.opts.Encoder.Save(modified, saved); err != nil {
				return results, err
			}
			logger.Debug("modified image written",
				slog.String(logging.FieldModification, m.Name()),
				slog.String(logging.FieldPath, saved),
			)
		}

		variant := HashAll(modified, key, m.Name(), r.opts.Algorithms)
		for i := range variant {
			variant[i].SavedPath = saved
		}
		results = append(results, variant...)
	}

	logger.Info("benchmark complete",
		slog.Int("variants", len(r.opts.Modifications)+boolToInt(!r.opts.SkipOriginal)),
		slog.Int("algorithms", len(r.opts.Algorithms)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return results, nil
}

// HashAll hashes img with each algorithm, labelling the results with the
// given key and modification self-name.
func HashAll(img image.Image, key, selfName string, algorithms []imagehash.Algorithm) []Result {
	out := make([]Result, 0, len(algorithms))
	for _, alg := range algorithms {
		fp := alg.Hash(img)
		out = append(out, Result{
			Key:          key,
			Modification: selfName,
			Algorithm:    alg.Name(),
			Bits:         fp.Len(),
			Fingerprint:  fp,
		})
	}
	return out
}

// ResolveAlgorithms looks up each name; an empty list yields the fallback.
func ResolveAlgorithms(names []string, fallback ...string) ([]imagehash.Algorithm, error) {
	if len(names) == 0 {
		names = fallback
	}
	algorithms := make([]imagehash.Algorithm, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		alg, err := imagehash.Lookup(name)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, alg)
	}
	return algorithms, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
