package compile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"sprop/archive"
	"sprop/config"
	"sprop/render"
	"sprop/state"
	"sprop/style"
)

// stdout receives results when no destination is given.
var stdout io.Writer = os.Stdout

// stdin is read when source is Stdin.
var stdin io.Reader = os.Stdin

// job is a single props document.
type job struct {
	src  string // relative to the source, file name for single file
	path string // empty when data came from standard input
	data []byte

	id   uuid.UUID
	out  bytes.Buffer
	diag int
	err  error
}

// process compiles all props documents found at src and writes results to
// dst. Documents are compiled concurrently, results are always delivered in
// source order.
func process(ctx context.Context, src, dst string, r *render.Renderer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	jobs, err := collect(ctx, src, log)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		log.Debug("Nothing to process", zap.String("source", src))
		return nil
	}

	compileAll(ctx, env, jobs, r, log)
	if err := ctx.Err(); err != nil {
		return err
	}

	failed := 0
	for _, j := range jobs {
		if j.err != nil {
			failed++
			log.Error("Unable to compile props", zap.String("source", j.src), zap.Error(j.err))
			continue
		}
		if err := deliver(j, dst, r, env.Overwrite, log); err != nil {
			failed++
			log.Error("Unable to write result", zap.String("source", j.src), zap.Error(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d props documents were not processed", failed, len(jobs))
	}
	return nil
}

// collect finds props documents. Source is either Stdin, a single file, a zip
// archive or a directory. Archives and directories are searched recursively
// for YAML and JSON files.
func collect(ctx context.Context, src string, log *zap.Logger) ([]*job, error) {
	if src == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read standard input: %w", err)
		}
		return []*job{{src: "stdin", data: data}}, nil
	}

	fi, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("input source was not found (%s): %w", src, err)
	}
	if fi.Mode().IsRegular() {
		arc, err := isArchiveFile(src)
		if err != nil {
			return nil, fmt.Errorf("unable to check archive type: %w", err)
		}
		if !arc {
			return []*job{{src: filepath.Base(src), path: src}}, nil
		}
		var jobs []*job
		err = archive.Walk(ctx, src, "", isPropsFile, func(name string, data []byte) error {
			jobs = append(jobs, &job{src: filepath.FromSlash(name), data: data})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to process archive: %w", err)
		}
		sortJobs(jobs)
		return jobs, nil
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("unexpected path mode for (%s)", src)
	}

	var jobs []*job
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !isPropsFile(path) {
			log.Debug("Skipping file, not recognized as props document", zap.String("file", path))
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		jobs = append(jobs, &job{src: rel, path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortJobs(jobs)
	return jobs, nil
}

func sortJobs(jobs []*job) {
	slices.SortFunc(jobs, func(a, b *job) int {
		switch {
		case a.src == b.src:
			return 0
		case natural.Less(a.src, b.src):
			return -1
		default:
			return 1
		}
	})
}

func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return archive.IsArchive(f), nil
}

func isPropsFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// compileAll runs jobs on a bounded number of goroutines sharing single
// compiler.
func compileAll(ctx context.Context, env *state.LocalEnv, jobs []*job, r *render.Renderer, log *zap.Logger) {
	queue := make(chan *job)
	workers := min(runtime.GOMAXPROCS(0), len(jobs))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				j.err = compileOne(env, j, r, log)
			}
		}()
	}

	for _, j := range jobs {
		if ctx.Err() != nil {
			break
		}
		queue <- j
	}
	close(queue)
	wg.Wait()
}

// compileOne compiles and renders single props document storing everything
// related to it in debug report.
func compileOne(env *state.LocalEnv, j *job, r *render.Renderer, log *zap.Logger) (rerr error) {
	j.id = uuid.New()
	log = log.With(zap.Stringer("run", j.id))

	log.Debug("Compilation starting", zap.String("from", j.src))
	defer func(start time.Time) {
		if p := recover(); p != nil {
			log.Error("Compilation ended with panic",
				zap.Any("panic", p), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("compilation panic: %v", p)
			return
		}
		log.Debug("Compilation completed", zap.Duration("elapsed", time.Since(start)), zap.Int("diagnostics", j.diag))
	}(time.Now())

	if j.path != "" {
		data, err := os.ReadFile(j.path)
		if err != nil {
			return fmt.Errorf("unable to read props: %w", err)
		}
		j.data = data
	}

	prefix := fmt.Sprintf("runs/%s-%s/", config.CleanFileName(j.src), j.id)
	env.Rpt.StoreData(prefix+"props"+filepath.Ext(j.src), j.data)

	props, err := style.DecodeProps(j.data)
	if err != nil {
		return fmt.Errorf("%s: %w", j.src, err)
	}

	res, err := env.Compiler.Compile(props)
	if err != nil {
		return fmt.Errorf("%s: %w", j.src, err)
	}
	j.diag = len(res.Diagnostics)
	if res.Trace != nil {
		env.Rpt.StoreData(prefix+"trace.txt", []byte(res.Trace.String()))
	}

	if err := r.Render(&j.out, res); err != nil {
		return err
	}
	env.Rpt.StoreData(prefix+"result"+r.Format().Ext(), j.out.Bytes())
	return nil
}

// deliver writes job result to standard output when dst is empty or to the
// file under dst named after the source.
func deliver(j *job, dst string, r *render.Renderer, overwrite bool, log *zap.Logger) error {
	if len(dst) == 0 {
		_, err := stdout.Write(j.out.Bytes())
		return err
	}

	name := outputName(j.src, dst, r)
	out, err := openDestination(name, overwrite, log)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(j.out.Bytes()); err != nil {
		return fmt.Errorf("unable to write %s: %w", name, err)
	}
	log.Info("Result written", zap.String("from", j.src), zap.String("to", name))
	return nil
}

// outputName keeps directory structure of the source replacing extension
// with one matching output format.
func outputName(src, dst string, r *render.Renderer) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(dst, filepath.Dir(src), config.CleanFileName(base)+r.Format().Ext())
}
