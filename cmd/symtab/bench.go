package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/treeshape/go-symtab/Tables"
)

// backend adapts one symbol table implementation to the put/get/scan
// workload of the bench command.
type backend interface {
	put(k, v int)
	get(k int) (int, bool)
	// scan visits the keys in ascending order until f returns false.
	scan(f func(k int) bool)
}

type sizedMapBackend struct {
	t *Tables.SizedMap[int, int, uint32]
}

func (b sizedMapBackend) put(k, v int) { b.t.Put(k, v) }

func (b sizedMapBackend) get(k int) (int, bool) { return b.t.Get(k) }

func (b sizedMapBackend) scan(f func(int) bool) {
	b.t.Each(func(k int, _ int) bool { return f(k) })
}

type kv struct {
	k, v int
}

type btreeBackend struct {
	t *btree.BTreeG[kv]
}

func (b btreeBackend) put(k, v int) { b.t.ReplaceOrInsert(kv{k, v}) }

func (b btreeBackend) get(k int) (int, bool) {
	e, ok := b.t.Get(kv{k: k})
	return e.v, ok
}

func (b btreeBackend) scan(f func(int) bool) {
	b.t.Ascend(func(e kv) bool { return f(e.k) })
}

func (e kv) Less(than llrb.Item) bool { return e.k < than.(kv).k }

type llrbBackend struct {
	t *llrb.LLRB
}

func (b llrbBackend) put(k, v int) { b.t.ReplaceOrInsert(kv{k, v}) }

func (b llrbBackend) get(k int) (int, bool) {
	if e := b.t.Get(kv{k: k}); e != nil {
		return e.(kv).v, true
	}
	return 0, false
}

func (b llrbBackend) scan(f func(int) bool) {
	if b.t.Len() == 0 {
		return
	}
	b.t.AscendGreaterOrEqual(b.t.Min(), func(e llrb.Item) bool { return f(e.(kv).k) })
}

type rbtreeBackend struct {
	t *treemap.Map
}

func (b rbtreeBackend) put(k, v int) { b.t.Put(k, v) }

func (b rbtreeBackend) get(k int) (int, bool) {
	v, ok := b.t.Get(k)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (b rbtreeBackend) scan(f func(int) bool) {
	for it := b.t.Iterator(); it.Next(); {
		if !f(it.Key().(int)) {
			break
		}
	}
}

func newBackend(name string) (backend, error) {
	switch name {
	case "sizedmap":
		return sizedMapBackend{Tables.MakeSizedMap[int, int, uint32]()}, nil
	case "btree":
		return btreeBackend{btree.NewG(32, func(a, b kv) bool { return a.k < b.k })}, nil
	case "llrb":
		return llrbBackend{llrb.New()}, nil
	case "rbtree":
		return rbtreeBackend{treemap.NewWithIntComparator()}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

var metricOpCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "symtab_bench_op_count",
	Help: "Operations performed by the bench command.",
})

func benchCommand() *cobra.Command {
	var (
		backendName string
		n           int
		seed        int64
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run a random put/get/scan workload against a table backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if metricsAddr != "" {
				go func() {
					http.Handle("/metrics", promhttp.Handler())
					if err := http.ListenAndServe(metricsAddr, nil); err != nil {
						log.Error().Err(err).Msg("metrics server stopped")
					}
				}()
			}

			b, err := newBackend(backendName)
			if err != nil {
				return err
			}
			blog := log.With().Str("backend", backendName).Logger()
			rng := rand.New(rand.NewSource(seed))

			start := time.Now()
			since := start
			for i := 0; i < n; i++ {
				b.put(rng.Intn(2*n), i)
				metricOpCount.Inc()
				if (i+1)%100_000 == 0 {
					blog.Info().Msgf("processed %s puts; %s puts/s",
						humanize.Comma(int64(i+1)),
						humanize.Comma(int64(float64(100_000)/time.Since(since).Seconds())))
					since = time.Now()
				}
			}
			putDur := time.Since(start)

			since = time.Now()
			hits := 0
			for i := 0; i < n; i++ {
				if _, ok := b.get(rng.Intn(2 * n)); ok {
					hits++
				}
				metricOpCount.Inc()
			}
			getDur := time.Since(since)

			since = time.Now()
			keys := 0
			b.scan(func(int) bool {
				keys++
				return true
			})
			scanDur := time.Since(since)

			blog.Info().
				Str("puts", humanize.Comma(int64(n))).
				Dur("put_time", putDur).
				Str("get_hits", humanize.Comma(int64(hits))).
				Dur("get_time", getDur).
				Str("scanned", humanize.Comma(int64(keys))).
				Dur("scan_time", scanDur).
				Msg("done")
			return nil
		},
	}
	cmd.Flags().StringVar(&backendName, "backend", "sizedmap", "One of sizedmap, btree, llrb, rbtree.")
	cmd.Flags().IntVar(&n, "n", 1_000_000, "Number of put and get operations.")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed of the workload generator.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "If set, serve prometheus metrics on this address.")
	return cmd
}
