// measure exercises Trees.RBTree: stress runs random puts and removes against a reference
// map and validates the tree as it goes; bench times removal and lookup at growing removal ratios.
package main

import (
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/ansel1/merry"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	keys     uint32
	keyRange int
	seed     int64
	every    uint32
	steps    uint32
	logLevel string

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "measure",
	Short: "Stress and benchmark the red black tree",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	},
	SilenceUsage: true,
}

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Random puts and removes checked against a map, validating the tree every few operations",
	RunE:  stressRunE,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time removing a growing share of the keys followed by lookups",
	RunE:  benchRunE,
}

func init() {
	rootCmd.PersistentFlags().Uint32VarP(&keys, "keys", "n", 100000, "number of operations or keys")
	rootCmd.PersistentFlags().Int64VarP(&seed, "seed", "s", 0, "random seed")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logrus level")
	stressCmd.Flags().IntVarP(&keyRange, "range", "r", 1<<16, "keys are drawn from [0, range)")
	stressCmd.Flags().Uint32Var(&every, "validate-every", 1000, "validate after this many operations, 0 only at the end")
	benchCmd.Flags().Uint32Var(&steps, "steps", 20, "number of removal ratios")
	rootCmd.AddCommand(stressCmd, benchCmd)
}

func stressRunE(cmd *cobra.Command, args []string) error {
	if keyRange <= 0 {
		return merry.New("range must be positive").WithValue("range", keyRange)
	}
	rg := rand.New(rand.NewSource(seed))
	tree := Trees.New[int, int](keys)
	ref := make(map[int]int, keys)
	var cleaned uint
	tree.SetCleanValue(func(int) { cleaned++ })
	var puts, removes, misses uint
	for i := uint32(1); i <= keys; i++ {
		k := rg.Intn(keyRange)
		if rg.Intn(3) == 0 {
			err := tree.Remove(k)
			if _, ok := ref[k]; ok != (err == nil) {
				return merry.Errorf("remove disagrees with the reference map: %v", err).WithValue("key", k)
			} else if ok {
				delete(ref, k)
				removes++
			} else {
				misses++
			}
		} else {
			if err := tree.Put(k, int(i)); err != nil {
				return merry.Wrap(err).WithValue("op", i)
			}
			ref[k] = int(i)
			puts++
		}
		if every != 0 && i%every == 0 {
			if err := tree.Validate(); err != nil {
				return merry.Wrap(err).WithValue("op", i)
			}
			log.WithFields(logrus.Fields{"op": i, "size": tree.Size()}).Debug("validated")
		}
	}
	if err := tree.Validate(); err != nil {
		return err
	}
	if tree.Size() != uint(len(ref)) {
		return merry.Errorf("size %d, reference map has %d", tree.Size(), len(ref))
	}
	for k, v := range ref {
		if got, ok := tree.Get(k); !ok || got != v {
			return merry.Errorf("wrong value %d", got).WithValue("key", k)
		}
	}
	log.WithFields(logrus.Fields{
		"puts": puts, "removes": removes, "misses": misses, "size": tree.Size(), "cleaned": cleaned,
	}).Info("stress passed")
	return nil
}

func benchRunE(cmd *cobra.Command, args []string) error {
	if steps < 2 {
		return merry.New("steps must be at least 2").WithValue("steps", steps)
	}
	testing.Init()
	rg := rand.New(rand.NewSource(seed))
	all := make([]int, keys)
	var sideEff bool
	var ms []float64
	var n int
	for i := uint32(1); i < steps; i++ {
		rmv := keys / steps * i
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				tree := Trees.New[int, int](keys)
				for j := range all {
					all[j] = rg.Int()
					_ = tree.Put(all[j], j)
				}
				b.StartTimer()
				for _, k := range all[:rmv] {
					_ = tree.Remove(k)
				}
				for _, k := range all {
					sideEff = tree.Has(k)
				}
			}
		})
		ms = append(ms, float64(br.T.Milliseconds()))
		n += br.N
		log.WithFields(logrus.Fields{"step": i, "removed": rmv, "ns/op": br.NsPerOp()}).Debug("step done")
	}
	var sum float64
	for _, v := range ms {
		sum += v
	}
	avg := sum / float64(n)
	sum = 0
	for _, v := range ms {
		a := v - avg
		sum += a * a
	}
	log.WithFields(logrus.Fields{
		"avg_ms": avg, "stddev_ms": math.Sqrt(sum / float64(n)), "found_last": sideEff,
	}).Info("bench done")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).WithField("details", merry.Details(err)).Error("measure failed")
		os.Exit(1)
	}
}
