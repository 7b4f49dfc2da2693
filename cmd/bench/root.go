package bench

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/redisc/client"
	"github.com/ValentinKolb/redisc/cmd/util"
	"github.com/ValentinKolb/redisc/resp"
	"github.com/ValentinKolb/redisc/transport/inmem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// BenchCmd measures the throughput of the library itself: value
	// encoding, reply decoding, request building and full dispatch over the
	// in-memory transport. No server is involved.
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Performance measurement for the client library",
		Long:    "",
		RunE:    run,
		PreRunE: processBenchConfig,
	}
	benchKeyPrefix  = "__bench"
	benchNumThreads = 10
	benchKeySpread  = 100
	benchSkip       = make([]string, 0)
)

func init() {
	// add flags
	util.SetupTransportFlags(BenchCmd)

	key := "skip"
	BenchCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. encode,set)"))
	key = "threads"
	BenchCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the dispatch benchmarks"))
	key = "keys"
	BenchCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the dispatch benchmarks"))
	key = "csv"
	BenchCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	benchNumThreads = viper.GetInt("threads")
	benchKeySpread = viper.GetInt("keys")
	benchSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func run(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance measurement for the redisc client library")
	fmt.Println()
	fmt.Printf("Threads: %d\n", benchNumThreads)
	fmt.Println()
	fmt.Println("starting benchmarks...")

	// Create results map
	results := make(map[string]testing.BenchmarkResult)

	encodeResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("encode") {
			return
		}
		for i := 0; i < b.N; i++ {
			_ = resp.EncodeInt(int64(i))
			_ = resp.EncodeFloat(float64(i) / 3)
			_ = resp.EncodeString("benchmark-value")
		}
	})
	results["encode"] = encodeResult
	printResult("encode", encodeResult)

	decodeResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("decode") {
			return
		}
		intReply := resp.NewBulkString("1234567")
		floatReply := resp.NewBulkString("3.25")
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = resp.DecodeInt(intReply)
			_, _ = resp.DecodeFloat(floatReply)
		}
	})
	results["decode"] = decodeResult
	printResult("decode", decodeResult)

	buildResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("build") {
			return
		}
		for i := 0; i < b.N; i++ {
			args := client.NewArgs("SET", 4)
			args.AddString("benchmark-key").AddString("benchmark-value")
			args.AddString("EX").AddInt(60)
			_ = args.Command()
		}
	})
	results["build"] = buildResult
	printResult("build", buildResult)

	// dispatch benchmarks run against the in-memory transport
	c, err := newBenchClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	setResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("set") {
			return
		}

		getKey := benchKeys("set")

		b.SetParallelism(benchNumThreads)
		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				_, err := c.Set(getKey(counter), []byte("test"), client.NoExpiration(), client.CondNone)
				if err != nil {
					log.Printf("(set) - error setting key: %v\n", err)
				}
				counter++
			}
		})
	})
	results["set"] = setResult
	printResult("set", setResult)

	getResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("get") {
			return
		}

		getKey := benchKeys("get")

		b.SetParallelism(benchNumThreads)
		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				_, _, err := c.Get(getKey(counter))
				if err != nil {
					log.Printf("(get) - error getting key: %v\n", err)
				}
				counter++
			}
		})
	})
	results["get"] = getResult
	printResult("get", getResult)

	mixedResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("mixed") {
			return
		}

		getKey := benchKeys("mixed")

		b.SetParallelism(benchNumThreads)
		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				key := getKey(counter)
				var err error
				switch counter % 4 {
				case 0:
					_, err = c.Set(key, []byte("test"), client.NoExpiration(), client.CondNone)
				case 1:
					_, _, err = c.Get(key)
				case 2:
					_, err = c.Del(key)
				case 3:
					_, err = c.Exists(key)
				}
				if err != nil {
					log.Printf("(mixed) - error performing operation %d: %v\n", counter%4, err)
				}
				counter++
			}
		})
	})
	results["mixed"] = mixedResult
	printResult("mixed", mixedResult)

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// newBenchClient creates a client over an in-memory transport that answers
// the commands the dispatch benchmarks use
func newBenchClient() (*client.Client, error) {
	t := inmem.New()
	t.SetRecording(false)
	t.Reply("SET", resp.NewBulkString("OK"))
	t.Reply("GET", resp.NewBulkString("test"))
	t.Reply("DEL", resp.NewInt(1))
	t.Reply("EXISTS", resp.NewInt(1))
	return client.New(t, util.GetTransportConfig())
}

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range benchSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// benchKeys creates the test key set and returns an index-based accessor
// (with wraparound)
func benchKeys(prefix string) func(int) string {
	keys := make([]string, benchKeySpread)
	for i := 0; i < benchKeySpread; i++ {
		keys[i] = fmt.Sprintf("%s-%s-%d", benchKeyPrefix, prefix, i)
	}
	return func(i int) string {
		return keys[i%benchKeySpread]
	}
}

func printResult(name string, result testing.BenchmarkResult) {
	opsPerSec := float64(result.N) / result.T.Seconds()
	fmt.Printf("%-8s %12d ops %12.0f ops/sec %12s/op\n",
		name, result.N, opsPerSec, time.Duration(result.NsPerOp()))
}

// writeResultsToCSV exports the benchmark results to the given path
func writeResultsToCSV(path string, results map[string]testing.BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"benchmark", "iterations", "ns_per_op", "allocs_per_op", "bytes_per_op"}); err != nil {
		return err
	}
	for name, result := range results {
		record := []string{
			name,
			strconv.Itoa(result.N),
			strconv.FormatInt(result.NsPerOp(), 10),
			strconv.FormatInt(result.AllocsPerOp(), 10),
			strconv.FormatInt(result.AllocedBytesPerOp(), 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}
