package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/samber/lo"

	"github.com/K0bin/twoless/pkg/model"
)

const (
	executablePath         = "../../bin/twoless"
	KB                     = 1024
	MB             float32 = 1024 * 1024
)

var (
	ns       = []uint64{2, 3, 4, 5, 6}
	ks       = []uint64{2, 3, 4, 5, 6}
	policies = []model.RangePolicy{model.Compatible, model.Normalized}
)

type BenchmarkResult struct {
	N             uint64
	K             uint64
	Policy        model.RangePolicy
	Variables     uint64
	Clauses       uint64
	FileSize      float32
	Duration      int64
	Memory        float32
	CpuPercentage int64
}

func main() {
	outPath := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	workDir, err := os.MkdirTemp("", "twoless-benchmark-*")
	if err != nil {
		log.Fatalf("cannot create working directory: %v", err)
	}
	defer os.RemoveAll(workDir)

	results := make([]BenchmarkResult, 0, len(ns)*len(ks)*len(policies))
	for _, n := range ns {
		for _, k := range ks {
			for _, policy := range policies {
				fmt.Printf("Benchmarking n=%v, k=%v with policy \"%v\"\n", n, k, policy)
				results = append(results, measure(n, k, policy, filepath.Join(workDir, "instance.cnf")))
			}
		}
	}

	toCsv(*outPath, results)
	log.Flush()
}

func measure(n, k uint64, policy model.RangePolicy, instancePath string) BenchmarkResult {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "--policy", policy.String(), fmt.Sprint(n), fmt.Sprint(k), instancePath)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	if err := cmd.Run(); err != nil {
		log.Fatalf("an error occurred during the execution of \"twoless\" with n=%v, k=%v, policy \"%v\": %v: %v\n", n, k, policy, err, stdErr.String())
	}

	getLine := func(output, substr string) string {
		line, ok := lo.Find(strings.Split(output, "\n"), func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	info, err := os.Stat(instancePath)
	if err != nil {
		log.Fatalf("cannot stat generated instance: %v", err)
	}

	return BenchmarkResult{
		N:             n,
		K:             k,
		Policy:        policy,
		Variables:     parseCountLine(getLine(stdOut.String(), "variables")),
		Clauses:       parseCountLine(getLine(stdOut.String(), "clauses")),
		FileSize:      float32(info.Size()) / MB,
		Duration:      parseDurationLine(getLine(stdErr.String(), "wall clock")),
		Memory:        parseMemoryLine(getLine(stdErr.String(), "maximum resident set size")),
		CpuPercentage: parseCpuPercentageLine(getLine(stdErr.String(), "percent of cpu")),
	}
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"n", "k", "Policy", "Variables", "Clauses", "File(MB)", "Duration(ms)", "Memory(MB)", "CPU(%)"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.N),
			fmt.Sprintf("%d", result.K),
			result.Policy.String(),
			fmt.Sprintf("%d", result.Variables),
			fmt.Sprintf("%d", result.Clauses),
			fmt.Sprintf("%.2f", result.FileSize),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("cannot write CSV record: %v", err)
		}
	}
}

// "Variables: 16" as printed by twoless
func parseCountLine(line string) uint64 {
	countStr := strings.TrimSpace(strings.Split(line, ":")[1])
	return lo.Must(strconv.ParseUint(countStr, 10, 64))
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / KB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
