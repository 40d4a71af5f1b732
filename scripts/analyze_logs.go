package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LogStats summarizes one day of service logs
type LogStats struct {
	Lines          int
	Unparsed       int
	Levels         map[string]int
	SecurityEvents map[string]int
	StatusClasses  map[string]int
	SlowRequests   int
	ErrorPatterns  map[string]int
}

type logEntry struct {
	Level    string          `json:"level"`
	Msg      string          `json:"msg"`
	Event    string          `json:"event"`
	Kind     string          `json:"kind"`
	Status   int             `json:"status"`
	Duration json.RawMessage `json:"duration"`
}

const slowRequest = time.Second

func main() {
	logDir := flag.String("dir", "./logs", "directory holding app-YYYY-MM-DD.log files")
	day := flag.String("date", time.Now().Format("2006-01-02"), "day to analyze")
	flag.Parse()

	logFile := filepath.Join(*logDir, fmt.Sprintf("app-%s.log", *day))
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		os.Exit(1)
	}
	defer file.Close()

	stats, err := analyze(file)
	if err != nil {
		fmt.Printf("Error reading log file %s: %v\n", logFile, err)
		os.Exit(1)
	}
	printReport(os.Stdout, stats)
}

func newLogStats() *LogStats {
	return &LogStats{
		Levels:         make(map[string]int),
		SecurityEvents: make(map[string]int),
		StatusClasses:  make(map[string]int),
		ErrorPatterns:  make(map[string]int),
	}
}

// analyze reads JSON log lines as written by the production logger
func analyze(r io.Reader) (*LogStats, error) {
	stats := newLogStats()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.Lines++
		var entry logEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			stats.Unparsed++
			continue
		}
		stats.Levels[entry.Level]++

		if entry.Event == "security" {
			stats.SecurityEvents[entry.Kind]++
		}
		if entry.Msg == "request" && entry.Status > 0 {
			stats.StatusClasses[fmt.Sprintf("%dxx", entry.Status/100)]++
			if requestDuration(entry.Duration) >= slowRequest {
				stats.SlowRequests++
			}
		}
		if entry.Level == "error" {
			stats.ErrorPatterns[entry.Msg]++
		}
	}
	return stats, scanner.Err()
}

// requestDuration accepts both the seconds float and the string encodings
func requestDuration(raw json.RawMessage) time.Duration {
	if len(raw) == 0 {
		return 0
	}
	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err == nil {
		return time.Duration(seconds * float64(time.Second))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 0
}

func printReport(w io.Writer, stats *LogStats) {
	fmt.Fprintln(w, "\n=== Log Analysis Report ===")
	fmt.Fprintln(w, "Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Lines: %d (unparsed: %d)\n", stats.Lines, stats.Unparsed)

	fmt.Fprintln(w, "\n1. Levels:")
	printTop(w, stats.Levels, 10)

	fmt.Fprintln(w, "\n2. Security Events:")
	printTop(w, stats.SecurityEvents, 10)

	fmt.Fprintln(w, "\n3. Requests:")
	printTop(w, stats.StatusClasses, 5)
	fmt.Fprintf(w, "   slow (>= %s): %d\n", slowRequest, stats.SlowRequests)

	fmt.Fprintln(w, "\n4. Most Common Errors:")
	printTop(w, stats.ErrorPatterns, 5)
}

type counted struct {
	key   string
	count int
}

func topN(counts map[string]int, limit int) []counted {
	list := make([]counted, 0, len(counts))
	for key, count := range counts {
		list = append(list, counted{key, count})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].key < list[j].key
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

func printTop(w io.Writer, counts map[string]int, limit int) {
	for _, c := range topN(counts, limit) {
		fmt.Fprintf(w, "   %s: %d\n", c.key, c.count)
	}
}
