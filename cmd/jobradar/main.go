package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"automation-api/internal/domain"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

func main() {
	urlsPath := flag.String("urls", "job_urls.txt", "File with one job posting URL per line")
	apiBase := flag.String("api", "http://127.0.0.1:3000", "Automation API base URL")
	outPath := flag.String("out", "job_results.csv", "Output CSV file")
	flag.Parse()

	urls, err := loadURLs(*urlsPath)
	if err != nil {
		pterm.Error.Printfln("could not read %s: %v", *urlsPath, err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		pterm.Warning.Printfln("no URLs in %s, add one URL per line", *urlsPath)
		return
	}

	pterm.DefaultHeader.Println("Job Radar")

	client := &http.Client{Timeout: 2 * time.Minute}
	bar := pb.StartNew(len(urls))

	var results []domain.JobAnalysis
	for _, url := range urls {
		analysis, err := analyzeJob(client, *apiBase, url)
		bar.Increment()
		if err != nil {
			pterm.Error.Printfln("%s: %v", url, err)
			continue
		}
		results = append(results, analysis)
		printAnalysis(analysis)
	}
	bar.Finish()

	if len(results) == 0 {
		pterm.Warning.Println("no results to save")
		return
	}
	if err := saveCSV(*outPath, results); err != nil {
		pterm.Error.Printfln("could not write %s: %v", *outPath, err)
		os.Exit(1)
	}
	pterm.Success.Printfln("saved %d job(s) to %s", len(results), *outPath)
}

func loadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if url := strings.TrimSpace(sc.Text()); url != "" {
			urls = append(urls, url)
		}
	}
	return urls, sc.Err()
}

func analyzeJob(client *http.Client, apiBase, url string) (domain.JobAnalysis, error) {
	body, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return domain.JobAnalysis{}, err
	}

	resp, err := client.Post(apiBase+"/analyze_job", "application/json", bytes.NewReader(body))
	if err != nil {
		return domain.JobAnalysis{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.JobAnalysis{}, fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	var analysis domain.JobAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return domain.JobAnalysis{}, err
	}
	return analysis, nil
}

func printAnalysis(a domain.JobAnalysis) {
	summary := a.Summary
	if r := []rune(summary); len(r) > 200 {
		summary = string(r[:200]) + "..."
	}
	pterm.DefaultSection.Println(a.URL)
	pterm.Info.Printfln("Size: %s characters, %s words",
		humanize.Comma(int64(a.Characters)), humanize.Comma(int64(a.Words)))
	pterm.Info.Printfln("Summary: %s", summary)
	pterm.Info.Printfln("Skills: %s", orDash(a.Skills))
	pterm.Info.Printfln("Languages: %s", orDash(a.Languages))
	pterm.Info.Printfln("Tech stack: %s", orDash(a.TechStack))
	pterm.Info.Printfln("Fit score: %s", colorScore(a.FitScore))
}

func orDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func colorScore(score int) string {
	s := strconv.Itoa(score)
	switch {
	case score >= 70:
		return pterm.Green(s)
	case score >= 40:
		return pterm.Yellow(s)
	default:
		return pterm.Red(s)
	}
}

func saveCSV(path string, results []domain.JobAnalysis) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"url", "characters", "words", "summary",
		"skills", "languages", "tech_stack", "job_fit_score",
	}); err != nil {
		return err
	}
	for _, a := range results {
		if err := w.Write([]string{
			a.URL,
			strconv.Itoa(a.Characters),
			strconv.Itoa(a.Words),
			a.Summary,
			strings.Join(a.Skills, ", "),
			strings.Join(a.Languages, ", "),
			strings.Join(a.TechStack, ", "),
			strconv.Itoa(a.FitScore),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
