package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var (
	backendEndpoint = "http://localhost:8080/translate"
	targetLang      = "en"

	sampleTexts = []string{
		"Привет, мир! Как дела?",
		"El rápido zorro marrón salta sobre el perro perezoso.",
		"今日はいい天気ですね。散歩に行きませんか。",
		"Die Würde des Menschen ist unantastbar.",
	}

	imageFormats = []string{"jpg", "png", "pdf"}
)

func main() {
	ctx := context.Background()

	var results []BenchResult

	for i, text := range sampleTexts {
		results = append(results, benchmarkText(ctx, fmt.Sprintf("text-%d", i), text))
	}

	for _, format := range imageFormats {
		dataPath := filepath.Join(".", "data", format)

		images, _ := os.ReadDir(dataPath)

		for _, image := range images {
			filePath := filepath.Join(dataPath, image.Name())
			res := benchmarkImage(ctx, filePath)

			if res.Err != nil {
				log.Println("ERR:", res.Err)
			} else {
				log.Printf("OK %s %v", res.Name, res.Duration)
			}

			results = append(results, res)
		}
	}

	printMarkdown(results)
}

func benchmarkText(ctx context.Context, name, text string) BenchResult {
	start := time.Now()

	translated, err := send(ctx, TranslateRequest{
		Text:       text,
		TargetLang: targetLang,
	})

	return BenchResult{
		Name:     name,
		Mode:     "text",
		Duration: time.Since(start),
		Chars:    len(translated),
		Err:      err,
		Size:     int64(len(text)),
	}
}

func benchmarkImage(ctx context.Context, filePath string) BenchResult {
	start := time.Now()

	fileRaw, err := os.ReadFile(filePath)
	if err != nil {
		return BenchResult{Name: filePath, Err: err}
	}

	mode := filepath.Ext(filePath)[1:]
	image := base64.StdEncoding.EncodeToString(fileRaw)
	if mode == "pdf" {
		image = "data:application/pdf;base64," + image
	}

	translated, err := send(ctx, TranslateRequest{
		Image:      image,
		TargetLang: targetLang,
	})

	return BenchResult{
		Name:     filepath.Base(filePath),
		Mode:     mode,
		Duration: time.Since(start),
		Chars:    len(translated),
		Err:      err,
		Size:     int64(len(fileRaw)),
	}
}

func send(ctx context.Context, req TranslateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, backendEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var tr TranslateResponse
	if err := json.Unmarshal(respBody, &tr); err != nil {
		return "", fmt.Errorf("unmarshal resp: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, tr.Error)
	}

	return tr.Text, nil
}

func aggregate(results []BenchResult) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		a := m[r.Mode]
		a.Count++
		a.TotalBytes += r.Size
		a.Total += r.Duration
		m[r.Mode] = a
	}
	return m
}

func printMarkdown(results []BenchResult) {
	fmt.Println("\n## Benchmark Results\n")
	fmt.Println("| Mode | Requests | Avg Time | Total Time | Avg Payload Size |")
	fmt.Println("|------|----------|----------|------------|------------------|")

	agg := aggregate(results)

	var (
		totalCount    int
		totalDuration time.Duration
		totalBytes    int64
	)

	for mode, a := range agg {
		avg := a.Total / time.Duration(a.Count)
		avgSize := a.TotalBytes / int64(a.Count)
		fmt.Printf("| %s | %d | %v | %v | %s |\n",
			mode,
			a.Count,
			avg.Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			formatSize(avgSize),
		)
		totalCount += a.Count
		totalDuration += a.Total
		totalBytes += a.TotalBytes
	}

	if totalCount > 0 {
		mean := totalDuration / time.Duration(totalCount)
		avgSize := totalBytes / int64(totalCount)
		fmt.Printf("| **ALL** | %d | %v | %v | %s |\n",
			totalCount,
			mean.Round(time.Millisecond),
			totalDuration.Round(time.Millisecond),
			formatSize(avgSize),
		)
	}
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(size)/float64(div), "KMG"[exp])
}
