package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cognicore/themex/pkg/themex"
	"github.com/cognicore/themex/pkg/themex/config"
	"github.com/cognicore/themex/pkg/themex/report"
	"github.com/cognicore/themex/pkg/themex/store"
	"github.com/cognicore/themex/pkg/themex/store/sqlite"
)

func main() {
	// Optional .env with THEMEX_* defaults; absence is fine.
	_ = godotenv.Load()

	var (
		file     = flag.String("file", "", "Analyze a single document")
		dir      = flag.String("dir", "", "Analyze every document in a directory")
		out      = flag.String("out", envOr("THEMEX_OUT", "themes"), "Output directory")
		langPath = flag.String("lang", os.Getenv("THEMEX_LANG"), "Language config YAML (optional)")
		dbPath   = flag.String("db", os.Getenv("THEMEX_DB"), "SQLite archive path (optional)")
	)
	flag.Parse()

	if *file == "" && *dir == "" {
		log.Fatal("--file or --dir required")
	}
	if *file != "" && *dir != "" {
		log.Fatal("--file and --dir are mutually exclusive")
	}

	loader := config.Loader{LanguagePath: *langPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}
	analyzer := themex.New(themex.Options{Language: components.Language})

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	ctx := context.Background()
	var archive store.Store
	if *dbPath != "" {
		archive, err = sqlite.OpenSQLite(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()
	}

	if *file != "" {
		runSingle(ctx, analyzer, archive, *file, *out)
		return
	}
	runBatch(ctx, analyzer, archive, *dir, *out)
}

func runSingle(ctx context.Context, analyzer *themex.Analyzer, archive store.Store, path, out string) {
	insights, err := analyzer.AnalyzeFile(path)
	if err != nil {
		log.Fatalf("analyze %s: %v", path, err)
	}

	jsonPath, mdPath, err := writeOutputs(insights, out)
	if err != nil {
		log.Fatalf("write outputs: %v", err)
	}
	if err := archiveResult(ctx, archive, insights); err != nil {
		log.Fatalf("archive result: %v", err)
	}

	log.Printf("analyzed %s: %d unique terms, %d dominant themes",
		insights.SourceFile, insights.CorpusStats.UniqueTerms, len(insights.DominantThemes))
	log.Printf("wrote %s and %s", jsonPath, mdPath)
}

func runBatch(ctx context.Context, analyzer *themex.Analyzer, archive store.Store, dir, out string) {
	result, err := analyzer.AnalyzeDir(dir)
	if err != nil {
		log.Fatalf("analyze %s: %v", dir, err)
	}

	for _, doc := range result.Processed {
		if _, _, err := writeOutputs(doc.Insights, out); err != nil {
			log.Fatalf("write outputs for %s: %v", doc.Filename, err)
		}
		if err := archiveResult(ctx, archive, doc.Insights); err != nil {
			log.Fatalf("archive %s: %v", doc.Filename, err)
		}
	}
	for _, failed := range result.Failed {
		log.Printf("failed %s: %s", failed.Filename, failed.Error)
	}

	summaryPath := filepath.Join(out, "corpus_summary.json")
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal corpus summary: %v", err)
	}
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		log.Fatalf("write corpus summary: %v", err)
	}

	log.Printf("analyzed %d/%d documents, %d failed; summary at %s",
		result.SuccessfulAnalyses, result.TotalDocuments, len(result.Failed), summaryPath)
}

// writeOutputs saves the JSON record and the markdown report next to each
// other, named after the source file stem.
func writeOutputs(insights *themex.AnalysisResult, out string) (string, string, error) {
	stem := strings.TrimSuffix(insights.SourceFile, filepath.Ext(insights.SourceFile))

	data, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return "", "", err
	}
	jsonPath := filepath.Join(out, stem+"_themes.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", err
	}

	mdPath := filepath.Join(out, stem+"_report.md")
	if err := os.WriteFile(mdPath, report.Render(insights, time.Now()), 0o644); err != nil {
		return "", "", err
	}

	return jsonPath, mdPath, nil
}

func archiveResult(ctx context.Context, archive store.Store, insights *themex.AnalysisResult) error {
	if archive == nil {
		return nil
	}

	payload, err := json.Marshal(insights)
	if err != nil {
		return err
	}

	rec := store.Analysis{
		ID:          store.NewID(),
		SourceFile:  insights.SourceFile,
		CreatedAt:   time.Now().UTC(),
		UniqueTerms: insights.CorpusStats.UniqueTerms,
		TotalTerms:  insights.CorpusStats.TotalTerms,
		Payload:     payload,
	}
	for _, th := range insights.DominantThemes {
		rec.Themes = append(rec.Themes, store.ThemeEntry{Term: th.Term, Frequency: th.Frequency})
	}

	return archive.SaveAnalysis(ctx, rec)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
