package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openpress/depositor/internal/article"
	"github.com/openpress/depositor/internal/config"
	"github.com/openpress/depositor/internal/deposit"
	"github.com/openpress/depositor/internal/markup"
	"github.com/openpress/depositor/internal/registry"
)

var generateCmd = &cobra.Command{
	Use:   "generate <articles.json>",
	Short: "Generate a deposit XML batch from article metadata",
	Long: `Generate reads a JSON array of articles, assembles a Crossref
doi_batch document and writes it to the output directory as
<batch id>.xml, recording the batch in the registry.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	generateConfig    string
	generateOutputDir string
	generatePubDate   string
	generatePretty    bool
	generateIndent    string
	generateNoComment bool
	generateStdout    bool
	generateRegistry  string
)

func init() {
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to deposit configuration YAML (or DEPOSITOR_CONFIG)")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", ".", "Directory for the generated XML file")
	generateCmd.Flags().StringVar(&generatePubDate, "pub-date", "", "Fixed generation timestamp (RFC3339); defaults to now")
	generateCmd.Flags().BoolVar(&generatePretty, "pretty", false, "Pretty-print the XML output")
	generateCmd.Flags().StringVar(&generateIndent, "indent", "    ", "Indent unit for --pretty")
	generateCmd.Flags().BoolVar(&generateNoComment, "no-comment", false, "Omit the generation comment")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Write XML to stdout instead of a file")
	generateCmd.Flags().StringVar(&generateRegistry, "registry", "", "Batch registry database path (default <output-dir>/deposits.db)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	configPath := generateConfig
	if configPath == "" {
		configPath = os.Getenv("DEPOSITOR_CONFIG")
	}
	if configPath == "" {
		exitWithError(ExitConfigError, "no configuration: pass --config or set DEPOSITOR_CONFIG")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	articles, err := loadArticles(args[0])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	opts := []deposit.Option{deposit.WithComment(!generateNoComment)}
	if generatePubDate != "" {
		pubDate, err := time.Parse(time.RFC3339, generatePubDate)
		if err != nil {
			exitWithError(ExitError, "parsing --pub-date: %v", err)
		}
		opts = append(opts, deposit.WithPubDate(pubDate.UTC()))
	}

	d, err := deposit.New(articles, cfg, opts...)
	if err != nil {
		var parseErr *markup.ParseError
		if errors.As(err, &parseErr) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if generateStdout {
		out, err := d.Output(generatePretty, generateIndent)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		fmt.Print(out)
		return nil
	}

	path, err := d.WriteFile(generateOutputDir)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	registryPath := generateRegistry
	if registryPath == "" {
		registryPath = filepath.Join(generateOutputDir, "deposits.db")
	}
	reg, err := registry.Open(registryPath)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer reg.Close()
	if _, err := reg.Record(d.BatchID(), path, len(articles)); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	resp := GenerateResponse{
		Status:   "generated",
		BatchID:  d.BatchID(),
		Path:     path,
		Articles: len(articles),
	}
	if humanOutput {
		outputHuman("wrote %s (%d articles)\n", resp.Path, resp.Articles)
		return nil
	}
	return outputJSON(resp)
}

// loadArticles reads a JSON array of articles from path.
func loadArticles(path string) ([]*article.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading articles: %w", err)
	}
	var articles []*article.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing articles: %w", err)
	}
	return articles, nil
}
