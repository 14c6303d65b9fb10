package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rwickrama/cse-dividends/internal/announcement"
	"github.com/rwickrama/cse-dividends/internal/export"
	"github.com/rwickrama/cse-dividends/internal/filter"
	"github.com/rwickrama/cse-dividends/internal/logger"
	"github.com/rwickrama/cse-dividends/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	// DefaultYears is the look-back window used when the prompt is
	// answered with an empty line.
	DefaultYears = 5
)

var (
	flagYears    int
	flagMonth    int
	flagSave     bool
	flagNoPrompt bool
	flagFormat   string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cse-dividends",
		Short: "Scrape CSE dividend announcements and filter by month",
		Long: `Scrapes dividend announcement posts from the CSE dividends blog,
extracts company, date and rate fields from each post, and reports the
announcements made in a chosen month over a chosen number of years.`,
		RunE: runScrape,
	}

	// Define flags
	cmd.Flags().IntVar(&flagYears, "years", DefaultYears, "How many years back to search")
	cmd.Flags().IntVar(&flagMonth, "month", 0, "Month number to filter by (1-12)")
	cmd.Flags().BoolVar(&flagSave, "save", false, "Save results to a CSV file without asking")
	cmd.Flags().BoolVar(&flagNoPrompt, "no-prompt", false, "Never prompt; fail on missing or invalid input")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "Output format: table or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().String("url", scraper.BaseURL, "Blog URL to start crawling from")

	// The start URL can also come from CSE_DIVIDENDS_URL.
	viper.SetEnvPrefix("CSE_DIVIDENDS")
	viper.AutomaticEnv()
	viper.BindPFlag("url", cmd.Flags().Lookup("url"))

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatTable && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'table' or 'json')", flagFormat)
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	years := flagYears
	if !cmd.Flags().Changed("years") && !flagNoPrompt {
		years = promptYears(in, out, DefaultYears)
	}
	if years <= 0 {
		return fmt.Errorf("years must be a positive number, got %d", years)
	}

	month := flagMonth
	if !cmd.Flags().Changed("month") && !flagNoPrompt {
		month = promptMonth(in, out)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	log := logger.New(flagVerbose)
	defer log.Sync()

	fmt.Fprintf(out, "\nSearching for dividends announced in %s over the past %d years...\n",
		announcement.MonthName(month), years)

	crawler := scraper.NewCrawler(scraper.NewFetcher(), viper.GetString("url"), log)
	anns := crawler.Crawl(years)

	filtered := filter.ByMonth(anns, month)
	filter.SortByDateDesc(filtered)

	if err := WriteOutput(out, filtered, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(filtered) == 0 {
		return nil
	}

	save := flagSave
	if !save && !flagNoPrompt && format == FormatTable {
		save = promptYesNo(in, out, "\nWould you like to save these results to a CSV file? (y/n): ")
	}
	if save {
		filename := export.Filename(month, years)
		if err := export.WriteFile(filename, filtered); err != nil {
			return fmt.Errorf("saving results: %w", err)
		}
		fmt.Fprintf(out, "\nResults saved to %s\n", filename)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
