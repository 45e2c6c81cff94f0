package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/netresearch/pagerangers-skill/internal/cli"
	"github.com/netresearch/pagerangers-skill/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pagerangers",
	Short: "PageRangers SEO API client",
	Long: `PageRangers SEO API client.

Commands call the configured PageRangers endpoints and print a normalized
result as text, JSON or YAML.

Environment Variables:
  PAGERANGERS_API_TOKEN     Your PageRangers API key (required)
  PAGERANGERS_PROJECT_HASH  Your project identifier (required)
  PAGERANGERS_BASE_URL      Override API base URL (optional)
  PAGERANGERS_TIMEOUT       Request timeout in seconds (default: 30)

Configuration:
  Store credentials in ~/.env.pagerangers:
    PAGERANGERS_API_TOKEN=your_api_key
    PAGERANGERS_PROJECT_HASH=your_project_hash

Examples:
  pagerangers keyword "seo audit"        # Analyze a keyword
  pagerangers keyword "seo audit" --top 3
  pagerangers rankings --limit 10        # Current keyword rankings
  pagerangers kpis --output json         # Project KPIs as JSON
  pagerangers prospects                  # High-opportunity keywords
  pagerangers history                    # Recent invocations`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var keywordCmd = &cobra.Command{
	Use:   "keyword <keyword>",
	Short: "Analyze a keyword (SERP, volume, competition)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.Setup(globalOptions())
		if err != nil {
			return err
		}
		return cli.Keyword(ctx, globalOptions(), args[0], flagTop)
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Get current keyword rankings for the project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.Setup(globalOptions())
		if err != nil {
			return err
		}
		return cli.Rankings(ctx, globalOptions(), flagLimit)
	},
}

var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Get main KPIs (ranking index, top 10/100 counts)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.Setup(globalOptions())
		if err != nil {
			return err
		}
		return cli.KPIs(ctx, globalOptions())
	},
}

var prospectsCmd = &cobra.Command{
	Use:   "prospects",
	Short: "Find high-opportunity keywords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.Setup(globalOptions())
		if err != nil {
			return err
		}
		return cli.Prospects(ctx, globalOptions(), flagLimit)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent API invocations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.History(globalOptions(), flagLimit)
	},
}

var detectCmd = &cobra.Command{
	Use:    "detect",
	Short:  "Prompt-submit hook: check credentials for PageRangers queries",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			// A broken stdin pipe must not fail the hook.
			return nil
		}
		cli.Detect(string(input), cli.DetectOptions{})
		return nil
	},
}

var (
	flagConfig    string
	flagOutput    string
	flagJSON      bool
	flagQuery     string
	flagDebug     bool
	flagNoHistory bool
	flagTop       int
	flagLimit     int
)

func globalOptions() cli.Options {
	output := flagOutput
	if flagJSON {
		output = "json"
	}
	return cli.Options{
		ConfigPath: flagConfig,
		Output:     output,
		Query:      flagQuery,
		Debug:      flagDebug,
		NoHistory:  flagNoHistory,
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to API config JSON")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON (shorthand for --output json)")
	rootCmd.PersistentFlags().StringVarP(&flagQuery, "query", "q", "", "JMESPath projection of the raw API payload")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show debug info")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this invocation")

	keywordCmd.Flags().IntVar(&flagTop, "top", cli.DefaultTopURLs, "Number of top URLs to show")
	rankingsCmd.Flags().IntVar(&flagLimit, "limit", cli.DefaultLimit, "Maximum number of results")
	prospectsCmd.Flags().IntVar(&flagLimit, "limit", cli.DefaultLimit, "Maximum number of results")
	historyCmd.Flags().IntVar(&flagLimit, "limit", cli.DefaultLimit, "Maximum number of entries")

	rootCmd.AddCommand(keywordCmd, rankingsCmd, kpisCmd, prospectsCmd, historyCmd, detectCmd)
}
