package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/netresearch/pagerangers-skill/internal/config"
	"github.com/netresearch/pagerangers-skill/internal/history"
	"github.com/netresearch/pagerangers-skill/internal/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderStructured prints v as indented JSON or YAML.
func renderStructured(v any, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}

func renderKeyword(report types.KeywordReport, format string) error {
	if format != "text" {
		return renderStructured(report, format)
	}

	fmt.Printf("%s %s\n", labelStyle.Render("Keyword:"), report.MainKeyword)
	fmt.Printf("%s %s\n", labelStyle.Render("Search Volume:"), report.SearchVolume)
	fmt.Printf("%s %s\n", labelStyle.Render("Competition:"), report.Competition)

	if len(report.TopURLs) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render(fmt.Sprintf("Top %d URLs:", len(report.TopURLs))))
		for i, url := range report.TopURLs {
			fmt.Printf("  %d. %s\n", i+1, url)
		}
	}

	if len(report.ImportantKeywords) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Related Keywords:"))
		for _, kw := range report.ImportantKeywords {
			fmt.Printf("  - %s\n", kw)
		}
	}

	return nil
}

func renderRankings(entries []types.RankingEntry, format string) error {
	if format != "text" {
		return renderStructured(map[string]any{"rankings": entries}, format)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Top %d Keyword Rankings", len(entries))))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Pos", "Keyword", "URL"})
	for i, entry := range entries {
		t.AppendRow(table.Row{i + 1, entry.Position, entry.Keyword, entry.URL})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	return nil
}

func renderKPIs(report types.KPIReport, format string) error {
	if format != "text" {
		return renderStructured(report, format)
	}

	fmt.Println(headerStyle.Render("Project KPIs"))
	fmt.Println()
	fmt.Printf("  Ranking Index:       %s\n", report.RankingIndex)
	fmt.Printf("  Keywords in Top 10:  %s\n", report.Top10Count)
	fmt.Printf("  Keywords in Top 100: %s\n", report.Top100Count)
	fmt.Printf("  Average Position:    %s\n", report.AveragePosition)

	return nil
}

func renderProspects(prospects []types.Prospect, format string) error {
	if format != "text" {
		return renderStructured(map[string]any{"prospects": prospects}, format)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Top %d Keyword Opportunities", len(prospects))))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Keyword", "Pos", "Volume"})
	for i, prospect := range prospects {
		t.AppendRow(table.Row{i + 1, prospect.Keyword, prospect.Position, prospect.SearchVolume})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	return nil
}

// History lists recent invocations from the history database.
func History(opts Options, limit int) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	entries, err := mgr.List(limit)
	if err != nil {
		return err
	}

	if opts.Output != "text" {
		return renderStructured(entries, opts.Output)
	}

	if len(entries) == 0 {
		fmt.Println("No recorded invocations.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"When", "Command", "Status", "Duration", "Error"})
	for _, entry := range entries {
		status := strconv.Itoa(entry.Status)
		if entry.Status == 0 {
			status = "-"
		}
		t.AppendRow(table.Row{
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Command,
			status,
			fmt.Sprintf("%dms", entry.Duration),
			entry.Error,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	return nil
}
