package cli

import (
	"context"
	"fmt"

	"github.com/netresearch/pagerangers-skill/internal/api"
	"github.com/netresearch/pagerangers-skill/internal/filter"
	"github.com/netresearch/pagerangers-skill/internal/jsonpath"
	"github.com/netresearch/pagerangers-skill/internal/normalize"
	"github.com/netresearch/pagerangers-skill/internal/types"
)

// call invokes an endpoint, records the invocation and applies the optional
// --query projection. When a query is given the projected payload is printed
// directly and the returned handled flag tells the command to stop.
func call(ctx *types.CommandContext, opts Options, command, endpoint string) (payload any, client *api.Client, handled bool, err error) {
	client = api.NewClient(ctx)

	payload, err = client.Call(context.Background(), endpoint)
	record(opts, command, endpoint, client, err)
	if err != nil {
		return nil, nil, false, err
	}

	if opts.Query != "" {
		projected, err := filter.Apply(payload, opts.Query)
		if err != nil {
			return nil, nil, false, err
		}
		fmt.Println(projected)
		return nil, nil, true, nil
	}

	return payload, client, false, nil
}

// Keyword analyzes a single keyword: SERP URLs, search volume, competition
// tier and related keywords.
func Keyword(ctx *types.CommandContext, opts Options, keyword string, top int) error {
	if top <= 0 {
		top = DefaultTopURLs
	}
	ctx.Variables["keyword"] = keyword

	payload, client, handled, err := call(ctx, opts, "keyword", "keyword")
	if err != nil || handled {
		return err
	}

	fields := client.ResponseMap("keyword")

	volume, _ := jsonpath.Resolve(payload, fields["search_volume"])
	competition, _ := jsonpath.Resolve(payload, fields["competition"])
	topURLs, _ := jsonpath.Resolve(payload, fields["top_urls"])
	related, _ := jsonpath.Resolve(payload, fields["important_keywords"])

	report := types.KeywordReport{
		MainKeyword:       jsonpath.ResolveString(payload, fields["main_keyword"], keyword),
		SearchVolume:      normalize.Display(volume),
		Competition:       normalize.Competition(competition),
		TopURLs:           normalize.URLList(topURLs, top),
		ImportantKeywords: normalize.StringList(related, MaxRelatedKeywords),
	}

	return renderKeyword(report, opts.Output)
}

// Rankings lists the current keyword rankings of the project.
func Rankings(ctx *types.CommandContext, opts Options, limit int) error {
	if limit <= 0 {
		limit = DefaultLimit
	}

	payload, client, handled, err := call(ctx, opts, "rankings", "rankings")
	if err != nil || handled {
		return err
	}

	raw, _ := jsonpath.Resolve(payload, client.ResponseMap("rankings")["keywords"])
	entries := rankingEntries(raw, limit)

	return renderRankings(entries, opts.Output)
}

// KPIs reports the project-level KPI values.
func KPIs(ctx *types.CommandContext, opts Options) error {
	payload, client, handled, err := call(ctx, opts, "kpis", "main_kpis")
	if err != nil || handled {
		return err
	}

	fields := client.ResponseMap("main_kpis")

	report := types.KPIReport{
		RankingIndex:    resolveKPI(payload, fields["ranking_index"]),
		Top10Count:      resolveKPI(payload, fields["top_10_count"]),
		Top100Count:     resolveKPI(payload, fields["top_100_count"]),
		AveragePosition: resolveKPI(payload, fields["average_position"]),
	}

	return renderKPIs(report, opts.Output)
}

// Prospects lists high-opportunity keywords.
func Prospects(ctx *types.CommandContext, opts Options, limit int) error {
	if limit <= 0 {
		limit = DefaultLimit
	}

	payload, client, handled, err := call(ctx, opts, "prospects", "prospects")
	if err != nil || handled {
		return err
	}

	raw, _ := jsonpath.Resolve(payload, client.ResponseMap("prospects")["prospects"])
	prospects := prospectEntries(raw, limit)

	return renderProspects(prospects, opts.Output)
}

// rankingEntries normalizes a raw keyword ranking list.
func rankingEntries(raw any, limit int) []types.RankingEntry {
	list, ok := raw.([]any)
	if !ok {
		return []types.RankingEntry{}
	}
	if len(list) > limit {
		list = list[:limit]
	}

	entries := make([]types.RankingEntry, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, types.RankingEntry{
			Keyword:  normalize.EntryKeyword(entry),
			Position: normalize.EntryPosition(entry),
			URL:      normalize.EntryURL(entry),
		})
	}
	return entries
}

// prospectEntries normalizes a raw prospect list.
func prospectEntries(raw any, limit int) []types.Prospect {
	list, ok := raw.([]any)
	if !ok {
		return []types.Prospect{}
	}
	if len(list) > limit {
		list = list[:limit]
	}

	prospects := make([]types.Prospect, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		prospects = append(prospects, types.Prospect{
			Keyword:      normalize.EntryKeyword(entry),
			Position:     normalize.EntryPosition(entry),
			SearchVolume: normalize.EntryVolume(entry),
		})
	}
	return prospects
}

// resolveKPI resolves a KPI path, mapping absent values to "N/A".
func resolveKPI(payload any, path string) string {
	if path == "" {
		return "N/A"
	}
	return jsonpath.ResolveString(payload, path, "N/A")
}
