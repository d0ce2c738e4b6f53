package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jllopis/pathfinder/pkg/config"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/errors"
)

func runOnce(ctx context.Context, global globalFlags, cfg *config.Config, args []string) {
	var goal, skills string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--goal" && i+1 < len(args):
			goal = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--goal="):
			goal = strings.TrimPrefix(args[i], "--goal=")
		case args[i] == "--skills" && i+1 < len(args):
			skills = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--skills="):
			skills = strings.TrimPrefix(args[i], "--skills=")
		default:
			fatal(fmt.Errorf("unknown run flag %q", args[i]))
		}
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		fatal(err)
	}
	result, err := p.Run(ctx, goal, skills)
	if err != nil {
		if global.JSON {
			printJSON(errors.AsError(err))
			os.Exit(1)
		}
		fatal(err)
	}

	if global.JSON {
		printJSON(result)
		return
	}
	printResult(result)
}

func printResult(result *core.Result) {
	fmt.Printf("Career plan for %s (request %s)\n\n", result.Goal.Title, result.RequestID)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Market\t\n")
	fmt.Fprintf(writer, "  demand\t%s\n", result.Insight.Demand)
	fmt.Fprintf(writer, "  trend\t%s\n", result.Insight.Trend)
	fmt.Fprintf(writer, "  salary\t%d - %d\n", result.Insight.Salary.Min, result.Insight.Salary.Max)
	writer.Flush()

	if result.Gap.Missing.Len() == 0 {
		fmt.Println("\nNo skill gap: the goal is already covered.")
		return
	}
	fmt.Printf("\nMissing skills: %s\n\n", strings.Join(result.Gap.Missing.Names(), ", "))

	writer = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "#\tSKILL\tRESOURCE\tPLATFORM\tWEEKS\n")
	for _, m := range result.Roadmap.Milestones {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%d\n", m.Order, m.Skill, m.Resource, m.Platform, m.DurationWeeks)
	}
	writer.Flush()
	fmt.Printf("\nEstimated total: %d weeks\n", result.Roadmap.TotalWeeks())
}

func printJSON(value any) {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(payload))
}
