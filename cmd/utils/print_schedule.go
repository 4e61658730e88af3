package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/infrastructure/config"
	"ferry-schedule-service/internal/infrastructure/persistence"
	"ferry-schedule-service/internal/usecase"
	"ferry-schedule-service/pkg/logger"
	"ferry-schedule-service/pkg/utils"
)

// Prints route schedules from the configured store.
//
//	go run ./cmd/utils -route rishra-khardaha -at 12:50
//	go run ./cmd/utils -all
func main() {
	routeID := flag.String("route", "", "route id or code")
	at := flag.String("at", "", "time of day as HH:MM (default: now)")
	all := flag.Bool("all", false, "print every route")
	flag.Parse()

	if *routeID == "" && !*all {
		fmt.Fprintln(os.Stderr, "either -route or -all is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger("error")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := persistence.OpenRouteStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open route store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	schedules := usecase.NewScheduleService(store.Routes, cfg.Location, nil, log)

	now := schedules.NowMinutes()
	if *at != "" {
		if now, err = utils.ParseClock(*at); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -at: %v\n", err)
			os.Exit(2)
		}
	}

	ids := []string{*routeID}
	if *all {
		routes, err := schedules.ListRoutes(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to list routes: %v\n", err)
			os.Exit(1)
		}
		ids = ids[:0]
		for _, r := range routes {
			ids = append(ids, r.ID)
		}
	}

	for _, id := range ids {
		result, err := schedules.GetScheduleAt(ctx, id, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "route %s: %v\n", id, err)
			os.Exit(1)
		}
		printSchedule(os.Stdout, result)
	}
}

func printSchedule(out io.Writer, result *entity.ScheduleResult) {
	fmt.Fprintf(out, "%s (%s)\n", result.RouteName, result.RouteID)
	fmt.Fprintf(out, "At %s: %s\n", result.CurrentTime, result.ServiceStatus)
	if result.Message != "" {
		fmt.Fprintln(out, result.Message)
	}
	if result.NextDeparture != nil {
		fmt.Fprintf(out, "Next boat: %s\n", result.NextDeparture.TimeLabel)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSTATUS")
	for _, slot := range result.AllDepartures {
		fmt.Fprintf(w, "%s\t%s\n", slot.TimeLabel, slot.Status)
	}
	w.Flush()
	fmt.Fprintln(out)
}
