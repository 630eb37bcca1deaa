package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gohoops/fetcher/data"
	"gohoops/fetcher/requests"
	"gohoops/fetcher/services"
	"gohoops/pkg/config"
	"gohoops/pkg/database"
	"gohoops/pkg/logger"
	seasonvalues "gohoops/pkg/nbavalues/season"
	"gohoops/pkg/redis"
)

const usageText = `Usage: gohoops <command> [flags]

Commands:
  init-db              Create or update the database schema
  ingest-teams         Ingest the team list
  ingest-games         Ingest the games of one season
  ingest-players       Ingest the player rosters
  ingest-team-stats    Ingest the team season stat lines
  ingest-player-stats  Ingest the player season stat lines
  ingest-game-stats    Ingest the box score of one game
  ingest-historical    Backfill a range of seasons

Run 'gohoops <command> -h' for the flags of one command.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load the configuration: %v", err)
	}

	if err := run(cfg, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

// run wires the application and dispatches the command.
func run(cfg *config.Config, command string, args []string) error {
	db, err := database.NewConnection(cfg)
	if err != nil {
		return fmt.Errorf("couldn't connect to the database: %v", err)
	}

	// Schema management doesn't need the fetch stack.
	if command == "init-db" {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("couldn't migrate the database: %v", err)
		}
		fmt.Println("Database schema is up to date")
		return nil
	}

	runLog, err := logger.CreateLogger()
	if err != nil {
		return fmt.Errorf("couldn't create the run log: %v", err)
	}
	defer runLog.Close()

	var cache requests.ResponseCache
	if cfg.HasRedis() {
		redisClient := redis.NewClient(cfg.Redis)
		defer redisClient.Close()
		cache = redisClient
	}

	client := requests.NewClient(cfg.Client, cache)
	fetcher := data.NewNBAFetcher(client)

	teams := services.NewTeamsService(db, fetcher.Teams, runLog)
	games := services.NewGamesService(db, fetcher.Games, runLog)
	players := services.NewPlayersService(db, fetcher.Players, runLog)
	stats := services.NewStatsService(db, fetcher.Stats, runLog)
	boxScores := services.NewBoxScoreService(db, fetcher.BoxScore, runLog)
	historical := services.NewHistoricalService(teams, games, players, stats, runLog)

	ctx := context.Background()

	var cmdErr error
	switch command {
	case "ingest-teams":
		cmdErr = runIngestTeams(ctx, teams, args)
	case "ingest-games":
		cmdErr = runIngestGames(ctx, games, args)
	case "ingest-players":
		cmdErr = runIngestPlayers(ctx, players, args)
	case "ingest-team-stats":
		cmdErr = runIngestTeamStats(ctx, stats, args)
	case "ingest-player-stats":
		cmdErr = runIngestPlayerStats(ctx, stats, args)
	case "ingest-game-stats":
		cmdErr = runIngestGameStats(ctx, boxScores, args)
	case "ingest-historical":
		cmdErr = runIngestHistorical(ctx, historical, args)
	default:
		fmt.Fprintln(os.Stderr, usageText)
		return fmt.Errorf("unknown command %q", command)
	}

	if cmdErr != nil {
		runLog.Errorf("Command %s failed: %v", command, cmdErr)
	}

	if cfg.HasBucket() {
		objectKey := fmt.Sprintf("ingest/%s-%s.log", command, time.Now().Format("20060102-150405"))
		if err := runLog.UploadToBucket(cfg.Bucket, objectKey); err != nil {
			log.Printf("Failed to ship the run log: %v", err)
		}
	}

	return cmdErr
}

func runIngestTeams(ctx context.Context, service *services.TeamsService, args []string) error {
	flags := flag.NewFlagSet("ingest-teams", flag.ExitOnError)
	season := flags.Int("season", currentSeasonYear(), "Season start year")
	flags.Parse(args)

	teams, err := service.IngestTeams(ctx, *season)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d teams\n", len(teams))
	return nil
}

func runIngestGames(ctx context.Context, service *services.GamesService, args []string) error {
	flags := flag.NewFlagSet("ingest-games", flag.ExitOnError)
	season := flags.Int("season", currentSeasonYear(), "Season start year")
	rawType := flags.String("season-type", string(seasonvalues.RegularSeason), "Season type")
	flags.Parse(args)

	seasonType, err := seasonvalues.ParseSeasonType(*rawType)
	if err != nil {
		return err
	}

	games, err := service.IngestGames(ctx, *season, seasonType)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d games\n", len(games))
	return nil
}

func runIngestPlayers(ctx context.Context, service *services.PlayersService, args []string) error {
	flags := flag.NewFlagSet("ingest-players", flag.ExitOnError)
	season := flags.Int("season", currentSeasonYear(), "Season start year")
	teamId := flags.String("team-id", "", "Restrict to one team by external id")
	flags.Parse(args)

	players, err := service.IngestPlayers(ctx, *season, *teamId)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d players\n", len(players))
	return nil
}

func runIngestTeamStats(ctx context.Context, service *services.StatsService, args []string) error {
	flags := flag.NewFlagSet("ingest-team-stats", flag.ExitOnError)
	season := flags.Int("season", currentSeasonYear(), "Season start year")
	rawType := flags.String("season-type", string(seasonvalues.RegularSeason), "Season type")
	flags.Parse(args)

	seasonType, err := seasonvalues.ParseSeasonType(*rawType)
	if err != nil {
		return err
	}

	lines, err := service.IngestTeamStats(ctx, *season, seasonType)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d team stat lines\n", len(lines))
	return nil
}

func runIngestPlayerStats(ctx context.Context, service *services.StatsService, args []string) error {
	flags := flag.NewFlagSet("ingest-player-stats", flag.ExitOnError)
	season := flags.Int("season", currentSeasonYear(), "Season start year")
	rawType := flags.String("season-type", string(seasonvalues.RegularSeason), "Season type")
	teamId := flags.String("team-id", "", "Restrict to one team by external id")
	flags.Parse(args)

	seasonType, err := seasonvalues.ParseSeasonType(*rawType)
	if err != nil {
		return err
	}

	lines, err := service.IngestPlayerStats(ctx, *season, seasonType, *teamId)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d player stat lines\n", len(lines))
	return nil
}

func runIngestGameStats(ctx context.Context, service *services.BoxScoreService, args []string) error {
	flags := flag.NewFlagSet("ingest-game-stats", flag.ExitOnError)
	gameId := flags.String("game-id", "", "External game id")
	flags.Parse(args)

	if *gameId == "" {
		return fmt.Errorf("the --game-id flag is required")
	}

	count, err := service.IngestBoxScore(ctx, *gameId)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d box score lines for game %s\n", count, *gameId)
	return nil
}

func runIngestHistorical(ctx context.Context, service *services.HistoricalService, args []string) error {
	flags := flag.NewFlagSet("ingest-historical", flag.ExitOnError)
	startYear := flags.Int("start-year", 0, "First season start year")
	endYear := flags.Int("end-year", 0, "Last season start year")
	rawTypes := flags.String("data-types", "teams,games,players,team-stats,player-stats",
		"Comma separated data types to backfill")
	rawType := flags.String("season-type", string(seasonvalues.RegularSeason), "Season type")
	flags.Parse(args)

	if *startYear == 0 || *endYear == 0 {
		return fmt.Errorf("the --start-year and --end-year flags are required")
	}

	seasonType, err := seasonvalues.ParseSeasonType(*rawType)
	if err != nil {
		return err
	}

	var dataTypes []string
	for _, dataType := range strings.Split(*rawTypes, ",") {
		dataType = strings.TrimSpace(dataType)
		if dataType != "" {
			dataTypes = append(dataTypes, dataType)
		}
	}

	count, err := service.IngestRange(ctx, *startYear, *endYear, dataTypes, seasonType)
	if err != nil {
		return err
	}

	fmt.Printf("Backfilled %d rows for seasons %d-%d\n", count, *startYear, *endYear)
	return nil
}

// currentSeasonYear returns the start year of the running season.
// The NBA season rolls over in October.
func currentSeasonYear() int {
	now := time.Now()
	if now.Month() >= time.October {
		return now.Year()
	}
	return now.Year() - 1
}
