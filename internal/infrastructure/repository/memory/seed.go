package memory

import (
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/competition"
	"github.com/copa-nordeste/copa-api/internal/domain/match"
	"github.com/copa-nordeste/copa-api/internal/domain/news"
	"github.com/copa-nordeste/copa-api/internal/domain/team"
)

const CompetitionIDCopa2026 = "copa-nordeste-2026"

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "bahia", Name: "EC Bahia", City: "Salvador", State: "BA", GamesPlayed: 3, Wins: 3, Points: 9, CreatedAt: seedTime("2026-01-05T12:00:00Z")},
		{ID: "fortaleza", Name: "Fortaleza EC", City: "Fortaleza", State: "CE", GamesPlayed: 3, Wins: 2, Draws: 1, Points: 7, CreatedAt: seedTime("2026-01-05T12:01:00Z")},
		{ID: "sport", Name: "Sport Recife", City: "Recife", State: "PE", GamesPlayed: 3, Wins: 1, Draws: 1, Losses: 1, Points: 4, CreatedAt: seedTime("2026-01-05T12:02:00Z")},
		{ID: "ceara", Name: "Ceará SC", City: "Fortaleza", State: "CE", GamesPlayed: 3, Draws: 2, Losses: 1, Points: 2, CreatedAt: seedTime("2026-01-05T12:03:00Z")},
		{ID: "nautico", Name: "Clube Náutico", City: "Recife", State: "PE", GamesPlayed: 3, Losses: 3, CreatedAt: seedTime("2026-01-05T12:04:00Z")},
	}
}

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{
			ID:          CompetitionIDCopa2026,
			Name:        "Copa Nordeste 2026",
			Description: "Regional tournament, group stage into knockouts.",
			StartDate:   "2026-01-10",
			EndDate:     "2026-04-05",
			Phase:       competition.PhaseGroups,
			IsActive:    true,
			CreatedAt:   seedTime("2026-01-02T09:00:00Z"),
		},
	}
}

func SeedMatches() []match.Match {
	finishedHome, finishedAway := 2, 1
	return []match.Match{
		{
			ID:            "m-2026-001",
			HomeTeamID:    "bahia",
			AwayTeamID:    "sport",
			HomeScore:     &finishedHome,
			AwayScore:     &finishedAway,
			MatchDate:     "2026-01-12",
			Status:        match.StatusFinished,
			CompetitionID: CompetitionIDCopa2026,
			CreatedAt:     seedTime("2026-01-10T10:00:00Z"),
		},
		{
			ID:            "m-2026-002",
			HomeTeamID:    "fortaleza",
			AwayTeamID:    "ceara",
			MatchDate:     "2026-02-02",
			Status:        match.StatusScheduled,
			CompetitionID: CompetitionIDCopa2026,
			CreatedAt:     seedTime("2026-01-10T10:01:00Z"),
		},
	}
}

func SeedNews() []news.Article {
	return []news.Article{
		{
			ID:          "n-2026-001",
			Title:       "Copa Nordeste 2026 kicks off in Salvador",
			Content:     "The opening round starts this weekend with the classic Bahia versus Sport.",
			Excerpt:     "Opening round this weekend.",
			Author:      "Editoria",
			PublishedAt: "2026-01-09",
			IsPublished: true,
			CreatedAt:   seedTime("2026-01-09T08:00:00Z"),
		},
		{
			ID:          "n-2026-002",
			Title:       "Knockout bracket preview",
			Content:     "A draft look at the elimination phase pairings.",
			Author:      "Editoria",
			PublishedAt: "2026-03-01",
			IsPublished: false,
			CreatedAt:   seedTime("2026-02-20T08:00:00Z"),
		},
	}
}
