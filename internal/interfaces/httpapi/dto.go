package httpapi

import (
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
	"github.com/copa-nordeste/copa-api/internal/domain/championship"
	"github.com/copa-nordeste/copa-api/internal/domain/competition"
	"github.com/copa-nordeste/copa-api/internal/domain/contact"
	"github.com/copa-nordeste/copa-api/internal/domain/match"
	"github.com/copa-nordeste/copa-api/internal/domain/news"
	"github.com/copa-nordeste/copa-api/internal/domain/referee"
	"github.com/copa-nordeste/copa-api/internal/domain/team"
)

type teamDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Logo        string    `json:"logo,omitempty"`
	GamesPlayed int       `json:"gamesPlayed"`
	Wins        int       `json:"wins"`
	Draws       int       `json:"draws"`
	Losses      int       `json:"losses"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"createdAt"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		Name:        t.Name,
		City:        t.City,
		State:       t.State,
		Logo:        t.Logo,
		GamesPlayed: t.GamesPlayed,
		Wins:        t.Wins,
		Draws:       t.Draws,
		Losses:      t.Losses,
		Points:      t.Points,
		CreatedAt:   t.CreatedAt,
	}
}

type competitionDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Phase       string    `json:"phase"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func competitionToDTO(c competition.Competition) competitionDTO {
	return competitionDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Phase:       string(c.Phase),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

type matchDTO struct {
	ID            string    `json:"id"`
	HomeTeamID    string    `json:"homeTeamId,omitempty"`
	AwayTeamID    string    `json:"awayTeamId,omitempty"`
	HomeScore     *int      `json:"homeScore"`
	AwayScore     *int      `json:"awayScore"`
	MatchDate     string    `json:"matchDate"`
	Status        string    `json:"status"`
	CompetitionID string    `json:"competitionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		MatchDate:     m.MatchDate,
		Status:        string(m.Status),
		CompetitionID: m.CompetitionID,
		CreatedAt:     m.CreatedAt,
	}
}

type newsDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Author      string    `json:"author"`
	Image       string    `json:"image,omitempty"`
	PublishedAt string    `json:"publishedAt"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newsToDTO(a news.Article) newsDTO {
	return newsDTO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		Author:      a.Author,
		Image:       a.Image,
		PublishedAt: a.PublishedAt,
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt,
	}
}

type contactDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func contactToDTO(m contact.Message) contactDTO {
	return contactDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

type championshipDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func championshipToDTO(c championship.Championship) championshipDTO {
	return championshipDTO{
		ID:        c.ID,
		Name:      c.Name,
		Image:     c.Image,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		CreatedAt: c.CreatedAt,
	}
}

type adminTeamDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	Responsible string    `json:"responsible,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func adminTeamToDTO(t adminteam.Team) adminTeamDTO {
	return adminTeamDTO{
		ID:          t.ID,
		Name:        t.Name,
		Image:       t.Image,
		Responsible: t.Responsible,
		Phone:       t.Phone,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type athleteDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Image     string    `json:"image,omitempty"`
	TeamID    string    `json:"teamId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func athleteToDTO(a athlete.Athlete) athleteDTO {
	return athleteDTO{
		ID:        a.ID,
		Name:      a.Name,
		Document:  a.Document,
		Image:     a.Image,
		TeamID:    a.TeamID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type refereeDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func refereeToDTO(ref referee.Referee) refereeDTO {
	return refereeDTO{
		ID:        ref.ID,
		Name:      ref.Name,
		Image:     ref.Image,
		CreatedAt: ref.CreatedAt,
	}
}
