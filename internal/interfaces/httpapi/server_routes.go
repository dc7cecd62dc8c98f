package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /api/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /api/competitions/{competitionID}/matches", handler.ListMatchesByCompetition)
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/news", handler.ListPublishedNews)
	mux.HandleFunc("GET /api/news/{newsID}", handler.GetPublishedNews)
	mux.HandleFunc("POST /api/contact", handler.SubmitContact)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/admin/login", handler.Login)
	mux.HandleFunc("POST /api/admin/logout", handler.Logout)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminSession(verifier, h)
	}

	mux.Handle("GET /api/admin/championships", admin(handler.ListChampionships))
	mux.Handle("GET /api/admin/championships/{championshipID}", admin(handler.GetChampionship))
	mux.Handle("POST /api/admin/championships", admin(handler.CreateChampionship))
	mux.Handle("PUT /api/admin/championships/{championshipID}", admin(handler.UpdateChampionship))
	mux.Handle("DELETE /api/admin/championships/{championshipID}", admin(handler.DeleteChampionship))
	mux.Handle("GET /api/admin/championships/{championshipID}/teams", admin(handler.ListChampionshipTeams))
	mux.Handle("POST /api/admin/championships/{championshipID}/teams/{teamID}", admin(handler.AddChampionshipTeam))
	mux.Handle("DELETE /api/admin/championships/{championshipID}/teams/{teamID}", admin(handler.RemoveChampionshipTeam))

	mux.Handle("GET /api/admin/teams", admin(handler.ListAdminTeams))
	mux.Handle("GET /api/admin/teams/{teamID}", admin(handler.GetAdminTeam))
	mux.Handle("POST /api/admin/teams", admin(handler.CreateAdminTeam))
	mux.Handle("PUT /api/admin/teams/{teamID}", admin(handler.UpdateAdminTeam))
	mux.Handle("DELETE /api/admin/teams/{teamID}", admin(handler.DeleteAdminTeam))

	mux.Handle("GET /api/admin/athletes", admin(handler.ListAthletes))
	mux.Handle("GET /api/admin/athletes/{athleteID}", admin(handler.GetAthlete))
	mux.Handle("POST /api/admin/athletes", admin(handler.CreateAthlete))
	mux.Handle("PUT /api/admin/athletes/{athleteID}", admin(handler.UpdateAthlete))
	mux.Handle("DELETE /api/admin/athletes/{athleteID}", admin(handler.DeleteAthlete))

	mux.Handle("GET /api/admin/referees", admin(handler.ListReferees))
	mux.Handle("GET /api/admin/referees/{refereeID}", admin(handler.GetReferee))
	mux.Handle("POST /api/admin/referees", admin(handler.CreateReferee))
	mux.Handle("PUT /api/admin/referees/{refereeID}", admin(handler.UpdateReferee))
	mux.Handle("DELETE /api/admin/referees/{refereeID}", admin(handler.DeleteReferee))

	mux.Handle("GET /api/admin/news", admin(handler.ListAllNews))
	mux.Handle("POST /api/admin/news", admin(handler.CreateNews))
	mux.Handle("PUT /api/admin/news/{newsID}", admin(handler.UpdateNews))
	mux.Handle("DELETE /api/admin/news/{newsID}", admin(handler.DeleteNews))

	mux.Handle("GET /api/admin/contacts", admin(handler.ListContacts))
}

func registerObjectRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("POST /api/objects/upload", RequireAdminSession(verifier, http.HandlerFunc(handler.NewUpload)))
	mux.Handle("PUT /api/images", RequireAdminSession(verifier, http.HandlerFunc(handler.AttachImage)))
	mux.HandleFunc("GET /objects/{objectPath...}", handler.ServeObject)
}
