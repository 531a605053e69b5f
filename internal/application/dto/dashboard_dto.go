package dto

// DashboardStatsDTO resposta de GET /api/dashboard/stats.
// Contadores calculados no momento da chamada, sem cache.
type DashboardStatsDTO struct {
	VisitsToday    int64 `json:"visits_today"`    // visitas com entrada a partir da meia-noite local
	PendingVisits  int64 `json:"pending_visits"`  // visitas aguardando decisão
	VisitorsInside int64 `json:"visitors_inside"` // aprovadas e ainda sem saída registrada

	// As 10 visitas mais recentes por entry_time desc
	RecentVisits []VisitResponse `json:"recent_visits"`
}
