package domain

import "time"

// Interview agrupa los resultados de entrevista de un candidato.
// El mapa de resultados conserva claves libres ademas de las notas
// agregadas por banda de seniority.
type Interview struct {
	CandidateID string         `json:"candidateId"`
	Results     map[string]any `json:"results"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Bandas de seniority del banco de preguntas.
const (
	SeniorityJunior       = "Junior"
	SeniorityIntermediate = "Intermediate"
	SenioritySenior       = "Senior"
)

// Question es una pregunta del banco de entrevistas tecnicas.
type Question struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Seniority string `json:"seniority"`
	Topic     string `json:"topic"`
	Question  string `json:"question"`
}
