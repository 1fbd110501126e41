package telemetry

// Event names. Properties carry content kinds, counts and durations only,
// never topics, card text or anything else the user typed.
const (
	EventGenerateRequest = "generate_request"
	EventPayloadImported = "payload_imported"
	EventReviewSession   = "review_session"
	EventQuizRecorded    = "quiz_recorded"
	EventExport          = "export"
)

// TrackGenerate records that a generation request was written to the outbox.
func TrackGenerate(c Client, kind string) {
	c.Track(EventGenerateRequest, Properties{
		"kind": kind,
	})
}

// TrackImport records an ingested payload (NOT its content).
func TrackImport(c Client, kind string, cardCount int) {
	props := Properties{
		"kind": kind,
	}
	if cardCount > 0 {
		props["card_count"] = cardCount
	}
	c.Track(EventPayloadImported, props)
}

// TrackReviewSession records a finished review session.
func TrackReviewSession(c Client, reviewed int, durationMs int64) {
	c.Track(EventReviewSession, Properties{
		"cards_reviewed": reviewed,
		"duration_ms":    durationMs,
	})
}

// TrackQuizRecorded records that a quiz result was logged (size only, no score).
func TrackQuizRecorded(c Client, totalQuestions int) {
	c.Track(EventQuizRecorded, Properties{
		"total_questions": totalQuestions,
	})
}

// TrackExport records an export run.
func TrackExport(c Client, format string) {
	c.Track(EventExport, Properties{
		"format": format,
	})
}
