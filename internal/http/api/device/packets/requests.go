package packets

// PairRequest is the first call an unpaired device makes. The hardware
// fields are advisory; they are surfaced to the admin during pairing and
// recorded on the player row once paired.
type PairRequest struct {
	DeviceName   string `json:"device_name"`
	Model        string `json:"model"`
	ScreenWidth  *int   `json:"screen_width"`
	ScreenHeight *int   `json:"screen_height"`
}

// PairPollRequest asks whether an admin has claimed this device's code yet.
type PairPollRequest struct {
	DeviceUID string `json:"device_uid" binding:"required"`
}

type HeartbeatRequest struct {
	ScreenWidth  *int `json:"screen_width"`
	ScreenHeight *int `json:"screen_height"`
}

type PlaybackEventReport struct {
	ContentID int    `json:"content_id" binding:"required"`
	StartedAt string `json:"started_at" binding:"required"`
	EndedAt   string `json:"ended_at" binding:"required"`
	Duration  int    `json:"duration" binding:"required,min=1"`
}

type ReportEventsRequest struct {
	Events []PlaybackEventReport `json:"events" binding:"required,min=1,dive"`
}
