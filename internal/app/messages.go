package app

import "time"

// TickMsg triggers a presenter drain and a frame update.
type TickMsg time.Time
