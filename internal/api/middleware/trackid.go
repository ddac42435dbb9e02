package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const TrackIDKey = "x_track_id"

// TrackID tags every request with a correlation id, honoring one the
// caller already sent.
func TrackID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		trackID := c.Get("X-Track-Id")
		if trackID == "" {
			trackID = uuid.NewString()
		}

		c.Locals(TrackIDKey, trackID)
		c.Set("X-Track-Id", trackID)
		return c.Next()
	}
}

// GetTrackID returns the correlation id set by TrackID.
func GetTrackID(c *fiber.Ctx) string {
	trackID, _ := c.Locals(TrackIDKey).(string)
	return trackID
}
