package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger writes one structured line per request. Workbook downloads also
// record the dataset they served.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)
			if err != nil {
				// Let echo render the error so the logged status is final.
				c.Error(err)
			}

			res := c.Response()
			evt := logger.Info()
			switch {
			case err != nil:
				evt = logger.Error().Err(err)
			case res.Status >= 400:
				evt = logger.Warn()
			}

			if id := res.Header().Get("X-Dataset-Id"); id != "" {
				evt = evt.Str("dataset_id", id)
			}

			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("latency", time.Since(start)).
				Msg("request")

			return nil
		}
	}
}
