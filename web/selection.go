package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/query"
)

// parseSelection reads the repeated viewtime and day parameters. Without the
// submitted marker every viewtime bucket is selected and no weekday is.
func parseSelection(c *fiber.Ctx) models.Selection {
	args := c.Context().QueryArgs()
	viewtime := known(peekMulti(c, "viewtime"), query.ViewtimeLabels())
	if len(args.Peek("submitted")) == 0 && len(viewtime) == 0 {
		viewtime = query.ViewtimeLabels()
	}
	return models.Selection{
		Viewtime: viewtime,
		Weekdays: known(peekMulti(c, "day"), query.Weekdays),
	}
}

func peekMulti(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	return out
}

// known keeps the values that are valid options, in option order.
func known(values, options []string) []string {
	chosen := map[string]bool{}
	for _, v := range values {
		chosen[v] = true
	}
	out := []string{}
	for _, o := range options {
		if chosen[o] {
			out = append(out, o)
		}
	}
	return out
}
