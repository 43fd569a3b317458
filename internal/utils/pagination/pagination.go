package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultSize = 20
	MaxSize     = 200
)

type Params struct {
	Page int // zero-based, as the dashboard frontend counts pages
	Size int
}

// ParseFromRequest reads page/size query parameters from a Fiber
// context, clamping nonsense values to sane defaults.
func ParseFromRequest(c *fiber.Ctx) Params {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(DefaultSize)))
	if err != nil || size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Params{Page: page, Size: size}
}
