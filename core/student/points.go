package student

import (
	"strconv"
	"strings"

	"github.com/trezcool/progress/core/course"
)

// ParsePoints parses a `<id> <points per course...>` line.
// There must be exactly one non-negative integer per catalog course, in catalog order.
// The ID is returned as typed: it is only checked by the lookup that follows.
func ParsePoints(text string, catalog course.Catalog) (PointsRequest, error) {
	fields := strings.Fields(text)
	if len(fields) != len(catalog)+1 {
		return PointsRequest{}, ErrIncorrectPointsFormat
	}

	req := PointsRequest{
		ID:      fields[0],
		Updates: make([]PointsUpdate, 0, len(catalog)),
	}
	for i, c := range catalog {
		points, err := strconv.Atoi(fields[i+1])
		if err != nil || points < 0 {
			return PointsRequest{}, ErrIncorrectPointsFormat
		}
		req.Updates = append(req.Updates, PointsUpdate{Course: c.Name, Points: points})
	}
	return req, nil
}

// ParseID parses a student ID; anything but a non-negative integer is ErrNotFound.
func ParseID(idText string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil || id < 0 {
		return 0, ErrNotFound
	}
	return id, nil
}
