package get_resource_reservations

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/service/reservations/models"
)

const dateLayout = "2006-01-02"

// parseQuery разбирает query параметры фильтра бронирований ресурса.
// Даты принимаются в формате YYYY-MM-DD, конец периода включительно
func parseQuery(query url.Values, resourceID, userID int64) (*models.GetResourceReservationsRequest, error) {
	req := &models.GetResourceReservationsRequest{
		ResourceID: resourceID,
		UserID:     userID,
	}

	if raw := query.Get("startDate"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q: %w", raw, err)
		}
		req.StartDate = &start
	}

	if raw := query.Get("endDate"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q: %w", raw, err)
		}
		// Конец дня, чтобы фильтр покрывал весь указанный день
		end = end.Add(24*time.Hour - time.Nanosecond)
		req.EndDate = &end
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive %q: %w", raw, err)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
