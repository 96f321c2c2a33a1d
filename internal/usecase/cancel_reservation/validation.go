package cancel_reservation

import "fmt"

func validateRequest(req Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	return nil
}
