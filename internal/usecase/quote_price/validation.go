package quote_price

import "fmt"

func validateRequest(req Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: member id must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resource id must be positive", ErrInvalidInput)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}

	if req.SlotStart.IsZero() || req.SlotEnd.IsZero() {
		return fmt.Errorf("%w: slot start and end are required", ErrInvalidInput)
	}

	if req.BasePrice == "" {
		return fmt.Errorf("%w: base price is required", ErrInvalidInput)
	}

	return nil
}
