package get_shift_feed

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Tab.IsValid() {
		return fmt.Errorf("%w: unknown tab %q", ErrInvalidInput, string(req.Tab))
	}

	if req.CityID != nil && *req.CityID == "" {
		return fmt.Errorf("%w: city filter must not be empty", ErrInvalidInput)
	}

	return nil
}
